package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"easytax-service/internal/events"
	"easytax-service/internal/models"
	"easytax-service/internal/repository"
)

// Turnover above which the annual return (GSTR-9) compliance flag triggers
const annualReturnTurnoverThreshold = 20000000.0

// GSTService builds GST return summaries from filing-session profiles
type GSTService struct {
	advisor RecommendationProvider
	repo    *repository.ReportRepository
	logger  *logrus.Entry
}

// NewGSTService creates a new GST report service
func NewGSTService(advisor RecommendationProvider, repo *repository.ReportRepository, logger *logrus.Logger) *GSTService {
	return &GSTService{
		advisor: advisor,
		repo:    repo,
		logger:  logger.WithField("component", "services.gst"),
	}
}

// BuildReport generates a complete GST report. Identity fields are validated
// up front; monetary arithmetic is total over the normalized profile and the
// advisory narrative fails soft.
func (s *GSTService) BuildReport(ctx context.Context, tenantID string, req models.GSTReportRequest) (*models.GSTReport, error) {
	profile := models.NewGSTProfile(req)
	if profile.BusinessName == "" {
		return nil, ErrMissingBusinessName
	}
	if !ValidateGSTIN(profile.GSTIN) {
		return nil, ErrInvalidGSTIN
	}

	report := computeGSTFigures(profile)
	report.TenantID = tenantID
	report.Recommendations, report.Fallback = s.advisor.GSTRecommendations(ctx, profile, report)

	if s.repo != nil {
		if err := s.repo.SaveGSTReport(ctx, report); err != nil {
			s.logger.WithError(err).Warn("failed to persist GST report")
		}
	}
	if pub := events.GetPublisher(); pub != nil {
		if err := pub.PublishGSTReportGenerated(ctx, report); err != nil {
			s.logger.WithError(err).Warn("failed to publish GST report event")
		}
	}

	return report, nil
}

// computeGSTFigures computes every deterministic field of the report
func computeGSTFigures(profile models.GSTProfile) *models.GSTReport {
	returnType := profile.ReturnType
	if returnType == "" {
		returnType = models.ReturnTypeGSTR3B
	}

	month, year := normalizeFilingPeriod(profile.FilingMonth, profile.FilingYear)

	totalTurnover := sumAmounts(profile.OutwardSupplies)
	outputGST := sumAmounts(profile.OutputTax)
	itcAvailed := sumAmounts(profile.ITC)
	totalPaid := sumAmounts(profile.TaxPayments)

	netPayable := outputGST - itcAvailed
	if netPayable < 0 {
		netPayable = 0
	}

	dueDate, extendedDueDate := returnDueDates(returnType, month, year)

	report := &models.GSTReport{
		BusinessName:    profile.BusinessName,
		GSTIN:           profile.GSTIN,
		ReturnType:      returnType,
		FilingPeriod:    fmt.Sprintf("%04d-%02d", year, month),
		TotalTurnover:   totalTurnover,
		OutputGST:       outputGST,
		ITCAvailed:      itcAvailed,
		NetGSTPayable:   netPayable,
		TotalPaid:       totalPaid,
		DueDate:         dueDate,
		ExtendedDueDate: extendedDueDate,
		GeneratedAt:     time.Now().UTC(),
	}
	report.ComplianceStatus = evaluateCompliance(report)
	return report
}

// evaluateCompliance runs the ordered rule list and joins every triggered flag
func evaluateCompliance(report *models.GSTReport) string {
	var flags []string
	if report.NetGSTPayable > report.TotalPaid {
		flags = append(flags, fmt.Sprintf("Payment shortfall: ₹%.0f payable against ₹%.0f paid",
			report.NetGSTPayable, report.TotalPaid))
	}
	if report.TotalTurnover > annualReturnTurnoverThreshold {
		flags = append(flags, "Turnover above ₹2 crore: annual return GSTR-9 filing applies")
	}
	if len(flags) == 0 {
		return models.ComplianceStatusOK
	}
	return strings.Join(flags, "; ")
}

// normalizeFilingPeriod defaults an unset or out-of-range period to the
// previous calendar month
func normalizeFilingPeriod(month, year int) (int, int) {
	if month >= 1 && month <= 12 && year > 0 {
		return month, year
	}
	prev := time.Now().UTC().AddDate(0, -1, 0)
	return int(prev.Month()), prev.Year()
}

// returnDueDates computes the canonical due date for a return type and filing
// period, plus a fixed seven-day extended date. GSTR-1 is due the 11th of the
// following month, GSTR-3B (and anything unrecognized) the 20th, and GSTR-9
// on 31 December after the financial year closes.
func returnDueDates(returnType string, month, year int) (time.Time, time.Time) {
	var due time.Time
	switch returnType {
	case models.ReturnTypeGSTR1:
		due = time.Date(year, time.Month(month)+1, 11, 0, 0, 0, 0, time.UTC)
	case models.ReturnTypeGSTR9:
		fyEndYear := year
		if month >= 4 {
			fyEndYear = year + 1
		}
		due = time.Date(fyEndYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	case models.ReturnTypeGSTR3B:
		due = time.Date(year, time.Month(month)+1, 20, 0, 0, 0, 0, time.UTC)
	default:
		due = time.Date(year, time.Month(month)+1, 20, 0, 0, 0, 0, time.UTC)
	}
	return due, due.AddDate(0, 0, 7)
}
