package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"easytax-service/internal/events"
	"easytax-service/internal/models"
	"easytax-service/internal/repository"
)

// ITRService builds income tax reports from filing-session profiles
type ITRService struct {
	advisor RecommendationProvider
	repo    *repository.ReportRepository
	logger  *logrus.Entry
}

// NewITRService creates a new ITR report service
func NewITRService(advisor RecommendationProvider, repo *repository.ReportRepository, logger *logrus.Logger) *ITRService {
	return &ITRService{
		advisor: advisor,
		repo:    repo,
		logger:  logger.WithField("component", "services.itr"),
	}
}

// BuildReport generates a complete ITR report. The arithmetic is total over
// the normalized profile; only the advisory narrative can degrade, never the
// report itself.
func (s *ITRService) BuildReport(ctx context.Context, tenantID string, req models.ITRReportRequest) (*models.ITRReport, error) {
	profile := models.NewTaxProfile(req)
	if profile.Name == "" {
		return nil, ErrMissingName
	}

	report := computeITRFigures(profile)
	report.TenantID = tenantID
	report.Recommendations, report.Fallback = s.advisor.ITRRecommendations(ctx, profile, report)

	if s.repo != nil {
		if err := s.repo.SaveITRReport(ctx, report); err != nil {
			s.logger.WithError(err).Warn("failed to persist ITR report")
		}
	}
	if pub := events.GetPublisher(); pub != nil {
		if err := pub.PublishITRReportGenerated(ctx, report); err != nil {
			s.logger.WithError(err).Warn("failed to publish ITR report event")
		}
	}

	return report, nil
}

// computeITRFigures computes every deterministic field of the report
func computeITRFigures(profile models.TaxProfile) *models.ITRReport {
	grossIncome := sumAmounts(profile.IncomeDetails)
	totalDeductions := sumAmounts(profile.Deductions) + models.StandardDeduction

	taxableIncome := grossIncome - totalDeductions
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	oldRegime := ComputeTax(taxableIncome, models.RegimeOld)
	newRegime := ComputeTax(taxableIncome, models.RegimeNew)

	// Ties resolve to the old regime
	optimal := models.RegimeNew
	selected := newRegime
	if oldRegime.TotalTax <= newRegime.TotalTax {
		optimal = models.RegimeOld
		selected = oldRegime
	}

	taxPaid := sumAmounts(profile.TaxPayments)
	var refundDue, taxPayable float64
	if taxPaid > selected.TotalTax {
		refundDue = taxPaid - selected.TotalTax
	} else {
		taxPayable = selected.TotalTax - taxPaid
	}

	form, reason := suggestITRForm(profile)

	return &models.ITRReport{
		Name:             profile.Name,
		PAN:              profile.PAN,
		AssessmentYear:   profile.AssessmentYear,
		GrossIncome:      grossIncome,
		TotalDeductions:  totalDeductions,
		TaxableIncome:    taxableIncome,
		OldRegime:        oldRegime,
		NewRegime:        newRegime,
		OptimalRegime:    optimal,
		TaxPaid:          taxPaid,
		RefundDue:        refundDue,
		TaxPayable:       taxPayable,
		SuggestedITRForm: form,
		FormReason:       reason,
		GeneratedAt:      time.Now().UTC(),
	}
}

// suggestITRForm picks the filing form by income-source rules, first match wins
func suggestITRForm(profile models.TaxProfile) (string, string) {
	if profile.IncomeDetails[models.IncomeBusiness] > 0 {
		return "ITR-3", "Income from business or profession requires ITR-3"
	}
	if profile.IncomeDetails[models.IncomeCapitalGains] > 0 || profile.IncomeDetails[models.IncomeHouseProperty] > 0 {
		return "ITR-2", "Capital gains or house property income requires ITR-2"
	}
	return "ITR-1 (Sahaj)", fmt.Sprintf("Salary and other-sources income of ₹%.0f fits ITR-1", sumAmounts(profile.IncomeDetails))
}

func sumAmounts(amounts map[string]float64) float64 {
	var total float64
	for _, v := range amounts {
		total += v
	}
	return total
}
