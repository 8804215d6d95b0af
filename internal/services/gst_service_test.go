package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"easytax-service/internal/models"
)

const testGSTIN = "22AAAAA0000A1Z5"

func newTestGSTService(advisor *MockAdvisor) *GSTService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewGSTService(advisor, nil, logger)
}

func TestBuildGSTReportMissingBusinessName(t *testing.T) {
	service := newTestGSTService(&MockAdvisor{})

	_, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "  ",
		GSTIN:        testGSTIN,
	})
	assert.ErrorIs(t, err, ErrMissingBusinessName)
}

func TestBuildGSTReportInvalidGSTIN(t *testing.T) {
	service := newTestGSTService(&MockAdvisor{})

	_, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "Sharma Traders",
		GSTIN:        "INVALID",
	})
	assert.ErrorIs(t, err, ErrInvalidGSTIN)
}

func TestBuildGSTReportComputesFigures(t *testing.T) {
	mockAdvisor := new(MockAdvisor)
	mockAdvisor.On("GSTRecommendations", mock.Anything, mock.Anything, mock.Anything).Return("reconcile ITC", false)
	service := newTestGSTService(mockAdvisor)

	report, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "Sharma Traders",
		GSTIN:        " 22aaaaa0000a1z5 ",
		ReturnType:   "gstr3b",
		FilingMonth:  3,
		FilingYear:   2024,
		OutwardSupplies: map[string]string{
			models.OutwardB2B: "15,00,000",
			models.OutwardB2C: "500000",
		},
		OutputTax: map[string]string{
			models.HeadCGST: "180000",
			models.HeadSGST: "180000",
		},
		ITC:         map[string]string{models.HeadCGST: "50000", models.HeadSGST: "50000"},
		TaxPayments: map[string]string{models.HeadCGST: "130000", models.HeadSGST: "130000"},
	})

	assert.NoError(t, err)
	assert.Equal(t, testGSTIN, report.GSTIN)
	assert.Equal(t, models.ReturnTypeGSTR3B, report.ReturnType)
	assert.Equal(t, "2024-03", report.FilingPeriod)
	assert.InDelta(t, 2000000.0, report.TotalTurnover, 0.01)
	assert.InDelta(t, 360000.0, report.OutputGST, 0.01)
	assert.InDelta(t, 100000.0, report.ITCAvailed, 0.01)
	assert.InDelta(t, 260000.0, report.NetGSTPayable, 0.01)
	assert.InDelta(t, 260000.0, report.TotalPaid, 0.01)
	assert.Equal(t, models.ComplianceStatusOK, report.ComplianceStatus)
	assert.Equal(t, time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), report.DueDate)
	assert.Equal(t, time.Date(2024, time.April, 27, 0, 0, 0, 0, time.UTC), report.ExtendedDueDate)
	assert.Equal(t, "reconcile ITC", report.Recommendations)
	assert.False(t, report.Fallback)
	mockAdvisor.AssertExpectations(t)
}

func TestBuildGSTReportNetPayableNeverNegative(t *testing.T) {
	mockAdvisor := new(MockAdvisor)
	mockAdvisor.On("GSTRecommendations", mock.Anything, mock.Anything, mock.Anything).Return("", true)
	service := newTestGSTService(mockAdvisor)

	report, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "Sharma Traders",
		GSTIN:        testGSTIN,
		FilingMonth:  6,
		FilingYear:   2024,
		OutputTax:    map[string]string{models.HeadIGST: "50000"},
		ITC:          map[string]string{models.HeadIGST: "120000"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, report.NetGSTPayable)
	assert.Equal(t, "Fully Compliant", report.ComplianceStatus)
}

func TestBuildGSTReportComplianceFlags(t *testing.T) {
	mockAdvisor := new(MockAdvisor)
	mockAdvisor.On("GSTRecommendations", mock.Anything, mock.Anything, mock.Anything).Return("", true)
	service := newTestGSTService(mockAdvisor)

	report, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName:    "Sharma Traders",
		GSTIN:           testGSTIN,
		FilingMonth:     6,
		FilingYear:      2024,
		OutwardSupplies: map[string]string{models.OutwardB2B: "25000000"},
		OutputTax:       map[string]string{models.HeadIGST: "100000"},
	})

	assert.NoError(t, err)
	assert.Contains(t, report.ComplianceStatus, "Payment shortfall")
	assert.Contains(t, report.ComplianceStatus, "annual return GSTR-9")
	// Shortfall is reported before the turnover flag
	assert.Less(t,
		strings.Index(report.ComplianceStatus, "Payment shortfall"),
		strings.Index(report.ComplianceStatus, "annual return"))
}

func TestBuildGSTReportDefaultsReturnType(t *testing.T) {
	mockAdvisor := new(MockAdvisor)
	mockAdvisor.On("GSTRecommendations", mock.Anything, mock.Anything, mock.Anything).Return("", true)
	service := newTestGSTService(mockAdvisor)

	report, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "Sharma Traders",
		GSTIN:        testGSTIN,
		FilingMonth:  1,
		FilingYear:   2025,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ReturnTypeGSTR3B, report.ReturnType)
}

func TestBuildGSTReportDefaultsFilingPeriod(t *testing.T) {
	mockAdvisor := new(MockAdvisor)
	mockAdvisor.On("GSTRecommendations", mock.Anything, mock.Anything, mock.Anything).Return("", true)
	service := newTestGSTService(mockAdvisor)

	report, err := service.BuildReport(context.Background(), "tenant-1", models.GSTReportRequest{
		BusinessName: "Sharma Traders",
		GSTIN:        testGSTIN,
		FilingMonth:  0,
		FilingYear:   0,
	})

	assert.NoError(t, err)
	prev := time.Now().UTC().AddDate(0, -1, 0)
	assert.Equal(t, prev.Format("2006-01"), report.FilingPeriod)
}

func TestReturnDueDates(t *testing.T) {
	tests := []struct {
		name       string
		returnType string
		month      int
		year       int
		wantDue    time.Time
	}{
		{"GSTR-1 due the 11th of the following month", models.ReturnTypeGSTR1, 3, 2024,
			time.Date(2024, time.April, 11, 0, 0, 0, 0, time.UTC)},
		{"GSTR-3B due the 20th of the following month", models.ReturnTypeGSTR3B, 3, 2024,
			time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{"December rolls into January", models.ReturnTypeGSTR3B, 12, 2024,
			time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)},
		{"GSTR-9 for FY ending after the period", models.ReturnTypeGSTR9, 5, 2023,
			time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"GSTR-9 for a Jan-Mar period stays in the same FY", models.ReturnTypeGSTR9, 2, 2024,
			time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"unknown type falls back to the 20th", "GSTR4", 3, 2024,
			time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, extended := returnDueDates(tt.returnType, tt.month, tt.year)
			assert.Equal(t, tt.wantDue, due)
			assert.Equal(t, tt.wantDue.AddDate(0, 0, 7), extended)
		})
	}
}
