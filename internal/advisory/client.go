package advisory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"easytax-service/internal/models"
)

// CompletionService is the external language-model collaborator. One prompt
// in, free text out; the text is expected but not guaranteed to contain JSON.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

var errNoBackend = errors.New("no completion backend configured")

// Client produces advisory content for reports, tips and the tax planner.
// Every method resolves through three tiers: strict JSON parse of the model
// response, heuristic re-segmentation of its free text, then a static
// hand-authored fallback. Callers never see an error; the returned bool is
// true when the static tier was used.
type Client struct {
	backend CompletionService
	logger  *logrus.Entry
	timeout time.Duration
}

// NewClient creates an advisory client. A nil backend is allowed and makes
// every call resolve to the static fallback tier.
func NewClient(backend CompletionService, logger *logrus.Logger, timeout time.Duration) *Client {
	return &Client{
		backend: backend,
		logger:  logger.WithField("component", "advisory"),
		timeout: timeout,
	}
}

// complete issues the single model request. No retries: any failure here
// falls through the tiers.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if c.backend == nil {
		return "", errNoBackend
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.backend.Complete(ctx, prompt)
}

// ITRRecommendations returns the recommendations narrative for an ITR report
func (c *Client) ITRRecommendations(ctx context.Context, profile models.TaxProfile, report *models.ITRReport) (string, bool) {
	raw, err := c.complete(ctx, buildITRPrompt(profile, report))
	if err != nil {
		c.logger.WithError(err).Warn("ITR advisory call failed, using static recommendations")
		return fallbackITRRecommendations(report), true
	}
	if text, ok := extractRecommendations(raw); ok {
		return text, false
	}
	if text := strings.TrimSpace(raw); text != "" {
		return text, false
	}
	c.logger.Warn("empty ITR advisory response, using static recommendations")
	return fallbackITRRecommendations(report), true
}

// GSTRecommendations returns the recommendations narrative for a GST report
func (c *Client) GSTRecommendations(ctx context.Context, profile models.GSTProfile, report *models.GSTReport) (string, bool) {
	raw, err := c.complete(ctx, buildGSTPrompt(profile, report))
	if err != nil {
		c.logger.WithError(err).Warn("GST advisory call failed, using static recommendations")
		return fallbackGSTRecommendations(report), true
	}
	if text, ok := extractRecommendations(raw); ok {
		return text, false
	}
	if text := strings.TrimSpace(raw); text != "" {
		return text, false
	}
	c.logger.Warn("empty GST advisory response, using static recommendations")
	return fallbackGSTRecommendations(report), true
}

// FetchTips returns tax tips for a category. The result is never empty.
func (c *Client) FetchTips(ctx context.Context, category TipCategory) ([]models.TaxTip, bool) {
	raw, err := c.complete(ctx, buildTipsPrompt(category))
	if err != nil {
		c.logger.WithError(err).WithField("category", category).Warn("tips call failed, using static tips")
		return category.fallbackTips(), true
	}
	if tips, ok := parseTipsJSON(raw); ok {
		return tips, false
	}
	if tips := heuristicTips(raw); len(tips) > 0 {
		return tips, false
	}
	c.logger.WithField("category", category).Warn("unparseable tips response, using static tips")
	return category.fallbackTips(), true
}

// PlanInvestments returns investment suggestions for the tax planner
func (c *Client) PlanInvestments(ctx context.Context, req models.PlannerRequest) ([]models.InvestmentSuggestion, bool) {
	income := models.ParseAmount(req.AnnualIncome)
	raw, err := c.complete(ctx, buildPlannerPrompt(req, income))
	if err != nil {
		c.logger.WithError(err).Warn("planner call failed, using static suggestions")
		return fallbackSuggestions(income), true
	}
	if suggestions, ok := parseSuggestionsJSON(raw); ok {
		return suggestions, false
	}
	if suggestions := heuristicSuggestions(raw); len(suggestions) > 0 {
		return suggestions, false
	}
	c.logger.Warn("unparseable planner response, using static suggestions")
	return fallbackSuggestions(income), true
}
