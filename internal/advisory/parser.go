package advisory

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"easytax-service/internal/models"
)

// Tier 1: strict parse of the first JSON array/object substring.
// Tier 2: heuristic re-segmentation of free text into records.

// extractJSON returns the first balanced JSON array or object substring of
// text, tolerating surrounding prose and markdown fences.
func extractJSON(text string) (string, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] == '[' || text[i] == '{' {
			if sub, ok := balancedFrom(text[i:]); ok {
				return sub, true
			}
		}
	}
	return "", false
}

// balancedFrom scans s (which starts with '[' or '{') for the matching close
// bracket, skipping over string literals.
func balancedFrom(s string) (string, bool) {
	open := s[0]
	var close byte
	switch open {
	case '[':
		close = ']'
	case '{':
		close = '}'
	default:
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// extractRecommendations pulls the recommendations narrative out of a JSON
// object embedded in the response
func extractRecommendations(raw string) (string, bool) {
	sub, ok := extractJSON(raw)
	if !ok || !strings.HasPrefix(sub, "{") {
		return "", false
	}
	var payload struct {
		Recommendations string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(sub), &payload); err != nil {
		return "", false
	}
	text := strings.TrimSpace(payload.Recommendations)
	if text == "" {
		return "", false
	}
	return text, true
}

// parseTipsJSON strictly parses tips from the response. It accepts either a
// bare array or an object with a "tips" key; missing fields default to empty.
func parseTipsJSON(raw string) ([]models.TaxTip, bool) {
	sub, ok := extractJSON(raw)
	if !ok {
		return nil, false
	}

	var tips []models.TaxTip
	if strings.HasPrefix(sub, "[") {
		if err := json.Unmarshal([]byte(sub), &tips); err != nil {
			return nil, false
		}
	} else {
		var wrapper struct {
			Tips []models.TaxTip `json:"tips"`
		}
		if err := json.Unmarshal([]byte(sub), &wrapper); err != nil {
			return nil, false
		}
		tips = wrapper.Tips
	}

	valid := tips[:0]
	for _, tip := range tips {
		if strings.TrimSpace(tip.Title) == "" && strings.TrimSpace(tip.Description) == "" {
			continue
		}
		valid = append(valid, tip)
	}
	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}

// parseSuggestionsJSON strictly parses planner suggestions from the response
func parseSuggestionsJSON(raw string) ([]models.InvestmentSuggestion, bool) {
	sub, ok := extractJSON(raw)
	if !ok || !strings.HasPrefix(sub, "[") {
		return nil, false
	}
	var suggestions []models.InvestmentSuggestion
	if err := json.Unmarshal([]byte(sub), &suggestions); err != nil {
		return nil, false
	}
	valid := suggestions[:0]
	for _, s := range suggestions {
		if strings.TrimSpace(s.Instrument) == "" {
			continue
		}
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return nil, false
	}
	return valid, true
}

var (
	listMarkerPattern = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
	currencyPattern   = regexp.MustCompile(`(?:₹|Rs\.?)\s?[\d][\d,]*`)
	sectionPattern    = regexp.MustCompile(`(?i)\bsection\s+\d+[A-Z]{0,5}\b|\b80[A-Z]{1,3}(?:\(\w+\))?`)
)

// heuristicTips re-segments free text into tip records: one tip per list
// item, title split on the first colon or dash, with currency amounts and
// section references pattern-matched out of the line.
func heuristicTips(raw string) []models.TaxTip {
	var tips []models.TaxTip
	for _, line := range strings.Split(raw, "\n") {
		if !listMarkerPattern.MatchString(line) {
			continue
		}
		body := strings.TrimSpace(listMarkerPattern.ReplaceAllString(line, ""))
		body = strings.Trim(body, "*_")
		if len(body) < 10 {
			continue
		}

		title := body
		description := body
		if idx := strings.IndexAny(body, ":–"); idx > 0 {
			// the separator may be multi-byte, advance past the whole rune
			_, size := utf8.DecodeRuneInString(body[idx:])
			if rest := strings.TrimSpace(body[idx+size:]); rest != "" {
				title = strings.TrimSpace(strings.Trim(body[:idx], "*_ "))
				description = rest
			}
		}

		tips = append(tips, models.TaxTip{
			Title:       title,
			Description: description,
			Savings:     currencyPattern.FindString(body),
			Section:     sectionPattern.FindString(body),
		})
	}
	return tips
}

// heuristicSuggestions re-segments free text into planner records
func heuristicSuggestions(raw string) []models.InvestmentSuggestion {
	var suggestions []models.InvestmentSuggestion
	for _, tip := range heuristicTips(raw) {
		suggestions = append(suggestions, models.InvestmentSuggestion{
			Instrument: tip.Title,
			Amount:     parseCurrency(tip.Savings),
			Reason:     tip.Description,
		})
	}
	return suggestions
}

func parseCurrency(s string) float64 {
	s = strings.NewReplacer("₹", "", "Rs.", "", "Rs", "", ",", "", " ", "").Replace(s)
	return models.ParseAmount(s)
}
