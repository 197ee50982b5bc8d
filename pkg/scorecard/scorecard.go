// -----------------------------------------------------------------------
// Scorecard - Seller Trust Scorecard Renderer
// Renders a scoring result into a markdown document for the persistence
// and presentation layers
// -----------------------------------------------------------------------

package scorecard

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pulse/internal/common"
	"github.com/ternarybob/pulse/pkg/scoring"
)

// Document is a rendered seller trust scorecard. The scoring result it
// wraps is deterministic; the document ID and timestamp are stamped at
// render time.
type Document struct {
	ID              string                 `json:"id"`
	Title           string                 `json:"title"`
	ContentMarkdown string                 `json:"content_markdown"`
	Tags            []string               `json:"tags"`
	Metadata        map[string]interface{} `json:"metadata"`
	CreatedAt       time.Time              `json:"created_at"`
}

// Builder renders scoring results into scorecard documents.
type Builder struct {
	logger arbor.ILogger
}

// NewBuilder creates a scorecard builder.
func NewBuilder() *Builder {
	return &Builder{logger: common.GetLogger()}
}

// WithLogger replaces the builder logger.
func (b *Builder) WithLogger(logger arbor.ILogger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build renders one seller's scoring result into a scorecard document.
func (b *Builder) Build(profile *scoring.SellerProfile, result *scoring.ScoringResult) (*Document, error) {
	if profile == nil {
		return nil, fmt.Errorf("seller profile is required")
	}
	if result == nil {
		return nil, fmt.Errorf("scoring result is required")
	}

	seller := sellerLabel(profile)

	var content strings.Builder
	content.WriteString(fmt.Sprintf("# Seller Trust Scorecard: %s\n\n", seller))
	content.WriteString(fmt.Sprintf("**Status:** %s\n\n", result.Status))

	if result.PulseScore != nil {
		content.WriteString(fmt.Sprintf("**Pulse Score:** %d/100\n\n", *result.PulseScore))
		content.WriteString(fmt.Sprintf("**Trust Level:** %s\n\n", result.TrustLevel))
		content.WriteString(fmt.Sprintf("**Confidence:** %.2f (%s)\n\n", result.Confidence, result.ConfidenceLevel))
		writeCategoryTable(&content, result)
		writeRedFlags(&content, result)
	} else {
		content.WriteString("**Pulse Score:** N/A (insufficient data)\n\n")
		content.WriteString(fmt.Sprintf("**Confidence:** %.2f\n\n", result.Confidence))
		writeCoverage(&content, result)
	}

	writeList(&content, "Recommendations", result.Recommendations)
	writeRiskFactors(&content, result.RiskFactors)
	writeStrengths(&content, result.StrengthAreas)

	tags := []string{"seller-scorecard"}
	if profile.Marketplace != "" {
		tags = append(tags, strings.ToLower(profile.Marketplace))
	}
	if result.TrustLevel != "" {
		tags = append(tags, strings.ToLower(strings.ReplaceAll(string(result.TrustLevel), " ", "-")))
	}

	now := time.Now()
	doc := &Document{
		ID:              common.NewScorecardID(),
		Title:           fmt.Sprintf("Seller Trust Scorecard: %s", seller),
		ContentMarkdown: content.String(),
		Tags:            tags,
		Metadata: map[string]interface{}{
			"seller_id":        profile.SellerID,
			"marketplace":      profile.Marketplace,
			"status":           string(result.Status),
			"pulse_score":      result.PulseScore,
			"trust_level":      string(result.TrustLevel),
			"confidence":       result.Confidence,
			"confidence_level": string(result.ConfidenceLevel),
			"categories":       result.Categories,
			"category_weights": result.CategoryWeights,
			"engine_version":   common.GetVersion(),
			"calculated_at":    now.Format(time.RFC3339),
		},
		CreatedAt: now,
	}

	b.logger.Debug().
		Str("scorecard", doc.ID).
		Str("seller", profile.SellerID).
		Str("status", string(result.Status)).
		Msg("scorecard rendered")

	return doc, nil
}

func sellerLabel(profile *scoring.SellerProfile) string {
	if strings.TrimSpace(profile.Name) != "" {
		return profile.Name
	}
	if profile.SellerID != "" {
		return profile.SellerID
	}
	return "unknown seller"
}

func writeCategoryTable(content *strings.Builder, result *scoring.ScoringResult) {
	content.WriteString("## Category Scores\n\n")
	content.WriteString("| Category | Score | Weight |\n")
	content.WriteString("|----------|-------|--------|\n")
	for _, category := range scoring.CategoryOrder {
		score := result.Categories[category]
		cell := "N/A (no data)"
		if score.Score != nil {
			cell = fmt.Sprintf("%d", *score.Score)
		}
		content.WriteString(fmt.Sprintf("| %s | %s | %d%% |\n",
			category.DisplayName(), cell, result.CategoryWeights[category]))
	}
	content.WriteString("\n")
}

func writeRedFlags(content *strings.Builder, result *scoring.ScoringResult) {
	redFlags, ok := result.Categories[scoring.CategoryRedFlags]
	if !ok || redFlags.Breakdown == nil {
		return
	}
	hits, ok := redFlags.Breakdown["flags"].([]scoring.FlagHit)
	if !ok || len(hits) == 0 {
		return
	}
	content.WriteString("## Red Flags\n\n")
	for _, hit := range hits {
		content.WriteString(fmt.Sprintf("- Listing %d: %s (-%d)\n", hit.Listing, hit.Flag, hit.Penalty))
	}
	content.WriteString("\n")
}

func writeCoverage(content *strings.Builder, result *scoring.ScoringResult) {
	content.WriteString("## Data Coverage\n\n")
	content.WriteString(fmt.Sprintf("**Coverage:** %.2f\n\n", result.Metrics.Coverage))
	if len(result.AvailableCategories) > 0 {
		content.WriteString(fmt.Sprintf("**Available:** %s\n\n", joinCategories(result.AvailableCategories)))
	}
	if len(result.MissingCategories) > 0 {
		content.WriteString(fmt.Sprintf("**Missing:** %s\n\n", joinCategories(result.MissingCategories)))
	}
}

func writeList(content *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	content.WriteString(fmt.Sprintf("## %s\n\n", heading))
	for _, item := range items {
		content.WriteString(fmt.Sprintf("- %s\n", item))
	}
	content.WriteString("\n")
}

func writeRiskFactors(content *strings.Builder, risks []scoring.RiskFactor) {
	if len(risks) == 0 {
		return
	}
	content.WriteString("## Risk Factors\n\n")
	for _, risk := range risks {
		content.WriteString(fmt.Sprintf("- [%s] %s\n", risk.Severity, risk.Message))
	}
	content.WriteString("\n")
}

func writeStrengths(content *strings.Builder, strengths []scoring.StrengthArea) {
	if len(strengths) == 0 {
		return
	}
	content.WriteString("## Strength Areas\n\n")
	for _, strength := range strengths {
		content.WriteString(fmt.Sprintf("- %s\n", strength.Message))
	}
	content.WriteString("\n")
}

func joinCategories(categories []scoring.Category) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.DisplayName())
	}
	return strings.Join(names, ", ")
}
