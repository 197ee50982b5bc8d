package scoring

import (
	"strings"
	"testing"
)

func TestDetermineTrustLevel(t *testing.T) {
	tests := []struct {
		score int
		want  TrustLevel
	}{
		{100, TrustExcellent},
		{80, TrustExcellent},
		{79, TrustGood},
		{60, TrustGood},
		{59, TrustFair},
		{40, TrustFair},
		{39, TrustPoor},
		{20, TrustPoor},
		{19, TrustVeryPoor},
		{0, TrustVeryPoor},
	}

	for _, tt := range tests {
		if got := determineTrustLevel(tt.score); got != tt.want {
			t.Errorf("determineTrustLevel(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestDetermineConfidenceLevel(t *testing.T) {
	tests := []struct {
		confidence float64
		want       ConfidenceLevel
	}{
		{1.0, ConfidenceVeryHigh},
		{0.80, ConfidenceVeryHigh},
		{0.79, ConfidenceHigh},
		{0.60, ConfidenceHigh},
		{0.59, ConfidenceMedium},
		{0.40, ConfidenceMedium},
		{0.39, ConfidenceLow},
		{0.20, ConfidenceLow},
		{0.19, ConfidenceVeryLow},
		{0, ConfidenceVeryLow},
	}

	for _, tt := range tests {
		if got := determineConfidenceLevel(tt.confidence); got != tt.want {
			t.Errorf("determineConfidenceLevel(%v) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestSynthesizeStrongSeller(t *testing.T) {
	categories := aggregateCategories(map[Category]int{
		CategoryVerification: 90,
		CategoryMaturity:     100,
		CategoryListings:     85,
		CategoryActivity:     100,
		CategoryEngagement:   80,
		CategoryCommunity:    95,
		CategoryRedFlags:     100,
	})

	recommendations, risks, strengths := Synthesize(92, categories)

	if len(recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1", len(recommendations))
	}
	if !strings.HasPrefix(recommendations[0], "Safe to Purchase") {
		t.Errorf("overall recommendation = %q, want Safe to Purchase guidance", recommendations[0])
	}
	if len(risks) != 0 {
		t.Errorf("risks = %d, want 0", len(risks))
	}
	if len(strengths) != len(CategoryOrder) {
		t.Fatalf("strengths = %d, want %d", len(strengths), len(CategoryOrder))
	}
	if strengths[0].Category != CategoryVerification {
		t.Errorf("first strength = %s, want %s", strengths[0].Category, CategoryVerification)
	}
	if strengths[0].Message != "Verification & Identity is strong (90)" {
		t.Errorf("strength message = %q", strengths[0].Message)
	}
}

func TestSynthesizeTroubledSeller(t *testing.T) {
	categories := aggregateCategories(map[Category]int{
		CategoryVerification: 10,
		CategoryMaturity:     20,
		CategoryListings:     55,
		CategoryActivity:     50,
		CategoryEngagement:   30,
		CategoryCommunity:    25,
		CategoryRedFlags:     45,
	})

	recommendations, risks, strengths := Synthesize(30, categories)

	if len(recommendations) != 4 {
		t.Fatalf("recommendations = %d, want 4", len(recommendations))
	}
	if !strings.HasPrefix(recommendations[0], "Avoid") {
		t.Errorf("overall recommendation = %q, want Avoid guidance", recommendations[0])
	}
	if !strings.Contains(recommendations[1], "verification") {
		t.Errorf("recommendations[1] = %q, want verification guidance", recommendations[1])
	}
	if !strings.HasPrefix(recommendations[2], "Critical:") {
		t.Errorf("recommendations[2] = %q, want critical red flag guidance", recommendations[2])
	}
	if !strings.Contains(recommendations[3], "reviews") {
		t.Errorf("recommendations[3] = %q, want community guidance", recommendations[3])
	}

	wantRisks := []struct {
		category Category
		severity Severity
	}{
		{CategoryVerification, SeverityHigh},
		{CategoryMaturity, SeverityMedium},
		{CategoryRedFlags, SeverityCritical},
		{CategoryCommunity, SeverityHigh},
	}
	if len(risks) != len(wantRisks) {
		t.Fatalf("risks = %d, want %d", len(risks), len(wantRisks))
	}
	for i, want := range wantRisks {
		if risks[i].Category != want.category {
			t.Errorf("risk[%d] category = %s, want %s", i, risks[i].Category, want.category)
		}
		if risks[i].Severity != want.severity {
			t.Errorf("risk[%d] severity = %s, want %s", i, risks[i].Severity, want.severity)
		}
	}
	if risks[0].Message != "Verification & Identity: seller identity is effectively unverified (score 10)" {
		t.Errorf("risk message = %q", risks[0].Message)
	}

	if len(strengths) != 0 {
		t.Errorf("strengths = %d, want 0", len(strengths))
	}
}

func TestSynthesizeThresholdEdges(t *testing.T) {
	// Scores sitting exactly at a threshold do not trigger the rule below it.
	categories := aggregateCategories(map[Category]int{
		CategoryVerification: 50,
		CategoryMaturity:     40,
		CategoryListings:     80,
		CategoryCommunity:    40,
		CategoryRedFlags:     70,
	})

	recommendations, risks, strengths := Synthesize(65, categories)

	if len(recommendations) != 1 {
		t.Errorf("recommendations = %d, want only the overall guidance", len(recommendations))
	}
	if !strings.HasPrefix(recommendations[0], "Consider") {
		t.Errorf("overall recommendation = %q, want Consider guidance", recommendations[0])
	}
	if len(risks) != 0 {
		t.Errorf("risks = %d, want 0", len(risks))
	}
	if len(strengths) != 1 || strengths[0].Category != CategoryListings {
		t.Errorf("strengths = %+v, want only listing completeness", strengths)
	}
}

func TestSynthesizeIgnoresUnavailableCategories(t *testing.T) {
	// Verification and red flags are unavailable; their conditional rules
	// must stay silent even though a nil score reads as very low.
	categories := aggregateCategories(map[Category]int{
		CategoryMaturity: 100,
		CategoryActivity: 70,
	})

	recommendations, risks, _ := Synthesize(55, categories)

	if len(recommendations) != 1 {
		t.Errorf("recommendations = %d, want 1", len(recommendations))
	}
	if !strings.HasPrefix(recommendations[0], "Review Carefully") {
		t.Errorf("overall recommendation = %q, want Review Carefully guidance", recommendations[0])
	}
	if len(risks) != 0 {
		t.Errorf("risks = %d, want 0", len(risks))
	}
}
