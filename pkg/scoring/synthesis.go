package scoring

import "fmt"

// Trust level thresholds
const (
	TrustThresholdExcellent = 80
	TrustThresholdGood      = 60
	TrustThresholdFair      = 40
	TrustThresholdPoor      = 20
)

// Confidence level thresholds
const (
	ConfidenceThresholdVeryHigh = 0.80
	ConfidenceThresholdHigh     = 0.60
	ConfidenceThresholdMedium   = 0.40
	ConfidenceThresholdLow      = 0.20
)

// Conditional recommendation thresholds
const (
	recommendVerificationBelow = 50
	recommendRedFlagsBelow     = 70
	recommendCommunityBelow    = 40
)

// Risk factor danger thresholds
const (
	riskVerificationBelow = 30
	riskMaturityBelow     = 40
	riskRedFlagsBelow     = 70
	riskCommunityBelow    = 40
)

const strengthThreshold = 80

// insufficientDataAdvisory is the single recommendation attached to a
// gated result.
const insufficientDataAdvisory = "Not enough data to produce a reliable trust score. Verify this seller manually before purchasing."

// determineTrustLevel maps a pulse score to its trust band.
func determineTrustLevel(score int) TrustLevel {
	switch {
	case score >= TrustThresholdExcellent:
		return TrustExcellent
	case score >= TrustThresholdGood:
		return TrustGood
	case score >= TrustThresholdFair:
		return TrustFair
	case score >= TrustThresholdPoor:
		return TrustPoor
	default:
		return TrustVeryPoor
	}
}

// determineConfidenceLevel maps a confidence figure to its band.
func determineConfidenceLevel(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= ConfidenceThresholdVeryHigh:
		return ConfidenceVeryHigh
	case confidence >= ConfidenceThresholdHigh:
		return ConfidenceHigh
	case confidence >= ConfidenceThresholdMedium:
		return ConfidenceMedium
	case confidence >= ConfidenceThresholdLow:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

type riskRule struct {
	category  Category
	threshold int
	severity  Severity
	message   string
}

var riskRules = []riskRule{
	{CategoryVerification, riskVerificationBelow, SeverityHigh, "seller identity is effectively unverified"},
	{CategoryMaturity, riskMaturityBelow, SeverityMedium, "account is too new to have a track record"},
	{CategoryRedFlags, riskRedFlagsBelow, SeverityCritical, "listing language matches known scam patterns"},
	{CategoryCommunity, riskCommunityBelow, SeverityHigh, "community signal on this seller is negative"},
}

// Synthesize builds the recommendation, risk factor and strength lists
// for a scored result. The first recommendation is the overall purchase
// guidance for the pulse score band; conditional entries follow in fixed
// order.
func Synthesize(pulseScore int, categories map[Category]CategoryScore) ([]string, []RiskFactor, []StrengthArea) {
	recommendations := []string{overallRecommendation(pulseScore)}

	if categoryScoreBelow(categories, CategoryVerification, recommendVerificationBelow) {
		recommendations = append(recommendations,
			"Ask the seller to complete marketplace verification before committing to a purchase.")
	}
	if categoryScoreBelow(categories, CategoryRedFlags, recommendRedFlagsBelow) {
		recommendations = append(recommendations,
			"Critical: listing language shows pressure or off-platform contact patterns common in scams. Proceed with extreme caution.")
	}
	if categoryScoreBelow(categories, CategoryCommunity, recommendCommunityBelow) {
		recommendations = append(recommendations,
			"Check the seller's reviews and community feedback carefully before buying.")
	}

	return recommendations, compileRiskFactors(categories), compileStrengths(categories)
}

func overallRecommendation(score int) string {
	switch {
	case score >= TrustThresholdExcellent:
		return "Safe to Purchase: this seller shows strong trust signals across the evaluated categories."
	case score >= TrustThresholdGood:
		return "Consider: this seller looks broadly trustworthy, with minor gaps worth a quick check."
	case score >= TrustThresholdFair:
		return "Review Carefully: this seller has mixed trust signals. Verify details before paying."
	default:
		return "Avoid: this seller shows weak or negative trust signals. Buying is not recommended."
	}
}

// compileRiskFactors emits one entry per available category sitting below
// its danger threshold.
func compileRiskFactors(categories map[Category]CategoryScore) []RiskFactor {
	risks := []RiskFactor{}
	for _, rule := range riskRules {
		score, ok := availableScoreOf(categories, rule.category)
		if !ok || score >= rule.threshold {
			continue
		}
		risks = append(risks, RiskFactor{
			Category: rule.category,
			Severity: rule.severity,
			Message:  fmt.Sprintf("%s: %s (score %d)", rule.category.DisplayName(), rule.message, score),
		})
	}
	return risks
}

// compileStrengths emits one entry per available category scoring at or
// above the strength threshold.
func compileStrengths(categories map[Category]CategoryScore) []StrengthArea {
	strengths := []StrengthArea{}
	for _, category := range CategoryOrder {
		score, ok := availableScoreOf(categories, category)
		if !ok || score < strengthThreshold {
			continue
		}
		strengths = append(strengths, StrengthArea{
			Category: category,
			Score:    score,
			Message:  fmt.Sprintf("%s is strong (%d)", category.DisplayName(), score),
		})
	}
	return strengths
}

func availableScoreOf(categories map[Category]CategoryScore, category Category) (int, bool) {
	score, ok := categories[category]
	if !ok || !score.Available || score.Score == nil {
		return 0, false
	}
	return *score.Score, true
}

func categoryScoreBelow(categories map[Category]CategoryScore, category Category, threshold int) bool {
	score, ok := availableScoreOf(categories, category)
	return ok && score < threshold
}
