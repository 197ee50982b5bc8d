package scoring

// Account age tiers in months
const (
	maturityEstablishedMonths = 12
	maturitySettledMonths     = 6
	maturityDevelopingMonths  = 3
)

// CalculateAccountMaturity scores Account Maturity from the account age.
//
// Scoring:
// - >= 12 months: 100
// - >= 6 months: 70
// - >= 3 months: 40
// - under 3 months: 10
// An age of 0, or an age field that is not available, means the age is
// unknown and the category is unavailable.
func CalculateAccountMaturity(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	ageMonths := 0
	if profile.FieldAvailable(FieldAccountAge) {
		ageMonths = profile.AccountAgeMonths
	}

	if ageMonths == 0 {
		note := "account age not provided"
		if profile.FieldPlatformUnavailable(FieldAccountAge) {
			note = "platform does not expose account age"
		}
		return unavailableCategory(map[string]interface{}{"note": note})
	}

	var score int
	var tier string
	switch {
	case ageMonths >= maturityEstablishedMonths:
		score, tier = 100, "established"
	case ageMonths >= maturitySettledMonths:
		score, tier = 70, "settled"
	case ageMonths >= maturityDevelopingMonths:
		score, tier = 40, "developing"
	default:
		score, tier = 10, "new"
	}

	return scoredCategory(score, map[string]interface{}{
		"age_months": ageMonths,
		"tier":       tier,
	})
}
