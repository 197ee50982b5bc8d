package scoring

// Response rate tiers in percent
const (
	engagementExcellentRate = 90
	engagementStrongRate    = 80
	engagementModerateRate  = 60
)

// CalculateEngagement scores Engagement from the seller's response rate.
//
// Scoring when a nonzero response rate is present:
// - >= 90%: 100
// - >= 80%: 80
// - >= 60%: 60
// - below: 30
// A zero or missing response rate means no engagement signal and the
// category is unavailable.
func CalculateEngagement(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	rate := profile.ResponseRate
	if !profile.FieldAvailable(FieldResponseRate) || rate <= 0 {
		return unavailableCategory(map[string]interface{}{
			"note": "no response rate data",
		})
	}

	var score int
	var tier string
	switch {
	case rate >= engagementExcellentRate:
		score, tier = 100, "excellent"
	case rate >= engagementStrongRate:
		score, tier = 80, "strong"
	case rate >= engagementModerateRate:
		score, tier = 60, "moderate"
	default:
		score, tier = 30, "weak"
	}

	return scoredCategory(score, map[string]interface{}{
		"response_rate": rate,
		"tier":          tier,
	})
}
