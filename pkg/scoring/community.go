package scoring

// Marketplace review tiers
const (
	communityStrongReviews   = 10
	communityStrongRating    = 4.5
	communityModerateReviews = 5
)

// Community feedback adjustments per net endorsement or flag
const (
	endorsementBonus = 5
	flagPenalty      = 10
)

// CalculateCommunityFeedback scores Community Feedback from marketplace
// review data adjusted by crowd-sourced endorsements and flags.
//
// Base score:
// - 10+ reviews or average rating >= 4.5: 100
// - 5+ reviews: 70
// - at least one review: 40
// - none: 0
//
// Adjustment by net = endorsements - flags:
// - net > 0: +5 per net endorsement, capped at 100
// - net < 0: -10 per net flag, floored at 0
// With neither marketplace review data nor community feedback the
// category is unavailable.
func CalculateCommunityFeedback(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	reviews := 0
	if profile.FieldAvailable(FieldReviewCount) {
		reviews = profile.ReviewCount
	}
	rating := 0.0
	if profile.FieldAvailable(FieldRating) {
		rating = profile.AvgRating
	}

	endorsements, flags := 0, 0
	if feedback != nil {
		endorsements = feedback.Endorsements
		flags = feedback.Flags
	}

	hasReviewData := reviews > 0 || rating > 0
	hasFeedback := endorsements > 0 || flags > 0
	if !hasReviewData && !hasFeedback {
		return unavailableCategory(map[string]interface{}{
			"note": "no marketplace reviews or community feedback",
		})
	}

	var base int
	switch {
	case reviews >= communityStrongReviews || rating >= communityStrongRating:
		base = 100
	case reviews >= communityModerateReviews:
		base = 70
	case reviews >= 1:
		base = 40
	default:
		base = 0
	}

	net := endorsements - flags
	adjustment := 0
	if net > 0 {
		adjustment = net * endorsementBonus
	} else if net < 0 {
		adjustment = net * flagPenalty
	}

	return scoredCategory(base+adjustment, map[string]interface{}{
		"base_score":          base,
		"review_count":        reviews,
		"avg_rating":          rating,
		"endorsements":        endorsements,
		"flags":               flags,
		"net_feedback":        net,
		"feedback_adjustment": adjustment,
	})
}
