package scoring

// Last-seen recency tiers in days
const (
	activityRecentDays   = 7
	activityActiveDays   = 30
	activityDormantDays  = 60
	activityUnknownScore = 50
)

// CalculateActivity scores Activity & Recency from days since the seller
// was last seen.
//
// Scoring when last-seen is known:
// - <= 7 days: 100
// - <= 30 days: 70
// - <= 60 days: 40
// - older: 10
// When last-seen is unknown but the seller has at least one listing the
// score is a flat 50: there is activity, its recency is not. With neither
// signal the category is unavailable.
func CalculateActivity(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	if profile.FieldAvailable(FieldLastActive) {
		days := profile.LastActiveDays
		var score int
		var tier string
		switch {
		case days <= activityRecentDays:
			score, tier = 100, "recent"
		case days <= activityActiveDays:
			score, tier = 70, "active"
		case days <= activityDormantDays:
			score, tier = 40, "dormant"
		default:
			score, tier = 10, "inactive"
		}
		return scoredCategory(score, map[string]interface{}{
			"last_active_days": days,
			"tier":             tier,
		})
	}

	if hasListingActivity(profile, listings) {
		return scoredCategory(activityUnknownScore, map[string]interface{}{
			"note": "active listings present but last-seen recency unknown",
		})
	}

	return unavailableCategory(map[string]interface{}{
		"note": "no activity signal available",
	})
}

// hasListingActivity reports whether the seller shows any listing
// evidence, either supplied listings or a marketplace-reported count.
func hasListingActivity(profile *SellerProfile, listings []RecentListing) bool {
	if len(listings) > 0 {
		return true
	}
	return profile.FieldAvailable(FieldListingCount) && profile.ListingCount > 0
}
