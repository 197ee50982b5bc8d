package scoring

import "strings"

// Verification tier base scores
const (
	verificationBaseID    = 100
	verificationBasePhone = 70
	verificationBaseEmail = 50
)

// Identity bonuses, each capped so the category never exceeds 100
const (
	photoBonus    = 10
	locationBonus = 10
)

// placeholderLocations are values extractors emit when a marketplace
// reports a location slot without a real location in it.
var placeholderLocations = []string{
	"unknown",
	"n/a",
	"na",
	"none",
	"null",
	"-",
	"not specified",
}

// CalculateVerification scores Verification & Identity. This category is
// always available: an absent verification signal is itself a signal.
//
// Base score by strongest tier:
// - id: 100
// - phone: 70
// - email: 50
// - unverified or unknown: 0
//
// Bonuses (capped at 100):
// - profile photo present: +10
// - location present and not a placeholder: +10
// A bonus field marked platform_unavailable is skipped without penalty and
// the exemption is recorded in the breakdown.
func CalculateVerification(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	tier := normalizeTier(profile.Verification)

	base := 0
	switch tier {
	case TierIDVerified:
		base = verificationBaseID
	case TierPhone:
		base = verificationBasePhone
	case TierEmail:
		base = verificationBaseEmail
	}

	breakdown := map[string]interface{}{
		"tier":       string(tier),
		"base_score": base,
	}

	score := base

	switch {
	case profile.FieldPlatformUnavailable(FieldPhoto):
		breakdown["photo_bonus"] = 0
		breakdown["photo_note"] = "platform does not expose profile photos"
	case profile.FieldAvailable(FieldPhoto) && profile.HasPhoto:
		score += photoBonus
		breakdown["photo_bonus"] = photoBonus
	default:
		breakdown["photo_bonus"] = 0
	}

	switch {
	case profile.FieldPlatformUnavailable(FieldLocation):
		breakdown["location_bonus"] = 0
		breakdown["location_note"] = "platform does not expose seller locations"
	case profile.FieldAvailable(FieldLocation) && !isPlaceholderLocation(profile.Location):
		score += locationBonus
		breakdown["location_bonus"] = locationBonus
	default:
		breakdown["location_bonus"] = 0
	}

	return scoredCategory(score, breakdown)
}

// normalizeTier maps tier strings outside the known set to unverified.
func normalizeTier(tier VerificationTier) VerificationTier {
	switch tier {
	case TierIDVerified, TierPhone, TierEmail:
		return tier
	default:
		return TierUnverified
	}
}

func isPlaceholderLocation(location string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(location))
	if trimmed == "" {
		return true
	}
	for _, placeholder := range placeholderLocations {
		if trimmed == placeholder {
			return true
		}
	}
	return false
}
