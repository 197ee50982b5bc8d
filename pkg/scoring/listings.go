package scoring

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Per-listing completeness points
const (
	listingTitlePoints       = 5
	listingPricePoints       = 10
	listingImagesFullPoints  = 15
	listingImagesSomePoints  = 5
	listingDescriptionPoints = 20
	listingMaxPoints         = 50
)

const (
	listingFullImageCount      = 3
	listingDescriptionMinRunes = 100
)

// CalculateListingCompleteness scores Listing Completeness over up to the
// five most recent listings.
//
// Points per listing (max 50):
// - non-empty title: 5
// - price present and numeric-looking: 10
// - 3+ images: 15, at least one image: 5
// - description of 100+ characters: 20
// Category score = average points / 50 * 100, capped at 100.
//
// Zero listings make the category unavailable; the breakdown states
// whether the platform hides listings or the seller has none.
func CalculateListingCompleteness(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	evaluated := limitListings(listings)
	if len(evaluated) == 0 {
		note := "seller has no active listings"
		if profile.FieldPlatformUnavailable(FieldListingCount) {
			note = "platform does not expose listings"
		}
		return unavailableCategory(map[string]interface{}{"note": note})
	}

	perListing := make([]int, 0, len(evaluated))
	total := 0
	for _, listing := range evaluated {
		points := listingPoints(listing)
		perListing = append(perListing, points)
		total += points
	}

	average := float64(total) / float64(len(evaluated))
	score := roundScore(average / listingMaxPoints * 100)

	return scoredCategory(score, map[string]interface{}{
		"listings_evaluated": len(evaluated),
		"average_points":     round2(average),
		"max_points":         listingMaxPoints,
		"per_listing_points": perListing,
	})
}

func listingPoints(listing RecentListing) int {
	points := 0
	if strings.TrimSpace(listing.Title) != "" {
		points += listingTitlePoints
	}
	if priceLooksNumeric(listing.Price) {
		points += listingPricePoints
	}
	if listing.ImageCount >= listingFullImageCount {
		points += listingImagesFullPoints
	} else if listing.ImageCount >= 1 {
		points += listingImagesSomePoints
	}
	if utf8.RuneCountInString(listing.Description) >= listingDescriptionMinRunes {
		points += listingDescriptionPoints
	}
	if points > listingMaxPoints {
		points = listingMaxPoints
	}
	return points
}

// priceLooksNumeric reports whether a price string parses as an amount
// once currency symbols and separators are stripped.
func priceLooksNumeric(price string) bool {
	var digits strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return false
	}
	_, err := strconv.ParseFloat(digits.String(), 64)
	return err == nil
}
