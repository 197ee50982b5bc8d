package scoring

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Red flag families. Each family applies at most once per listing.
const (
	FlagUrgency        = "urgency_language"
	FlagFinancial      = "financial_pressure"
	FlagCashOnly       = "cash_only_payment"
	FlagFirstCome      = "first_come_first_serve"
	FlagOffPlatform    = "off_platform_contact"
	FlagAllCapsTitle   = "all_caps_title"
	FlagExcessiveEmoji = "excessive_emoji"
)

// Family penalties
const (
	penaltyUrgency        = 15
	penaltyFinancial      = 15
	penaltyCashOnly       = 20
	penaltyFirstCome      = 10
	penaltyOffPlatform    = 20
	penaltyAllCapsTitle   = 5
	penaltyExcessiveEmoji = 5
)

const (
	allCapsMinRunes   = 5
	excessiveEmojiMax = 3
)

var urgencyPhrases = []string{
	"urgent",
	"act fast",
	"act now",
	"hurry",
	"limited time",
	"today only",
	"last chance",
	"selling fast",
	"won't last",
	"wont last",
}

var financialPressurePhrases = []string{
	"need money",
	"need cash",
	"must sell",
	"need to sell",
	"quick sale",
	"desperate",
}

var cashOnlyPhrases = []string{
	"cash only",
	"cash app",
	"cashapp",
	"venmo only",
	"zelle only",
	"western union",
	"wire transfer",
	"gift card",
	"crypto only",
	"bitcoin only",
}

var firstComePhrases = []string{
	"first come first serve",
	"first come first served",
	"first come, first serve",
	"first come, first served",
}

var offPlatformPhrases = []string{
	"whatsapp",
	"telegram",
	"text me",
	"call me",
	"dm me",
	"email me at",
	"kik",
}

// phonePattern matches contact numbers embedded in listing text.
var phonePattern = regexp.MustCompile(`\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)

// FlagHit records one matched red flag. The listing index is 1-based so
// the entry reads naturally in user-facing explanations.
type FlagHit struct {
	Listing int    `json:"listing"`
	Flag    string `json:"flag"`
	Penalty int    `json:"penalty"`
}

type flagRule struct {
	name    string
	penalty int
	matches func(listing RecentListing, lowered string) bool
}

// flagRules fixes the scan order of the families.
var flagRules = []flagRule{
	{FlagUrgency, penaltyUrgency, func(_ RecentListing, text string) bool {
		return containsAny(text, urgencyPhrases)
	}},
	{FlagFinancial, penaltyFinancial, func(_ RecentListing, text string) bool {
		return containsAny(text, financialPressurePhrases)
	}},
	{FlagCashOnly, penaltyCashOnly, func(_ RecentListing, text string) bool {
		return containsAny(text, cashOnlyPhrases)
	}},
	{FlagFirstCome, penaltyFirstCome, func(_ RecentListing, text string) bool {
		return containsAny(text, firstComePhrases)
	}},
	{FlagOffPlatform, penaltyOffPlatform, func(_ RecentListing, text string) bool {
		return containsAny(text, offPlatformPhrases) || phonePattern.MatchString(text)
	}},
	{FlagAllCapsTitle, penaltyAllCapsTitle, func(listing RecentListing, _ string) bool {
		return isAllCapsTitle(listing.Title)
	}},
	{FlagExcessiveEmoji, penaltyExcessiveEmoji, func(listing RecentListing, _ string) bool {
		return countPictographs(listing.Title+" "+listing.Description) > excessiveEmojiMax
	}},
}

// CalculateRedFlags scores Behavioral Red Flags by scanning listing text.
//
// The score starts at 100 and each matched family deducts its penalty,
// floored at 0:
// - urgency language: -15
// - financial pressure: -15
// - cash-only or suspicious payment: -20
// - first come first serve: -10
// - off-platform contact (messaging handoff or phone number): -20
// - ALL-CAPS title longer than 5 characters: -5
// - more than 3 emoji or pictograph glyphs: -5
// Every hit is listed in the breakdown with its listing index and penalty.
// With no listings to scan the category is unavailable.
func CalculateRedFlags(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore {
	evaluated := limitListings(listings)
	if len(evaluated) == 0 {
		note := "no listings to scan"
		if profile.FieldPlatformUnavailable(FieldListingCount) {
			note = "platform does not expose listings"
		}
		return unavailableCategory(map[string]interface{}{"note": note})
	}

	score := 100
	deduction := 0
	hits := []FlagHit{}
	for i, listing := range evaluated {
		lowered := strings.ToLower(listing.Title + " " + listing.Description)
		for _, rule := range flagRules {
			if rule.matches(listing, lowered) {
				score -= rule.penalty
				deduction += rule.penalty
				hits = append(hits, FlagHit{Listing: i + 1, Flag: rule.name, Penalty: rule.penalty})
			}
		}
	}

	return scoredCategory(score, map[string]interface{}{
		"flags":      hits,
		"flag_count": len(hits),
		"deduction":  deduction,
	})
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

// isAllCapsTitle reports whether a title longer than 5 characters is
// written entirely in capitals.
func isAllCapsTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	if utf8.RuneCountInString(trimmed) <= allCapsMinRunes {
		return false
	}
	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func countPictographs(text string) int {
	count := 0
	for _, r := range text {
		if isPictograph(r) {
			count++
		}
	}
	return count
}

// isPictograph covers the emoji and pictograph blocks plus the legacy
// symbol ranges marketplaces commonly see in listing titles.
func isPictograph(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0x2B00 && r <= 0x2BFF:
		return true
	}
	return false
}
