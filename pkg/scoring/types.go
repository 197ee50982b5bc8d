// Package scoring provides pure calculation functions for marketplace seller
// trust scores. All functions are stateless and perform no I/O.
package scoring

import (
	"github.com/go-playground/validator/v10"
)

// Category identifies one of the seven scored trust categories.
type Category string

const (
	CategoryVerification Category = "verification_identity"
	CategoryMaturity     Category = "account_maturity"
	CategoryListings     Category = "listing_completeness"
	CategoryActivity     Category = "activity_recency"
	CategoryEngagement   Category = "engagement"
	CategoryCommunity    Category = "community_feedback"
	CategoryRedFlags     Category = "behavioral_red_flags"
)

// CategoryOrder fixes the evaluation and reporting order of the categories.
var CategoryOrder = [7]Category{
	CategoryVerification,
	CategoryMaturity,
	CategoryListings,
	CategoryActivity,
	CategoryEngagement,
	CategoryCommunity,
	CategoryRedFlags,
}

// DisplayName returns the human-readable category name used in
// recommendations and risk messages.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVerification:
		return "Verification & Identity"
	case CategoryMaturity:
		return "Account Maturity"
	case CategoryListings:
		return "Listing Completeness"
	case CategoryActivity:
		return "Activity & Recency"
	case CategoryEngagement:
		return "Engagement"
	case CategoryCommunity:
		return "Community Feedback"
	case CategoryRedFlags:
		return "Behavioral Red Flags"
	default:
		return string(c)
	}
}

// Availability is the tri-state recorded per profile field by the
// extraction layer. Absence of data is never an error; the two negative
// states differ only in attribution: "unavailable" means the marketplace
// exposes the field but the seller has no value, "platform_unavailable"
// means the marketplace never exposes it.
type Availability string

const (
	AvailabilityAvailable           Availability = "available"
	AvailabilityUnavailable         Availability = "unavailable"
	AvailabilityPlatformUnavailable Availability = "platform_unavailable"
)

// ProfileField keys the per-field availability map.
type ProfileField string

const (
	FieldName         ProfileField = "name"
	FieldPhoto        ProfileField = "photo"
	FieldLocation     ProfileField = "location"
	FieldBio          ProfileField = "bio"
	FieldAccountAge   ProfileField = "account_age"
	FieldListingCount ProfileField = "listing_count"
	FieldRating       ProfileField = "rating"
	FieldReviewCount  ProfileField = "review_count"
	FieldResponseRate ProfileField = "response_rate"
	FieldVerification ProfileField = "verification"
	FieldLastActive   ProfileField = "last_active"
	FieldFollowers    ProfileField = "followers"
)

// VerificationTier is the strongest identity verification the seller holds.
// Tier strings outside the known set are treated as unverified.
type VerificationTier string

const (
	TierIDVerified VerificationTier = "id"
	TierPhone      VerificationTier = "phone"
	TierEmail      VerificationTier = "email"
	TierUnverified VerificationTier = "unverified"
)

// MaxEvaluatedListings caps how many recent listings the scorers inspect.
// Callers supply listings most-recent-first; entries beyond the cap are
// ignored.
const MaxEvaluatedListings = 5

// SellerProfile is the canonical seller snapshot produced by the
// extraction layer. Numeric fields carry their zero value whenever the
// Availability map marks the field as anything other than available.
type SellerProfile struct {
	SellerID         string                        `json:"seller_id,omitempty"`
	Marketplace      string                        `json:"marketplace,omitempty"`
	Name             string                        `json:"name"`
	HasPhoto         bool                          `json:"has_photo"`
	Location         string                        `json:"location"`
	Bio              string                        `json:"bio"`
	AccountAgeMonths int                           `json:"account_age_months" validate:"gte=0"`
	ListingCount     int                           `json:"listing_count" validate:"gte=0"`
	AvgRating        float64                       `json:"avg_rating" validate:"gte=0,lte=5"`
	ReviewCount      int                           `json:"review_count" validate:"gte=0"`
	ResponseRate     float64                       `json:"response_rate" validate:"gte=0,lte=100"`
	Followers        int                           `json:"followers" validate:"gte=0"`
	Verification     VerificationTier              `json:"verification"`
	LastActiveDays   int                           `json:"last_active_days" validate:"gte=0"`
	Availability     map[ProfileField]Availability `json:"availability" validate:"required"`
}

// RecentListing is one of the seller's most recent listings. Price is kept
// as the raw marketplace string so the completeness scorer can judge
// whether it is numeric-looking.
type RecentListing struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"`
	ImageCount  int     `json:"image_count" validate:"gte=0"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating,omitempty" validate:"gte=0,lte=5"`
}

// CommunityFeedback carries crowd-sourced endorsement and flag counts for
// the seller. A nil value, or one with both counts zero, means no
// community feedback exists.
type CommunityFeedback struct {
	Endorsements int `json:"endorsements" validate:"gte=0"`
	Flags        int `json:"flags" validate:"gte=0"`
}

// Validate checks the profile against its struct tags.
func (p *SellerProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate checks the listing against its struct tags.
func (l *RecentListing) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}

// Validate checks the feedback counts against their struct tags.
func (f *CommunityFeedback) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}

// FieldAvailability returns the recorded state for a profile field. A
// field with no entry in the map reads as unavailable.
func (p *SellerProfile) FieldAvailability(field ProfileField) Availability {
	if p.Availability == nil {
		return AvailabilityUnavailable
	}
	if state, ok := p.Availability[field]; ok && state != "" {
		return state
	}
	return AvailabilityUnavailable
}

// FieldAvailable reports whether a profile field carries usable data.
func (p *SellerProfile) FieldAvailable(field ProfileField) bool {
	return p.FieldAvailability(field) == AvailabilityAvailable
}

// FieldPlatformUnavailable reports whether the marketplace never exposes
// the field. Scorers record the exemption instead of penalizing it.
func (p *SellerProfile) FieldPlatformUnavailable(field ProfileField) bool {
	return p.FieldAvailability(field) == AvailabilityPlatformUnavailable
}

// ScorerFunc is the single signature every category scorer conforms to.
// Scorers are pure: same inputs, same CategoryScore.
type ScorerFunc func(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) CategoryScore

func limitListings(listings []RecentListing) []RecentListing {
	if len(listings) > MaxEvaluatedListings {
		return listings[:MaxEvaluatedListings]
	}
	return listings
}
