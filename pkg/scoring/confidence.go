package scoring

import "strings"

// Confidence component weights
const (
	confidenceCoverageWeight    = 0.5
	confidenceRecencyWeight     = 0.3
	confidenceConsistencyWeight = 0.2
)

// Recency metric tiers
const (
	recencyFreshDays = 30
	recencyAgingDays = 60
	recencyFresh     = 1.0
	recencyAging     = 0.6
	recencyStale     = 0.3
)

const consistencyPenalized = 0.7

// businessBioPhrases suggest a commercial operation behind a personal
// profile. Paired with a zero verification score this lowers consistency.
var businessBioPhrases = []string{
	"we supply",
	"we sell",
	"we offer",
	"we provide",
	"our company",
	"our business",
	"our store",
	"wholesale",
	"bulk orders",
}

// CalculateConfidence derives the confidence metrics for a scored
// snapshot.
//
// - coverage: available categories / 7
// - recency: 1.0 last seen within 30 days, 0.6 within 60, 0.3 beyond;
//   unknown last-seen with listing evidence reads 0.6, otherwise 0.3
// - consistency: 1.0, lowered to 0.7 when the bio reads like a business
//   while verification scored exactly 0
// - confidence: 0.5*coverage + 0.3*recency + 0.2*consistency, rounded to
//   two decimals
func CalculateConfidence(profile *SellerProfile, listings []RecentListing, categories map[Category]CategoryScore) ConfidenceMetrics {
	available := 0
	for _, category := range CategoryOrder {
		if categories[category].Available {
			available++
		}
	}
	coverage := float64(available) / float64(len(CategoryOrder))

	recency := recencyStale
	if profile.FieldAvailable(FieldLastActive) {
		switch {
		case profile.LastActiveDays <= recencyFreshDays:
			recency = recencyFresh
		case profile.LastActiveDays <= recencyAgingDays:
			recency = recencyAging
		}
	} else if hasListingActivity(profile, listings) {
		recency = recencyAging
	}

	consistency := 1.0
	if bioReadsCommercial(profile) && verificationScoreIsZero(categories) {
		consistency = consistencyPenalized
	}

	confidence := round2(confidenceCoverageWeight*coverage +
		confidenceRecencyWeight*recency +
		confidenceConsistencyWeight*consistency)

	return ConfidenceMetrics{
		Coverage:    coverage,
		Recency:     recency,
		Consistency: consistency,
		Confidence:  confidence,
	}
}

func bioReadsCommercial(profile *SellerProfile) bool {
	if !profile.FieldAvailable(FieldBio) {
		return false
	}
	bio := strings.ToLower(profile.Bio)
	if strings.TrimSpace(bio) == "" {
		return false
	}
	return containsAny(bio, businessBioPhrases)
}

func verificationScoreIsZero(categories map[Category]CategoryScore) bool {
	verification, ok := categories[CategoryVerification]
	if !ok || verification.Score == nil {
		return false
	}
	return *verification.Score == 0
}

// gatePassed applies the insufficient-data gate. Values exactly at a
// threshold pass.
func gatePassed(metrics ConfidenceMetrics, gate GateConfig) bool {
	return metrics.Confidence >= gate.MinConfidence && metrics.Coverage >= gate.MinCoverage
}
