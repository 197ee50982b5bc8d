package scoring

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/pulse/internal/common"
)

// scorerTable fixes the category evaluation order. It mirrors
// CategoryOrder entry for entry.
var scorerTable = [7]struct {
	category Category
	calc     ScorerFunc
}{
	{CategoryVerification, CalculateVerification},
	{CategoryMaturity, CalculateAccountMaturity},
	{CategoryListings, CalculateListingCompleteness},
	{CategoryActivity, CalculateActivity},
	{CategoryEngagement, CalculateEngagement},
	{CategoryCommunity, CalculateCommunityFeedback},
	{CategoryRedFlags, CalculateRedFlags},
}

// Engine computes pulse scores for seller snapshots. It holds only
// configuration and a logger and is safe for concurrent use.
type Engine struct {
	config Config
	logger arbor.ILogger
}

// NewEngine returns an engine with the default configuration.
func NewEngine() *Engine {
	return &Engine{
		config: NewDefaultConfig(),
		logger: common.GetLogger(),
	}
}

// NewEngineWithConfig returns an engine with a custom weight table and
// gate thresholds.
func NewEngineWithConfig(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{
		config: config,
		logger: common.GetLogger(),
	}, nil
}

// WithLogger replaces the engine logger.
func (e *Engine) WithLogger(logger arbor.ILogger) *Engine {
	if logger != nil {
		e.logger = logger
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Score computes the trust assessment for one seller snapshot.
//
// Pipeline:
// 1. Validate the input contract
// 2. Run the seven category scorers in declaration order
// 3. Derive the confidence metrics
// 4. Apply the insufficient-data gate
// 5. Aggregate the weighted pulse score
// 6. Synthesize labels, recommendations, risks and strengths
//
// Missing optional data never returns an error. The only error path is a
// structural contract violation: a nil profile, a nil availability map or
// a field outside its tagged range. The result is deterministic for
// identical inputs.
func (e *Engine) Score(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) (*ScoringResult, error) {
	if profile == nil {
		return nil, fmt.Errorf("seller profile is required")
	}

	if len(listings) > MaxEvaluatedListings {
		e.logger.Debug().
			Int("supplied", len(listings)).
			Int("evaluated", MaxEvaluatedListings).
			Msg("ignoring listings beyond the most recent")
		listings = listings[:MaxEvaluatedListings]
	}

	if err := validateInputs(profile, listings, feedback); err != nil {
		return nil, err
	}

	categories := make(map[Category]CategoryScore, len(scorerTable))
	available := []Category{}
	missing := []Category{}
	for _, entry := range scorerTable {
		result := entry.calc(profile, listings, feedback)
		categories[entry.category] = result
		if result.Available {
			available = append(available, entry.category)
			e.logger.Debug().
				Str("category", string(entry.category)).
				Int("score", *result.Score).
				Msg("category scored")
		} else {
			missing = append(missing, entry.category)
			e.logger.Debug().
				Str("category", string(entry.category)).
				Msg("category unavailable")
		}
	}

	metrics := CalculateConfidence(profile, listings, categories)

	if !gatePassed(metrics, e.config.Gate) {
		e.logger.Info().
			Str("seller", profile.SellerID).
			Float64("confidence", metrics.Confidence).
			Float64("coverage", metrics.Coverage).
			Msg("insufficient data for a reliable score")
		return &ScoringResult{
			Status:              StatusInsufficientData,
			Confidence:          metrics.Confidence,
			Metrics:             metrics,
			AvailableCategories: available,
			MissingCategories:   missing,
			Recommendations:     []string{insufficientDataAdvisory},
		}, nil
	}

	pulse, weights := AggregateScore(categories, e.config.Weights)
	recommendations, risks, strengths := Synthesize(pulse, categories)

	e.logger.Info().
		Str("seller", profile.SellerID).
		Int("pulse_score", pulse).
		Float64("confidence", metrics.Confidence).
		Str("trust_level", string(determineTrustLevel(pulse))).
		Msg("pulse score computed")

	return &ScoringResult{
		Status:              StatusSuccess,
		PulseScore:          &pulse,
		Confidence:          metrics.Confidence,
		ConfidenceLevel:     determineConfidenceLevel(metrics.Confidence),
		TrustLevel:          determineTrustLevel(pulse),
		Categories:          categories,
		CategoryWeights:     weights,
		Metrics:             metrics,
		AvailableCategories: available,
		MissingCategories:   missing,
		Recommendations:     recommendations,
		RiskFactors:         risks,
		StrengthAreas:       strengths,
	}, nil
}

// validateInputs enforces the structural input contract. Malformed
// optional data never lands here; it degrades to unavailable semantics in
// the scorers instead.
func validateInputs(profile *SellerProfile, listings []RecentListing, feedback *CommunityFeedback) error {
	if profile.Availability == nil {
		return fmt.Errorf("seller profile availability map is required")
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid seller profile: %w", err)
	}
	for i := range listings {
		if err := listings[i].Validate(); err != nil {
			return fmt.Errorf("invalid listing %d: %w", i, err)
		}
	}
	if feedback != nil {
		if err := feedback.Validate(); err != nil {
			return fmt.Errorf("invalid community feedback: %w", err)
		}
	}
	return nil
}
