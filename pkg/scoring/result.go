package scoring

// Status distinguishes a scored result from an insufficient-data result.
// Insufficient data is a normal outcome, not an error.
type Status string

const (
	StatusSuccess          Status = "success"
	StatusInsufficientData Status = "insufficient_data"
)

// TrustLevel labels the overall pulse score band.
type TrustLevel string

const (
	TrustExcellent TrustLevel = "Excellent"
	TrustGood      TrustLevel = "Good"
	TrustFair      TrustLevel = "Fair"
	TrustPoor      TrustLevel = "Poor"
	TrustVeryPoor  TrustLevel = "Very Poor"
)

// ConfidenceLevel labels the confidence band.
type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "Very High"
	ConfidenceHigh     ConfidenceLevel = "High"
	ConfidenceMedium   ConfidenceLevel = "Medium"
	ConfidenceLow      ConfidenceLevel = "Low"
	ConfidenceVeryLow  ConfidenceLevel = "Very Low"
)

// Severity tags a risk factor.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// CategoryScore is the outcome of one category scorer. Score is nil
// exactly when Available is false; an available score is always within
// [0,100]. Breakdown is an open key-value record of the inputs and
// deductions behind the number and is surfaced verbatim in user-facing
// explanations.
type CategoryScore struct {
	Score     *int                   `json:"score"`
	Available bool                   `json:"available"`
	Breakdown map[string]interface{} `json:"breakdown"`
}

// scoredCategory builds an available CategoryScore with the value clamped
// to [0,100].
func scoredCategory(score int, breakdown map[string]interface{}) CategoryScore {
	v := clampScore(score)
	return CategoryScore{Score: &v, Available: true, Breakdown: breakdown}
}

// unavailableCategory builds a CategoryScore for a category with no
// usable data.
func unavailableCategory(breakdown map[string]interface{}) CategoryScore {
	return CategoryScore{Score: nil, Available: false, Breakdown: breakdown}
}

// ConfidenceMetrics carries the three confidence inputs and the combined
// figure (0.5*coverage + 0.3*recency + 0.2*consistency, rounded to two
// decimals).
type ConfidenceMetrics struct {
	Coverage    float64 `json:"coverage"`
	Recency     float64 `json:"recency"`
	Consistency float64 `json:"consistency"`
	Confidence  float64 `json:"confidence"`
}

// RiskFactor is one category scoring below its danger threshold.
type RiskFactor struct {
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// StrengthArea is one category scoring at or above the strength threshold.
type StrengthArea struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
	Message  string   `json:"message"`
}

// ScoringResult is the full trust assessment envelope. PulseScore,
// TrustLevel, Categories, CategoryWeights, RiskFactors and StrengthAreas
// are populated only when Status is success; an insufficient-data result
// carries the confidence metrics, the available/missing category split
// and a single advisory recommendation.
type ScoringResult struct {
	Status              Status                     `json:"status"`
	PulseScore          *int                       `json:"pulse_score"`
	Confidence          float64                    `json:"confidence"`
	ConfidenceLevel     ConfidenceLevel            `json:"confidence_level,omitempty"`
	TrustLevel          TrustLevel                 `json:"trust_level,omitempty"`
	Categories          map[Category]CategoryScore `json:"categories,omitempty"`
	CategoryWeights     map[Category]int           `json:"category_weights,omitempty"`
	Metrics             ConfidenceMetrics          `json:"confidence_metrics"`
	AvailableCategories []Category                 `json:"available_categories"`
	MissingCategories   []Category                 `json:"missing_categories"`
	Recommendations     []string                   `json:"recommendations"`
	RiskFactors         []RiskFactor               `json:"risk_factors,omitempty"`
	StrengthAreas       []StrengthArea             `json:"strength_areas,omitempty"`
}
