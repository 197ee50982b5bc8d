package common

import (
	"github.com/google/uuid"
)

// NewScorecardID generates a unique scorecard document ID with the "card_" prefix
// Format: card_<uuid>
func NewScorecardID() string {
	return "card_" + uuid.New().String()
}
