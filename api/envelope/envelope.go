// Package envelope - Input normalization and request identity
// Handlers never pass raw JSON into the engine: input is normalized
// into an envelope carrying a deterministic hash, so identical trips
// produce identical identities in logs and diagnostics.
package envelope

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"tripcost/core/types"
)

// InputEnvelope is the normalized representation of an estimation request
type InputEnvelope struct {
	// RequestID uniquely identifies this request
	RequestID string `json:"request_id"`

	// InputHash is the deterministic hash of the normalized params
	InputHash string `json:"input_hash"`

	// NormalizedAt is when normalization happened
	NormalizedAt time.Time `json:"normalized_at"`

	// Params are the normalized trip parameters
	Params types.TripParams `json:"params"`
}

// Normalize canonicalizes trip parameters and wraps them in an envelope
func Normalize(params types.TripParams) (*InputEnvelope, error) {
	params.OriginCity = strings.TrimSpace(params.OriginCity)
	params.DestinationCity = strings.TrimSpace(params.DestinationCity)
	params.DestinationCode = strings.ToUpper(strings.TrimSpace(params.DestinationCode))

	// truncate to calendar dates; the engine operates on dates only
	params.StartDate = params.StartDate.Truncate(24 * time.Hour)
	params.EndDate = params.EndDate.Truncate(24 * time.Hour)

	hash, err := hashParams(params)
	if err != nil {
		return nil, err
	}

	return &InputEnvelope{
		RequestID:    uuid.NewString(),
		InputHash:    hash,
		NormalizedAt: time.Now().UTC(),
		Params:       params,
	}, nil
}

// hashParams produces a deterministic hash of the canonical JSON form
func hashParams(params types.TripParams) (string, error) {
	canonical, err := json.Marshal(params)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:8]), nil
}
