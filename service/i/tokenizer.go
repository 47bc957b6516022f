package i

import (
	"time"
)

// Tokenizer signs and validates bearer tokens.
type Tokenizer interface {
	// Generate signs claims into a token valid for expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token from this issuer and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
