package testutil

// FixedTokenGenerator returns the same run token every time.
//
// This enables deterministic execution and golden snapshot comparison:
// the same scenario with the same FixedTokenGenerator produces
// byte-identical transcripts.
//
// Thread-safety: FixedTokenGenerator is stateless and safe for
// concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed run token generator.
//
// The token is typically set in the scenario YAML:
//
//	run_token: "test-run-00000000-0000-0000-0000-000000000001"
//
// If token is empty, Generate() returns "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed run token.
//
// Implements demo.TokenGenerator.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
