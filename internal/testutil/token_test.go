package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedTokenGenerator_ReturnsSameToken(t *testing.T) {
	gen := NewFixedTokenGenerator("test-run-001")

	assert.Equal(t, "test-run-001", gen.Generate())
	assert.Equal(t, "test-run-001", gen.Generate())
}

func TestFixedTokenGenerator_EmptyDefaults(t *testing.T) {
	gen := NewFixedTokenGenerator("")
	assert.Equal(t, "test-run-default", gen.Generate())
}
