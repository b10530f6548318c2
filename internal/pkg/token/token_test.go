package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingReference(t *testing.T) {
	ref := NewBookingReference()

	assert.Len(t, ref, 10)
	assert.True(t, strings.HasPrefix(ref, "BK"))
	assert.Equal(t, strings.ToUpper(ref), ref)
}

func TestNewPaymentID(t *testing.T) {
	id := NewPaymentID()

	assert.Len(t, id, 13)
	assert.True(t, strings.HasPrefix(id, "PAY"))
}

func TestNewConfirmationCode(t *testing.T) {
	code := NewConfirmationCode()

	assert.Len(t, code, 8)
	for _, c := range code {
		assert.Contains(t, letterBytes, string(c))
	}
}

func TestNewSessionToken(t *testing.T) {
	tok := NewSessionToken()

	assert.Len(t, tok, 64)
	assert.NotContains(t, tok, "-")
	assert.NotEqual(t, tok, NewSessionToken())
}

func TestReferencesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		ref := NewBookingReference()
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
