package token

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const confirmationCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	mu     sync.Mutex
	seeded = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewBookingReference returns a "BK"-prefixed 8-character reference
// derived from a random UUID. Uniqueness is enforced by the bookings
// table constraint; the identifier space makes collisions negligible.
func NewBookingReference() string {
	return "BK" + uuidFragment(8)
}

// NewPaymentID returns a "PAY"-prefixed 10-character payment identifier.
func NewPaymentID() string {
	return "PAY" + uuidFragment(10)
}

// NewConfirmationCode returns an 8-character code from a uniform
// uppercase alphanumeric alphabet, distinct in format from the booking
// reference.
func NewConfirmationCode() string {
	mu.Lock()
	defer mu.Unlock()

	b := make([]byte, confirmationCodeLength)
	for i := range b {
		b[i] = letterBytes[seeded.Intn(len(letterBytes))]
	}
	return string(b)
}

// NewSessionToken returns an opaque token for the auth_tokens table.
func NewSessionToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func uuidFragment(n int) string {
	s := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return s[:n]
}
