package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewOrderNumber returns a human-readable order number: "ORD-" followed by
// the first block of a fresh UUID, uppercased. Collisions are treated as
// negligible here; the orders table's unique constraint is the backstop,
// and retry-on-constraint-violation is the recommended hardening if that
// ever fires in practice.
func NewOrderNumber() string {
	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return "ORD-" + strings.ToUpper(token)
}
