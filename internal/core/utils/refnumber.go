package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReferenceNumber builds a human-readable reference such as
// ORD-20250115-a1b2c3d4. The hex tail comes from a fresh UUID, so collisions
// are left to the unique index to catch.
func NewReferenceNumber(prefix string, now time.Time) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), hex)
}

const (
	OrderPrefix  = "ORD"
	ReturnPrefix = "RTN"
	RefundPrefix = "REF"
)
