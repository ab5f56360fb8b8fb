package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/rwooga/paycore/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestNewReferenceNumber(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	number := utils.NewReferenceNumber(utils.OrderPrefix, now)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20250115-[0-9a-f]{8}$`), number)

	other := utils.NewReferenceNumber(utils.OrderPrefix, now)
	assert.NotEqual(t, number, other)

	assert.Regexp(t, `^RTN-`, utils.NewReferenceNumber(utils.ReturnPrefix, now))
	assert.Regexp(t, `^REF-`, utils.NewReferenceNumber(utils.RefundPrefix, now))
}
