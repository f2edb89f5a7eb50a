package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReferenceNumber(t *testing.T) {
	day := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "ROOM20260901001", ReferenceNumber("ROOM", day, 1))
	assert.Equal(t, "AMB20260901042", ReferenceNumber("AMB", day, 42))
	assert.Equal(t, "APP20260901999", ReferenceNumber("APP", day, 999))
}

func TestReferenceNumberSequential(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	first := ReferenceNumber("ROOM", day, 1)
	second := ReferenceNumber("ROOM", day, 2)
	assert.NotEqual(t, first, second)
	assert.Equal(t, first[:len(first)-3], second[:len(second)-3])
}

func TestTransactionID(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 45, 0, time.UTC)

	id := TransactionID(now)
	assert.True(t, strings.HasPrefix(id, "TRX20260901143045"))
	assert.Len(t, id, len("TRX20260901143045")+3)
}
