package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// ReferenceNumber formats a daily-sequential human-readable identifier:
// PREFIX + YYYYMMDD + zero-padded sequence. seq is the count of records of
// the same entity created the same day, plus one. Callers obtain the count
// inside the creating transaction; uniqueness is still best-effort under
// concurrent creation within the same day.
func ReferenceNumber(prefix string, day time.Time, seq int64) string {
	return fmt.Sprintf("%s%s%03d", prefix, day.Format("20060102"), seq)
}

// TransactionID generates a payment transaction reference:
// TRX + YYYYMMDDHHMMSS + random 3-digit suffix. Unique per second only up
// to the random suffix.
func TransactionID(now time.Time) string {
	return fmt.Sprintf("TRX%s%03d", now.Format("20060102150405"), rand.Intn(999)+1)
}
