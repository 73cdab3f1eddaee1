package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateUUIDString() string {
	return uuid.New().String()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateSessionToken issues the opaque id handed to a client when it
// starts a booking session.
func GenerateSessionToken() string {
	return uuid.New().String()
}

// ==================== BOOKING ID ====================

var bookingRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateBookingID produces a human-readable booking reference.
// Format: BK-YYYYMMDD-HHMMSS-RANDOM
func GenerateBookingID() string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", bookingRand.Intn(10000))

	return fmt.Sprintf("BK-%s-%s-%s", datePart, timePart, randomPart)
}
