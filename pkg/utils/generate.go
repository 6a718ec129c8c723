package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateSessionToken returns an opaque session token
func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateTransactionID synthesizes a simulated gateway transaction id.
// Format: SIM-<unix-millis>, matching what a sandbox gateway would return.
func GenerateTransactionID() string {
	return fmt.Sprintf("SIM-%d", time.Now().UnixMilli())
}