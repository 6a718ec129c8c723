package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	Base
	LeaseID       uuid.UUID     `db:"lease_id"`
	UserID        uuid.UUID     `db:"user_id"`
	Amount        float64       `db:"amount"`
	PaymentMethod string        `db:"payment_method"`
	TransactionID string        `db:"transaction_id"`
	Status        PaymentStatus `db:"status"`
	PaymentDate   time.Time     `db:"payment_date"`
}
