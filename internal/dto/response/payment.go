package response

import (
	"time"

	"vehicle-leasing/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	LeaseID       string               `json:"lease_id"`
	UserID        string               `json:"user_id"`
	Amount        float64              `json:"amount"`
	PaymentMethod string               `json:"payment_method"`
	TransactionID string               `json:"transaction_id"`
	Status        entity.PaymentStatus `json:"status"`
	PaymentDate   time.Time            `json:"payment_date"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converter
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		LeaseID:       payment.LeaseID.String(),
		UserID:        payment.UserID.String(),
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		PaymentDate:   payment.PaymentDate,
		CreatedAt:     payment.CreatedAt,
	}
}
