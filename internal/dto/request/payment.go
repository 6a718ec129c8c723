package request

type CreatePaymentRequest struct {
	LeaseID       string  `json:"leaseId" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required"`
	TransactionID *string `json:"transactionId,omitempty"`
}
