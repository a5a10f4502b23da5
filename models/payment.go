package models

// Payment statuses, shared with the appointment payment_status field
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusOverdue   = "overdue"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCancelled = "cancelled"
)

type Payment struct {
	Object
	Metadata PaymentMetadata `json:"metadata"`
}

type PaymentMetadata struct {
	Appointment   *Appointment `json:"appointment,omitempty"`
	ClientName    string       `json:"client_name"`
	Amount        float64      `json:"amount"`
	PaymentMethod string       `json:"payment_method"` // cash, credit-card, insurance, bank-transfer, check
	PaymentDate   string       `json:"payment_date"`   // yyyy-MM-dd
	Status        string       `json:"status"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	RefundAmount  float64      `json:"refund_amount,omitempty"`
	RefundDate    string       `json:"refund_date,omitempty"`
}
