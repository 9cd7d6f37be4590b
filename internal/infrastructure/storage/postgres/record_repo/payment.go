package record_repo

import (
	"crmdesk/internal/domain/records/payment"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const paymentTable = "payments"

// PaymentRepo implements domain.RecordRepository for payments.
type PaymentRepo struct {
	*BaseRecordRepo[*payment.Payment]
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(db postgres.DB) *PaymentRepo {
	return &PaymentRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			paymentTable,
			postgres.ExtractDBColumns[payment.Payment](),
			[]string{"method"},
			func() *payment.Payment { return &payment.Payment{} },
		),
	}
}
