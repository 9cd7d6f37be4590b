package record_repo

import (
	"crmdesk/internal/domain/records/invoice"
	"crmdesk/internal/infrastructure/storage/postgres"
)

const invoiceTable = "invoices"

// InvoiceRepo implements domain.RecordRepository for invoices.
type InvoiceRepo struct {
	*BaseRecordRepo[*invoice.Invoice]
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(db postgres.DB) *InvoiceRepo {
	return &InvoiceRepo{
		BaseRecordRepo: NewBaseRecordRepo(
			db,
			invoiceTable,
			postgres.ExtractDBColumns[invoice.Invoice](),
			[]string{"number"},
			func() *invoice.Invoice { return &invoice.Invoice{} },
		),
	}
}
