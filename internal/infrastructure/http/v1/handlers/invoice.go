package handlers

import (
	"crmdesk/internal/domain/records/invoice"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves HTTP requests for invoice records.
type InvoiceHandler = RecordHandler[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]

// NewInvoiceHandler hides the generic handler setup from the router.
func NewInvoiceHandler(base *BaseHandler, svc *invoice.Service) *InvoiceHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*invoice.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest]{
		Service:    svc.RecordService,
		EntityName: "invoice",
		MapCreateDTO: func(req dto.CreateInvoiceRequest) *invoice.Invoice {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateInvoiceRequest, existing *invoice.Invoice) *invoice.Invoice {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(inv *invoice.Invoice) any {
			return dto.FromInvoice(inv)
		},
	})
}
