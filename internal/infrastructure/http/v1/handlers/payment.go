package handlers

import (
	"crmdesk/internal/domain/records/payment"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// PaymentHandler serves HTTP requests for payment records.
type PaymentHandler = RecordHandler[*payment.Payment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]

// NewPaymentHandler hides the generic handler setup from the router.
func NewPaymentHandler(base *BaseHandler, svc *payment.Service) *PaymentHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*payment.Payment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]{
		Service:    svc.RecordService,
		EntityName: "payment",
		MapCreateDTO: func(req dto.CreatePaymentRequest) *payment.Payment {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdatePaymentRequest, existing *payment.Payment) *payment.Payment {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *payment.Payment) any {
			return dto.FromPayment(p)
		},
	})
}
