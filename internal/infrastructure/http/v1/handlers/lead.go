package handlers

import (
	"crmdesk/internal/domain/records/lead"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// LeadHandler serves HTTP requests for lead records.
type LeadHandler = RecordHandler[*lead.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest]

// NewLeadHandler hides the generic handler setup from the router.
func NewLeadHandler(base *BaseHandler, svc *lead.Service) *LeadHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*lead.Lead, dto.CreateLeadRequest, dto.UpdateLeadRequest]{
		Service:    svc.RecordService,
		EntityName: "lead",
		MapCreateDTO: func(req dto.CreateLeadRequest) *lead.Lead {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateLeadRequest, existing *lead.Lead) *lead.Lead {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(l *lead.Lead) any {
			return dto.FromLead(l)
		},
	})
}
