package handlers

import (
	"crmdesk/internal/domain/records/teammate"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// TeammateHandler serves HTTP requests for team member records.
type TeammateHandler = RecordHandler[*teammate.Teammate, dto.CreateTeammateRequest, dto.UpdateTeammateRequest]

// NewTeammateHandler hides the generic handler setup from the router.
func NewTeammateHandler(base *BaseHandler, svc *teammate.Service) *TeammateHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*teammate.Teammate, dto.CreateTeammateRequest, dto.UpdateTeammateRequest]{
		Service:    svc.RecordService,
		EntityName: "team member",
		MapCreateDTO: func(req dto.CreateTeammateRequest) *teammate.Teammate {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateTeammateRequest, existing *teammate.Teammate) *teammate.Teammate {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(t *teammate.Teammate) any {
			return dto.FromTeammate(t)
		},
	})
}
