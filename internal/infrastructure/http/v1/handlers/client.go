package handlers

import (
	"crmdesk/internal/domain/records/client"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// ClientHandler serves HTTP requests for client records.
type ClientHandler = RecordHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]

// NewClientHandler hides the generic handler setup from the router.
func NewClientHandler(base *BaseHandler, svc *client.Service) *ClientHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    svc.RecordService,
		EntityName: "client",
		MapCreateDTO: func(req dto.CreateClientRequest) *client.Client {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) *client.Client {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(c *client.Client) any {
			return dto.FromClient(c)
		},
	})
}
