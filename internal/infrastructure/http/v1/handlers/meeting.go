package handlers

import (
	"crmdesk/internal/domain/records/meeting"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// MeetingHandler serves HTTP requests for meeting records.
type MeetingHandler = RecordHandler[*meeting.Meeting, dto.CreateMeetingRequest, dto.UpdateMeetingRequest]

// NewMeetingHandler hides the generic handler setup from the router.
func NewMeetingHandler(base *BaseHandler, svc *meeting.Service) *MeetingHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*meeting.Meeting, dto.CreateMeetingRequest, dto.UpdateMeetingRequest]{
		Service:    svc.RecordService,
		EntityName: "meeting",
		MapCreateDTO: func(req dto.CreateMeetingRequest) *meeting.Meeting {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateMeetingRequest, existing *meeting.Meeting) *meeting.Meeting {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(m *meeting.Meeting) any {
			return dto.FromMeeting(m)
		},
	})
}
