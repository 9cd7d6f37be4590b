package dto

import (
	"time"

	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/records/meeting"
)

// CreateMeetingRequest is the request body for creating a meeting.
type CreateMeetingRequest struct {
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	DurationMin int       `json:"durationMin"`
	Location    *string   `json:"location"`
	ClientID    *id.ID    `json:"clientId"`
	Notes       *string   `json:"notes"`
}

// ToEntity converts DTO to domain record.
func (r *CreateMeetingRequest) ToEntity() *meeting.Meeting {
	m := meeting.NewMeeting(r.Title, r.ScheduledAt)
	if r.DurationMin > 0 {
		m.DurationMin = r.DurationMin
	}
	m.Location = r.Location
	m.ClientID = r.ClientID
	m.Notes = r.Notes
	return m
}

// UpdateMeetingRequest is the request body for updating a meeting.
type UpdateMeetingRequest struct {
	Title       string    `json:"title" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	DurationMin int       `json:"durationMin"`
	Location    *string   `json:"location"`
	ClientID    *id.ID    `json:"clientId"`
	Notes       *string   `json:"notes"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateMeetingRequest) ApplyTo(m *meeting.Meeting) {
	m.Title = r.Title
	m.ScheduledAt = r.ScheduledAt
	m.DurationMin = r.DurationMin
	m.Location = r.Location
	m.ClientID = r.ClientID
	m.Notes = r.Notes
}

// MeetingResponse is the response body for a meeting.
type MeetingResponse struct {
	BaseResponse
	Title       string    `json:"title"`
	ScheduledAt time.Time `json:"scheduledAt"`
	DurationMin int       `json:"durationMin"`
	Location    *string   `json:"location,omitempty"`
	ClientID    *string   `json:"clientId,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// FromMeeting creates response DTO from domain record.
func FromMeeting(m *meeting.Meeting) MeetingResponse {
	resp := MeetingResponse{
		BaseResponse: FromBaseRecord(m.BaseRecord),
		Title:        m.Title,
		ScheduledAt:  m.ScheduledAt,
		DurationMin:  m.DurationMin,
		Location:     m.Location,
		Notes:        m.Notes,
	}
	if m.ClientID != nil {
		s := m.ClientID.String()
		resp.ClientID = &s
	}
	return resp
}
