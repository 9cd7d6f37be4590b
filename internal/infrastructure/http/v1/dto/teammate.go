package dto

import (
	"crmdesk/internal/domain/records/teammate"
)

// CreateTeammateRequest is the request body for creating a team member.
type CreateTeammateRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
}

// ToEntity converts DTO to domain record.
func (r *CreateTeammateRequest) ToEntity() *teammate.Teammate {
	t := teammate.NewTeammate(r.Name, r.Email)
	t.Role = r.Role
	t.Phone = r.Phone
	return t
}

// UpdateTeammateRequest is the request body for updating a team member.
type UpdateTeammateRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateTeammateRequest) ApplyTo(t *teammate.Teammate) {
	t.Name = r.Name
	t.Email = r.Email
	t.Role = r.Role
	t.Phone = r.Phone
}

// TeammateResponse is the response body for a team member.
type TeammateResponse struct {
	BaseResponse
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  *string `json:"role,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// FromTeammate creates response DTO from domain record.
func FromTeammate(t *teammate.Teammate) TeammateResponse {
	return TeammateResponse{
		BaseResponse: FromBaseRecord(t.BaseRecord),
		Name:         t.Name,
		Email:        t.Email,
		Role:         t.Role,
		Phone:        t.Phone,
	}
}
