package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"crmdesk/internal/core/id"
	"crmdesk/internal/domain/records/project"
)

// CreateProjectRequest is the request body for creating a project.
type CreateProjectRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Status      project.Status  `json:"status"`
	ClientID    *id.ID          `json:"clientId"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
}

// ToEntity converts DTO to domain record.
func (r *CreateProjectRequest) ToEntity() *project.Project {
	p := project.NewProject(r.Name)
	p.Description = r.Description
	if r.Status != "" {
		p.Status = r.Status
	}
	p.ClientID = r.ClientID
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	p.Budget = r.Budget
	return p
}

// UpdateProjectRequest is the request body for updating a project.
type UpdateProjectRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Status      project.Status  `json:"status" binding:"required"`
	ClientID    *id.ID          `json:"clientId"`
	StartDate   *time.Time      `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateProjectRequest) ApplyTo(p *project.Project) {
	p.Name = r.Name
	p.Description = r.Description
	p.Status = r.Status
	p.ClientID = r.ClientID
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate
	p.Budget = r.Budget
}

// ProjectResponse is the response body for a project.
type ProjectResponse struct {
	BaseResponse
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Status      project.Status  `json:"status"`
	ClientID    *string         `json:"clientId,omitempty"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
}

// FromProject creates response DTO from domain record.
func FromProject(p *project.Project) ProjectResponse {
	resp := ProjectResponse{
		BaseResponse: FromBaseRecord(p.BaseRecord),
		Name:         p.Name,
		Description:  p.Description,
		Status:       p.Status,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Budget:       p.Budget,
	}
	if p.ClientID != nil {
		s := p.ClientID.String()
		resp.ClientID = &s
	}
	return resp
}
