package dto

import (
	"crmdesk/internal/domain/records/client"
)

// CreateClientRequest is the request body for creating a client.
type CreateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ToEntity converts DTO to domain record.
func (r *CreateClientRequest) ToEntity() *client.Client {
	c := client.NewClient(r.Name, r.Email)
	c.Phone = r.Phone
	c.Company = r.Company
	c.Address = r.Address
	c.Notes = r.Notes
	return c
}

// UpdateClientRequest is the request body for updating a client.
type UpdateClientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// ApplyTo applies update DTO to existing record.
func (r *UpdateClientRequest) ApplyTo(c *client.Client) {
	c.Name = r.Name
	c.Email = r.Email
	c.Phone = r.Phone
	c.Company = r.Company
	c.Address = r.Address
	c.Notes = r.Notes
}

// ClientResponse is the response body for a client.
type ClientResponse struct {
	BaseResponse
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
	Address *string `json:"address,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

// FromClient creates response DTO from domain record.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		BaseResponse: FromBaseRecord(c.BaseRecord),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Company:      c.Company,
		Address:      c.Address,
		Notes:        c.Notes,
	}
}
