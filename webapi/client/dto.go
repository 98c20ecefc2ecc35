package client

import (
	"time"

	"github.com/jamadeu/multicontas/pkg/domain"
)

// NewClient is the payload accepted when registering a client.
type NewClient struct {
	Name string `json:"name" validate:"required"`
	Cpf  string `json:"cpf" validate:"required,cpf"`
}

// UpdateClientInput is the payload accepted when replacing a client's data.
type UpdateClientInput struct {
	Name string `json:"name" validate:"required"`
	Cpf  string `json:"cpf" validate:"required,cpf"`
}

// ClientResponse is the wire representation of a client.
type ClientResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cpf       string `json:"cpf"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Cpf:       c.Cpf,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
