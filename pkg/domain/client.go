package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client represents a bank client identified by a unique CPF.
type Client struct {
	ID        uuid.UUID
	Name      string
	Cpf       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new client with a fresh ID and timestamps.
// Invariants enforced:
//   - Name must be non-empty.
//   - Cpf must pass checksum validation; it is stored normalized.
func NewClient(name, cpf string) (*Client, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrValidation
	}
	if err := ValidateCPF(cpf); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Cpf:       NormalizeCPF(cpf),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewClientFromData creates a Client from raw data (used for DB hydration).
func NewClientFromData(id uuid.UUID, name, cpf string, created, updated time.Time) *Client {
	return &Client{
		ID:        id,
		Name:      name,
		Cpf:       cpf,
		CreatedAt: created,
		UpdatedAt: updated,
	}
}

// Update replaces the mutable fields and refreshes UpdatedAt.
// CreatedAt is never touched.
func (c *Client) Update(name, cpf string) error {
	if strings.TrimSpace(name) == "" {
		return ErrValidation
	}
	if err := ValidateCPF(cpf); err != nil {
		return err
	}
	c.Name = name
	c.Cpf = NormalizeCPF(cpf)
	c.UpdatedAt = time.Now().UTC()
	return nil
}
