package account

import (
	"time"

	"github.com/jamadeu/multicontas/pkg/domain"
)

// NewAccount is the payload accepted when opening an account.
// Balance is expressed in reais with up to two decimal places.
type NewAccount struct {
	AccountNumber string  `json:"accountNumber" validate:"required"`
	BranchNumber  string  `json:"branchNumber" validate:"required"`
	Balance       float64 `json:"balance" validate:"gte=0"`
	ClientID      string  `json:"clientId" validate:"required,uuid"`
}

// UpdateAccountInput is the payload accepted when replacing an account's data.
type UpdateAccountInput struct {
	AccountNumber string  `json:"accountNumber" validate:"required"`
	BranchNumber  string  `json:"branchNumber" validate:"required"`
	Balance       float64 `json:"balance" validate:"gte=0"`
	ClientID      string  `json:"clientId" validate:"required,uuid"`
}

// DepositInput carries the amount to credit, in reais.
type DepositInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// AccountResponse is the wire representation of an account.
type AccountResponse struct {
	ID            string  `json:"id"`
	AccountNumber string  `json:"accountNumber"`
	BranchNumber  string  `json:"branchNumber"`
	Balance       float64 `json:"balance"`
	ClientID      string  `json:"clientId"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func toResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID.String(),
		AccountNumber: a.AccountNumber,
		BranchNumber:  a.BranchNumber,
		Balance:       a.Balance.Float(),
		ClientID:      a.ClientID.String(),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponseList(accounts []*domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toResponse(a))
	}
	return out
}
