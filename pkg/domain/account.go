package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jamadeu/multicontas/pkg/domain/money"
)

var (
	// ErrDepositAmountMustBePositive is returned when a deposit amount is not positive.
	ErrDepositAmountMustBePositive = errors.New("deposit amount must be positive")

	// ErrDepositAmountExceedsMaxSafeInt is returned when a deposit would overflow the account balance.
	ErrDepositAmountExceedsMaxSafeInt = errors.New("deposit amount exceeds maximum safe integer value")

	// ErrNegativeBalance is returned when an account would be created or updated with a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)

// Account represents a bank account owned by a client, identified among
// other accounts by its (account number, branch number) pair.
type Account struct {
	ID            uuid.UUID
	AccountNumber string
	BranchNumber  string
	Balance       money.Money
	ClientID      uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAccount creates a new account with a fresh ID and timestamps.
// Invariants enforced:
//   - AccountNumber and BranchNumber must be non-empty.
//   - ClientID must be set.
//   - Balance must not be negative; it defaults to zero.
func NewAccount(accountNumber, branchNumber string, balance money.Money, clientID uuid.UUID) (*Account, error) {
	if strings.TrimSpace(accountNumber) == "" || strings.TrimSpace(branchNumber) == "" {
		return nil, ErrValidation
	}
	if clientID == uuid.Nil {
		return nil, ErrValidation
	}
	if balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	now := time.Now().UTC()
	return &Account{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		BranchNumber:  branchNumber,
		Balance:       balance,
		ClientID:      clientID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewAccountFromData creates an Account from raw data (used for DB hydration).
func NewAccountFromData(
	id uuid.UUID,
	accountNumber, branchNumber string,
	balance int64,
	clientID uuid.UUID,
	created, updated time.Time,
) *Account {
	return &Account{
		ID:            id,
		AccountNumber: accountNumber,
		BranchNumber:  branchNumber,
		Balance:       money.NewFromData(balance),
		ClientID:      clientID,
		CreatedAt:     created,
		UpdatedAt:     updated,
	}
}

// SamePair reports whether the account already carries the given
// (account number, branch number) pair.
func (a *Account) SamePair(accountNumber, branchNumber string) bool {
	return a.AccountNumber == accountNumber && a.BranchNumber == branchNumber
}

// Update replaces the mutable fields and refreshes UpdatedAt.
// CreatedAt is never touched. The balance may be overwritten here;
// outside of Update only Deposit mutates it.
func (a *Account) Update(accountNumber, branchNumber string, balance money.Money, clientID uuid.UUID) error {
	if strings.TrimSpace(accountNumber) == "" || strings.TrimSpace(branchNumber) == "" {
		return ErrValidation
	}
	if clientID == uuid.Nil {
		return ErrValidation
	}
	if balance.IsNegative() {
		return ErrNegativeBalance
	}
	a.AccountNumber = accountNumber
	a.BranchNumber = branchNumber
	a.Balance = balance
	a.ClientID = clientID
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Deposit adds funds to the account and refreshes UpdatedAt.
// The amount must be strictly positive; a deposit never decreases the balance.
func (a *Account) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrDepositAmountMustBePositive
	}
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return ErrDepositAmountExceedsMaxSafeInt
	}
	a.Balance = newBalance
	a.UpdatedAt = time.Now().UTC()
	return nil
}
