package account

import (
	"context"

	"github.com/google/uuid"
	infra "github.com/jamadeu/multicontas/infra/repository"
	"github.com/jamadeu/multicontas/pkg/domain"
	repo "github.com/jamadeu/multicontas/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, a *domain.Account) error {
	model := mapDomainToModel(a)
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(&model).Error,
	)
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, a *domain.Account) error {
	updates := map[string]any{
		"account_number": a.AccountNumber,
		"branch_number":  a.BranchNumber,
		"balance":        a.Balance.Amount(),
		"client_id":      a.ClientID,
		"updated_at":     a.UpdatedAt,
	}
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Model(&infra.Account{}).
			Where("id = ?", a.ID).
			Updates(updates).Error,
	)
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var a infra.Account
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, infra.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&a), nil
}

// GetByNumberAndBranch implements account.Repository.
func (r *repository) GetByNumberAndBranch(
	ctx context.Context,
	accountNumber, branchNumber string,
) (*domain.Account, error) {
	var a infra.Account
	err := r.db.WithContext(ctx).
		Where("account_number = ? AND branch_number = ?", accountNumber, branchNumber).
		First(&a).Error
	if err != nil {
		return nil, infra.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&a), nil
}

// ListByClient implements account.Repository.
func (r *repository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.Account, error) {
	var accts []infra.Account
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Find(&accts).Error
	if err != nil {
		return nil, infra.MapGormErrorToDomain(err)
	}
	result := make([]*domain.Account, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDomain(&accts[i]))
	}
	return result, nil
}

// ExistsByNumberAndBranch implements account.Repository.
func (r *repository) ExistsByNumberAndBranch(
	ctx context.Context,
	accountNumber, branchNumber string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&infra.Account{}).
		Where("account_number = ? AND branch_number = ?", accountNumber, branchNumber).
		Count(&count).Error
	if err != nil {
		return false, infra.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// Delete implements account.Repository. Deleting an absent row is a no-op.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&infra.Account{}, "id = ?", id).Error,
	)
}

func mapDomainToModel(a *domain.Account) infra.Account {
	return infra.Account{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		BranchNumber:  a.BranchNumber,
		Balance:       a.Balance.Amount(),
		ClientID:      a.ClientID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func mapModelToDomain(a *infra.Account) *domain.Account {
	return domain.NewAccountFromData(
		a.ID,
		a.AccountNumber,
		a.BranchNumber,
		a.Balance,
		a.ClientID,
		a.CreatedAt,
		a.UpdatedAt,
	)
}

var _ repo.Repository = (*repository)(nil)
