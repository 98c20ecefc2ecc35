package client

import (
	"context"

	"github.com/google/uuid"
	infra "github.com/jamadeu/multicontas/infra/repository"
	"github.com/jamadeu/multicontas/pkg/domain"
	repo "github.com/jamadeu/multicontas/pkg/repository/client"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a client repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements client.Repository.
func (r *repository) Create(ctx context.Context, c *domain.Client) error {
	model := mapDomainToModel(c)
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Create(&model).Error,
	)
}

// Update implements client.Repository.
func (r *repository) Update(ctx context.Context, c *domain.Client) error {
	updates := map[string]any{
		"name":       c.Name,
		"cpf":        c.Cpf,
		"updated_at": c.UpdatedAt,
	}
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Model(&infra.Client{}).
			Where("id = ?", c.ID).
			Updates(updates).Error,
	)
}

// Get implements client.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c infra.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, infra.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&c), nil
}

// GetByCpf implements client.Repository.
func (r *repository) GetByCpf(ctx context.Context, cpf string) (*domain.Client, error) {
	var c infra.Client
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&c).Error; err != nil {
		return nil, infra.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&c), nil
}

// ExistsByCpf implements client.Repository.
func (r *repository) ExistsByCpf(ctx context.Context, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&infra.Client{}).
		Where("cpf = ?", cpf).
		Count(&count).Error
	if err != nil {
		return false, infra.MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

// Delete implements client.Repository. Deleting an absent row is a no-op.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return infra.MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&infra.Client{}, "id = ?", id).Error,
	)
}

func mapDomainToModel(c *domain.Client) infra.Client {
	return infra.Client{
		ID:        c.ID,
		Name:      c.Name,
		Cpf:       c.Cpf,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapModelToDomain(c *infra.Client) *domain.Client {
	return domain.NewClientFromData(c.ID, c.Name, c.Cpf, c.CreatedAt, c.UpdatedAt)
}

var _ repo.Repository = (*repository)(nil)
