package repository

import (
	"context"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpaceRepository interface {
	Create(ctx context.Context, space *models.Space) error
	FindByID(ctx context.Context, id uint) (*models.Space, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Space, error)
	FindAll(ctx context.Context) ([]models.Space, error)
}

type spaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &spaceRepository{db: db}
}

func (r *spaceRepository) Create(ctx context.Context, space *models.Space) error {
	return r.db.WithContext(ctx).Create(space).Error
}

func (r *spaceRepository) FindByID(ctx context.Context, id uint) (*models.Space, error) {
	var space models.Space
	if err := r.db.WithContext(ctx).First(&space, id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

// FindByIDForUpdate acquires a row-level lock on the space within the given
// transaction, serializing concurrent admissions for the same space.
func (r *spaceRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Space, error) {
	var space models.Space
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&space, id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *spaceRepository) FindAll(ctx context.Context) ([]models.Space, error) {
	var spaces []models.Space
	if err := r.db.WithContext(ctx).Order("space_id ASC").Find(&spaces).Error; err != nil {
		return nil, err
	}
	return spaces, nil
}
