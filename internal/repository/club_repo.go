package repository

import (
	"context"

	"github.com/sanjanammmm/Monty-s-Magicians/internal/models"
	"gorm.io/gorm"
)

type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	FindByName(ctx context.Context, tx *gorm.DB, name string) (*models.Club, error)
	FindAll(ctx context.Context) ([]models.Club, error)
}

type clubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(ctx context.Context, club *models.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

// FindByName looks a club up by its unique name, inside the given
// transaction when one is supplied.
func (r *clubRepository) FindByName(ctx context.Context, tx *gorm.DB, name string) (*models.Club, error) {
	if tx == nil {
		tx = r.db
	}
	var club models.Club
	if err := tx.WithContext(ctx).Where("club_name = ?", name).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) FindAll(ctx context.Context) ([]models.Club, error) {
	var clubs []models.Club
	if err := r.db.WithContext(ctx).Order("club_name ASC").Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}
