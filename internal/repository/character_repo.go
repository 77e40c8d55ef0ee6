package repository

import (
	"context"

	"starwars-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) List(ctx context.Context) ([]models.Character, error) {
	list := []models.Character{}
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

// ListByPlanetID returns the characters whose homeworld is the given planet.
func (r *CharacterRepository) ListByPlanetID(ctx context.Context, planetID uint) ([]models.Character, error) {
	list := []models.Character{}
	err := r.db.WithContext(ctx).Where("planet_id = ?", planetID).Order("id").Find(&list).Error
	return list, err
}

func (r *CharacterRepository) GetByID(ctx context.Context, id uint) (*models.Character, error) {
	var c models.Character
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CharacterRepository) Create(ctx context.Context, c *models.Character) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error)
}

func (r *CharacterRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Character{}, id)
}

func (r *CharacterRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Character{})
}
