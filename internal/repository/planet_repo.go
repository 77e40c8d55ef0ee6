package repository

import (
	"context"

	"starwars-api/internal/models"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	db *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

func (r *PlanetRepository) List(ctx context.Context) ([]models.Planet, error) {
	list := []models.Planet{}
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *PlanetRepository) GetByID(ctx context.Context, id uint) (*models.Planet, error) {
	var p models.Planet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PlanetRepository) Create(ctx context.Context, p *models.Planet) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PlanetRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Planet{}, id)
}

func (r *PlanetRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Planet{})
}
