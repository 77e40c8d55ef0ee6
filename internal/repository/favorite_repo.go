package repository

import (
	"context"

	"starwars-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Planet").Preload("Character")
}

// ListByUserID returns the user's favorites with the referenced records
// loaded. It does not check that the user exists.
func (r *FavoriteRepository) ListByUserID(ctx context.Context, userID uint) ([]models.Favorite, error) {
	list := []models.Favorite{}
	err := r.withRelations(ctx).Where("user_id = ?", userID).Order("id").Find(&list).Error
	return list, err
}

// Add inserts a favorite for the target and returns it with relations loaded.
func (r *FavoriteRepository) Add(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error) {
	f := models.NewFavorite(userID, target)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(f).Error; err != nil {
		return nil, translate(err)
	}
	var out models.Favorite
	if err := r.withRelations(ctx).First(&out, f.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// RemoveByTarget deletes every favorite pointing at target, whichever user
// owns it, and reports how many rows went away.
func (r *FavoriteRepository) RemoveByTarget(ctx context.Context, target models.FavoriteTarget) (int64, error) {
	column := "planet_id"
	if _, ok := target.(models.CharacterTarget); ok {
		column = "character_id"
	}
	res := r.db.WithContext(ctx).Where(column+" = ?", target.TargetID()).Delete(&models.Favorite{})
	return res.RowsAffected, translate(res.Error)
}

func (r *FavoriteRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Favorite{}, id)
}

func (r *FavoriteRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.Favorite{})
}
