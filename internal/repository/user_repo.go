package repository

import (
	"context"
	"errors"

	"starwars-api/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	list := []models.User{}
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.User{}, id)
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, &models.User{})
}

// deleteByID removes one row. A foreign key failure here means other rows
// still point at it, so it is reported as ErrInUse.
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uint) error {
	res := db.WithContext(ctx).Delete(model, id)
	if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
		return ErrInUse
	}
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func count(ctx context.Context, db *gorm.DB, model any) (int64, error) {
	var c int64
	err := db.WithContext(ctx).Model(model).Count(&c).Error
	return c, err
}
