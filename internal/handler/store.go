package handler

import (
	"context"

	"starwars-api/internal/models"
)

// The handlers depend on these narrow views of the repositories so tests can
// swap the storage layer out.

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type PlanetStore interface {
	List(ctx context.Context) ([]models.Planet, error)
	GetByID(ctx context.Context, id uint) (*models.Planet, error)
	Create(ctx context.Context, p *models.Planet) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type CharacterStore interface {
	List(ctx context.Context) ([]models.Character, error)
	ListByPlanetID(ctx context.Context, planetID uint) ([]models.Character, error)
	GetByID(ctx context.Context, id uint) (*models.Character, error)
	Create(ctx context.Context, c *models.Character) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type FavoriteStore interface {
	ListByUserID(ctx context.Context, userID uint) ([]models.Favorite, error)
	Add(ctx context.Context, userID uint, target models.FavoriteTarget) (*models.Favorite, error)
	RemoveByTarget(ctx context.Context, target models.FavoriteTarget) (int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
