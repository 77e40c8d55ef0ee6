package models

import "starwars-api/internal/domain"

// FavoriteTarget is the thing a favorite points at: either a planet or a
// character. Only PlanetTarget and CharacterTarget implement it.
type FavoriteTarget interface {
	Kind() string
	TargetID() uint
	isFavoriteTarget()
}

type PlanetTarget struct {
	ID uint
}

func (PlanetTarget) Kind() string {
	return domain.FavoriteKindPlanet
}

func (t PlanetTarget) TargetID() uint {
	return t.ID
}

func (PlanetTarget) isFavoriteTarget() {}

type CharacterTarget struct {
	ID uint
}

func (CharacterTarget) Kind() string {
	return domain.FavoriteKindCharacter
}

func (t CharacterTarget) TargetID() uint {
	return t.ID
}

func (CharacterTarget) isFavoriteTarget() {}

// Favorite is the favorites row. PlanetID and CharacterID are mutually
// exclusive; use NewFavorite and Target instead of setting them directly.
type Favorite struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Kind        string `gorm:"size:16;not null;index" json:"kind"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	PlanetID    *uint  `gorm:"index" json:"planet_id,omitempty"`
	CharacterID *uint  `gorm:"index" json:"character_id,omitempty"`

	User      User       `gorm:"foreignKey:UserID" json:"user"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID" json:"planet,omitempty"`
	Character *Character `gorm:"foreignKey:CharacterID" json:"character,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func NewFavorite(userID uint, target FavoriteTarget) *Favorite {
	f := &Favorite{UserID: userID, Kind: target.Kind()}
	id := target.TargetID()
	switch target.(type) {
	case PlanetTarget:
		f.PlanetID = &id
	case CharacterTarget:
		f.CharacterID = &id
	}
	return f
}

// Target returns the variant stored in the row. It returns nil for rows
// written outside this package that carry neither foreign key.
func (f *Favorite) Target() FavoriteTarget {
	switch {
	case f.PlanetID != nil:
		return PlanetTarget{ID: *f.PlanetID}
	case f.CharacterID != nil:
		return CharacterTarget{ID: *f.CharacterID}
	}
	return nil
}
