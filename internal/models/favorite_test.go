package models

import (
	"testing"

	"starwars-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavorite_Planet(t *testing.T) {
	f := NewFavorite(3, PlanetTarget{ID: 7})

	assert.Equal(t, uint(3), f.UserID)
	assert.Equal(t, domain.FavoriteKindPlanet, f.Kind)
	require.NotNil(t, f.PlanetID)
	assert.Equal(t, uint(7), *f.PlanetID)
	assert.Nil(t, f.CharacterID)
	assert.Equal(t, PlanetTarget{ID: 7}, f.Target())
}

func TestNewFavorite_Character(t *testing.T) {
	f := NewFavorite(1, CharacterTarget{ID: 2})

	assert.Equal(t, domain.FavoriteKindCharacter, f.Kind)
	assert.Nil(t, f.PlanetID)
	require.NotNil(t, f.CharacterID)
	assert.Equal(t, CharacterTarget{ID: 2}, f.Target())
}

func TestFavoriteTarget_EmptyRow(t *testing.T) {
	assert.Nil(t, (&Favorite{}).Target())
}
