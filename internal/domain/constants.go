package domain

const (
	FavoriteKindPlanet    = "planet"
	FavoriteKindCharacter = "character"
)

const (
	PlanetRemovedMessage    = "The planet has been successfully removed from favourites"
	CharacterRemovedMessage = "The character has been successfully removed from favourites"
)
