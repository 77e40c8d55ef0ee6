package models

type Character struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Height    *int    `json:"height"`
	Mass      *int    `json:"mass"`
	HairColor *string `gorm:"size:20" json:"hair_color"`
	SkinColor *string `gorm:"size:20" json:"skin_color"`
	EyeColor  *string `gorm:"size:20" json:"eye_color"`
	BirthYear *string `gorm:"size:20" json:"birth_year"`
	Gender    *string `gorm:"size:20" json:"gender"`
	Homeworld *string `gorm:"size:50" json:"homeworld"`
	URL       *string `gorm:"size:250" json:"url"`
	PlanetID  *uint   `gorm:"index" json:"planet_id"`

	Planet *Planet `gorm:"foreignKey:PlanetID" json:"-"`
}

func (Character) TableName() string {
	return "characters"
}
