package models

// Planet mirrors the SWAPI planet resource. Optional columns are pointers so
// that unknown values serialize as null.
type Planet struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Diameter       *int    `json:"diameter"`
	RotationPeriod *int    `json:"rotation_period"`
	OrbitalPeriod  *int    `json:"orbital_period"`
	Gravity        *string `gorm:"size:80" json:"gravity"`
	Population     *int64  `json:"population"`
	Climate        *string `gorm:"size:20" json:"climate"`
	Terrain        *string `gorm:"size:20" json:"terrain"`
	SurfaceWater   *int    `json:"surface_water"`
	URL            *string `gorm:"size:250" json:"url"`
}

func (Planet) TableName() string {
	return "planets"
}
