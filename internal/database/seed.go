package database

import (
	_ "embed"
	"fmt"

	"starwars-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Users      []seedUser      `yaml:"users"`
	Planets    []seedPlanet    `yaml:"planets"`
	Characters []seedCharacter `yaml:"characters"`
}

type seedUser struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	IsActive bool   `yaml:"is_active"`
}

type seedPlanet struct {
	Name           string  `yaml:"name"`
	Diameter       *int    `yaml:"diameter"`
	RotationPeriod *int    `yaml:"rotation_period"`
	OrbitalPeriod  *int    `yaml:"orbital_period"`
	Gravity        *string `yaml:"gravity"`
	Population     *int64  `yaml:"population"`
	Climate        *string `yaml:"climate"`
	Terrain        *string `yaml:"terrain"`
	SurfaceWater   *int    `yaml:"surface_water"`
	URL            *string `yaml:"url"`
}

type seedCharacter struct {
	Name      string  `yaml:"name"`
	Height    *int    `yaml:"height"`
	Mass      *int    `yaml:"mass"`
	HairColor *string `yaml:"hair_color"`
	SkinColor *string `yaml:"skin_color"`
	EyeColor  *string `yaml:"eye_color"`
	BirthYear *string `yaml:"birth_year"`
	Gender    *string `yaml:"gender"`
	Homeworld *string `yaml:"homeworld"`
	URL       *string `yaml:"url"`
}

// SeedResult counts the rows inserted by Seed.
type SeedResult struct {
	Users      int
	Planets    int
	Characters int
}

// Seed loads the embedded fixture. Records whose unique email or name is
// already present are left untouched, so Seed can run repeatedly.
func Seed(db *gorm.DB) (SeedResult, error) {
	return SeedFrom(db, seedYAML)
}

func SeedFrom(db *gorm.DB, data []byte) (SeedResult, error) {
	var res SeedResult
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return res, fmt.Errorf("decode seed: %w", err)
	}

	for _, su := range file.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", su.Email, err)
		}
		u := models.User{Email: su.Email, Password: string(hash), IsActive: su.IsActive}
		tx := db.Where("email = ?", su.Email).FirstOrCreate(&u)
		if tx.Error != nil {
			return res, fmt.Errorf("seed user %s: %w", su.Email, tx.Error)
		}
		res.Users += int(tx.RowsAffected)
	}

	planetIDs := make(map[string]uint, len(file.Planets))
	for _, sp := range file.Planets {
		p := models.Planet{
			Name:           sp.Name,
			Diameter:       sp.Diameter,
			RotationPeriod: sp.RotationPeriod,
			OrbitalPeriod:  sp.OrbitalPeriod,
			Gravity:        sp.Gravity,
			Population:     sp.Population,
			Climate:        sp.Climate,
			Terrain:        sp.Terrain,
			SurfaceWater:   sp.SurfaceWater,
			URL:            sp.URL,
		}
		tx := db.Where("name = ?", sp.Name).FirstOrCreate(&p)
		if tx.Error != nil {
			return res, fmt.Errorf("seed planet %s: %w", sp.Name, tx.Error)
		}
		res.Planets += int(tx.RowsAffected)
		planetIDs[p.Name] = p.ID
	}

	for _, sc := range file.Characters {
		c := models.Character{
			Name:      sc.Name,
			Height:    sc.Height,
			Mass:      sc.Mass,
			HairColor: sc.HairColor,
			SkinColor: sc.SkinColor,
			EyeColor:  sc.EyeColor,
			BirthYear: sc.BirthYear,
			Gender:    sc.Gender,
			Homeworld: sc.Homeworld,
			URL:       sc.URL,
		}
		if sc.Homeworld != nil {
			if id, ok := planetIDs[*sc.Homeworld]; ok {
				c.PlanetID = &id
			}
		}
		tx := db.Where("name = ?", sc.Name).FirstOrCreate(&c)
		if tx.Error != nil {
			return res, fmt.Errorf("seed character %s: %w", sc.Name, tx.Error)
		}
		res.Characters += int(tx.RowsAffected)
	}
	return res, nil
}
