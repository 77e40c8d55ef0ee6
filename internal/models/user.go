package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"size:80;not null" json:"-"` // bcrypt hash
	IsActive bool   `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
