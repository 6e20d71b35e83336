package models

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Account is a registered directory entry. The table is read once at startup
// when the directory is sourced from Postgres.
type Account struct {
	ID           string `gorm:"primaryKey" json:"id" yaml:"id"`
	Name         string `gorm:"not null" json:"name" yaml:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email" yaml:"email"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role" yaml:"role"`
	PasswordHash string `gorm:"not null" json:"-" yaml:"-"`
}
