package entity

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func IsValidTheme(theme string) bool {
	switch Theme(theme) {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

// DefaultProfileImage is the sentinel shown until the user uploads one.
const DefaultProfileImage = "/uploads/profile/default.png"

type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Password     string    `db:"password"`
	Phone        string    `db:"phone"`
	Address      string    `db:"address"`
	ProfileImage string    `db:"profile_image"`
	Theme        string    `db:"theme"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
}
