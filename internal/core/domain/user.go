package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models an authenticated actor. The role is a plain string rather
// than a schema-enforced enum; authorization decisions belong to the API
// surface. Inactive users fail authentication even with correct credentials.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"not null"`
	Role           string `json:"role" gorm:"not null"`
	IsActive       bool   `json:"is_active" gorm:"not null"`
}
