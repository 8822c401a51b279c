package entities

// User is reserved for future auth. No route serves it.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username" validate:"required"`
	Password string `json:"-" validate:"required"`
}
