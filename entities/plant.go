package entities

import "time"

type PlantType struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name" validate:"required"`
	Description     string    `json:"description" validate:"required"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	PlantingDensity string    `json:"plantingDensity,omitempty"`
	Characteristics string    `json:"characteristics,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type PlantPart struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PlantTypeID uint      `gorm:"index" json:"plantTypeId" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`

	// FK enforced only in the relational storage; the in-memory store
	// accepts any plantTypeId.
	PlantType *PlantType `gorm:"foreignKey:PlantTypeID" json:"-"`
}
