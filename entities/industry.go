package entities

import "time"

type Industry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	IconName    string    `json:"iconName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SubIndustry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	IndustryID  uint      `gorm:"index" json:"industryId" validate:"required"`
	CreatedAt   time.Time `json:"createdAt"`
}
