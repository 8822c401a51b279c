package entities

import "time"

type ResearchPaper struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Title           string     `json:"title" validate:"required"`
	Authors         string     `json:"authors" validate:"required"`
	Abstract        string     `json:"abstract" validate:"required"`
	PublicationDate *time.Time `json:"publicationDate,omitempty"`
	Journal         string     `json:"journal,omitempty"`
	DOI             string     `json:"doi,omitempty"`
	URL             string     `json:"url,omitempty"`
	PDFURL          string     `json:"pdfUrl,omitempty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	// Weak cross-references; existence is not guaranteed and never cascades.
	PlantTypeID *uint     `gorm:"index" json:"plantTypeId,omitempty"`
	PlantPartID *uint     `gorm:"index" json:"plantPartId,omitempty"`
	IndustryID  *uint     `gorm:"index" json:"industryId,omitempty"`
	Keywords    []string  `gorm:"serializer:json" json:"keywords,omitempty"`
	Citations   *int      `json:"citations,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
