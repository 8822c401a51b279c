package entities

import "time"

// AffiliateLink is a named external link attached to a product.
type AffiliateLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type HempProduct struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	Name                 string          `json:"name" validate:"required"`
	Description          string          `json:"description" validate:"required"`
	ImageURL             string          `json:"imageUrl,omitempty"`
	PlantPartID          uint            `gorm:"index" json:"plantPartId" validate:"required"`
	IndustryID           uint            `gorm:"index" json:"industryId" validate:"required"`
	SubIndustryID        *uint           `gorm:"index" json:"subIndustryId,omitempty"`
	Properties           []string        `gorm:"serializer:json" json:"properties,omitempty"`
	Facts                []string        `gorm:"serializer:json" json:"facts,omitempty"`
	SustainabilityImpact string          `json:"sustainabilityImpact,omitempty"`
	AffiliateLinks       []AffiliateLink `gorm:"serializer:json" json:"affiliateLinks,omitempty"`
	// Weak references: ids only, a dangling id is tolerated and surfaced as-is.
	RelatedProductIDs []uint    `gorm:"serializer:json" json:"relatedProductIds,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
