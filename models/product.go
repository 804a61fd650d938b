package models

import "time"

// Product is the catalog record. The order flow only reads it; stock and
// catalog edits happen through the admin tooling, not here.
type Product struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"` // major currency units
	Sizes     []string  `gorm:"serializer:json" json:"sizes"`
	Colors    []string  `gorm:"serializer:json" json:"colors"`
	Images    []string  `gorm:"serializer:json" json:"images"`
	InStock   bool      `gorm:"default:true" json:"inStock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasSize reports whether s is one of the product's valid sizes.
func (p Product) HasSize(s string) bool {
	for _, v := range p.Sizes {
		if v == s {
			return true
		}
	}
	return false
}

// HasColor reports whether c is one of the product's valid colors.
func (p Product) HasColor(c string) bool {
	for _, v := range p.Colors {
		if v == c {
			return true
		}
	}
	return false
}
