package models

import (
	"time"

	"github.com/google/uuid"
)

// Car is the canonical catalog listing. Prices are in minor currency units.
type Car struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Make         string    `gorm:"column:make;not null" json:"make"`
	Model        string    `gorm:"column:model;not null" json:"model"`
	Year         int       `gorm:"column:year;not null" json:"year"`
	Price        int       `gorm:"column:price;not null" json:"price"`
	Mileage      int       `gorm:"column:mileage;not null" json:"mileage"`
	FuelType     string    `gorm:"column:fuel_type;not null" json:"fuelType"`
	Transmission string    `gorm:"column:transmission;not null" json:"transmission"`
	EngineSize   string    `gorm:"column:engine_size;not null" json:"engineSize"`
	BodyType     string    `gorm:"column:body_type;not null" json:"bodyType"`
	Location     string    `gorm:"column:location;not null" json:"location"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	Features     []string  `gorm:"column:features;serializer:json" json:"features"`
	Images       []string  `gorm:"column:images;serializer:json" json:"images"`
	IsAvailable  bool      `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	IsFeatured   bool      `gorm:"column:is_featured;not null;default:false" json:"isFeatured"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// Clone returns a deep copy so store snapshots never share mutable slices.
func (c *Car) Clone() *Car {
	if c == nil {
		return nil
	}
	dup := *c
	if c.Description != nil {
		desc := *c.Description
		dup.Description = &desc
	}
	dup.Features = append([]string(nil), c.Features...)
	dup.Images = append([]string(nil), c.Images...)
	return &dup
}
