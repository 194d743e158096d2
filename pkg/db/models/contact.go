package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a customer inquiry submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Message   string    `gorm:"column:message;not null" json:"message"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (c *Contact) Clone() *Contact {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
