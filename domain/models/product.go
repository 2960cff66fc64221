package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ImageList holds image URLs in user-controlled display order.
type ImageList []string

// Scan implements sql.Scanner for ImageList
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Value implements driver.Valuer for ImageList
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// PropertyMap maps a property name to the value picked for this product,
// e.g. {"color": "red", "size": "L"}. Keys are expected to come from the
// resolved category property chain, but that is not enforced server-side:
// the store persists whatever the form sends.
type PropertyMap map[string]string

// Scan implements sql.Scanner for PropertyMap
func (m *PropertyMap) Scan(value interface{}) error {
	if value == nil {
		*m = PropertyMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Value implements driver.Valuer for PropertyMap
func (m PropertyMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

type Product struct {
	ID          uuid.UUID   `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"_id"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Price       float64     `gorm:"not null" json:"price"`
	Images      ImageList   `gorm:"type:jsonb;default:'[]'" json:"images"`
	CategoryID  *uuid.UUID  `gorm:"type:uuid;index" json:"category,omitempty"`
	Properties  PropertyMap `gorm:"type:jsonb;default:'{}'" json:"properties"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
