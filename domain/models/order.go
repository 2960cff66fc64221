package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// LineItems is the opaque payload describing purchased items and quantities.
// It originates from the payment provider's checkout webhook and is stored
// and returned verbatim; this service never interprets its contents.
type LineItems json.RawMessage

// Scan implements sql.Scanner for LineItems
func (l *LineItems) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	*l = append((*l)[0:0], bytes...)
	return nil
}

// Value implements driver.Valuer for LineItems
func (l LineItems) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "null", nil
	}
	return []byte(l), nil
}

// MarshalJSON returns the stored payload as-is.
func (l LineItems) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return l, nil
}

// UnmarshalJSON keeps the raw payload without reshaping it.
func (l *LineItems) UnmarshalJSON(data []byte) error {
	*l = append((*l)[0:0], data...)
	return nil
}

type Order struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"_id"`
	LineItems     LineItems `gorm:"type:jsonb" json:"line_items"`
	Name          string    `gorm:"size:255" json:"name"`
	Email         string    `gorm:"size:255" json:"email"`
	City          string    `gorm:"size:255" json:"city"`
	PostalCode    string    `gorm:"size:50" json:"postalCode"`
	StreetAddress string    `gorm:"size:255" json:"streetAddress"`
	Country       string    `gorm:"size:100" json:"country"`
	Paid          bool      `gorm:"default:false" json:"paid"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}
