package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PropertyGroup is one named set of selectable variant values, e.g.
// {Name: "color", Values: "red,blue,green"}. Values stays a comma-separated
// string because that is what the admin form edits and submits.
type PropertyGroup struct {
	Name   string `json:"name"`
	Values string `json:"values"`
}

// PropertyGroups is the ordered list of property groups attached to a category.
type PropertyGroups []PropertyGroup

// Scan implements sql.Scanner for PropertyGroups
func (p *PropertyGroups) Scan(value interface{}) error {
	if value == nil {
		*p = PropertyGroups{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Value implements driver.Valuer for PropertyGroups
func (p PropertyGroups) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

type Category struct {
	ID         uuid.UUID      `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"_id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	ParentID   *uuid.UUID     `gorm:"type:uuid;index" json:"-"`
	Properties PropertyGroups `gorm:"type:jsonb;default:'[]'" json:"properties"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`

	// Parent is a soft reference: no FK constraint, resolved at read time and
	// tolerated when dangling. Populated one level deep on listings only.
	Parent *Category `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
