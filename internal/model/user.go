package model

import (
	"time"

	"gorm.io/datatypes"
)

// User holds the career profile of an authenticated caller. ID is the
// subject issued by the identity provider.
type User struct {
	ID         string                       `gorm:"primaryKey" json:"id"`
	Industry   *string                      `json:"industry,omitempty"`
	Experience *int                         `json:"experience,omitempty"` // years
	Skills     datatypes.JSONType[[]string] `json:"skills"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}
