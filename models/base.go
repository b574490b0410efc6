package models

import "time"

// BaseModel is embedded by every persisted model. Deletes in this application
// are hard deletes, so there is no soft-delete column: slug uniqueness must
// hold over live rows only, and a deleted invitation must actually free its
// slug.
type BaseModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
