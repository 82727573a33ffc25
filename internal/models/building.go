package models

import (
	"time"

	"github.com/google/uuid"
)

type Building struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	AddressLine1 string    `json:"addressLine1" db:"address_line1"`
	AddressLine2 *string   `json:"addressLine2" db:"address_line2"`
	City         string    `json:"city" db:"city"`
	State        string    `json:"state" db:"state"`
	PostalCode   string    `json:"postalCode" db:"postal_code"`
	OwnerID      uuid.UUID `json:"ownerId" db:"owner_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
