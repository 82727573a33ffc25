package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit statuses
const (
	UnitStatusAvailable   = "AVAILABLE"
	UnitStatusOccupied    = "OCCUPIED"
	UnitStatusMaintenance = "MAINTENANCE"
)

// Unit types
const (
	UnitTypeApartment  = "APARTMENT"
	UnitTypeStudio     = "STUDIO"
	UnitTypeTownhouse  = "TOWNHOUSE"
	UnitTypeCommercial = "COMMERCIAL"
)

type Unit struct {
	ID         uuid.UUID `json:"id" db:"id"`
	BuildingID uuid.UUID `json:"buildingId" db:"building_id"`
	UnitNumber string    `json:"unitNumber" db:"unit_number"`
	Floor      *int      `json:"floor" db:"floor"`
	Bedrooms   int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms  int       `json:"bathrooms" db:"bathrooms"`
	AreaSqft   *float64  `json:"areaSqft" db:"area_sqft"`
	RentAmount float64   `json:"rentAmount" db:"rent_amount"`
	UnitType   string    `json:"unitType" db:"unit_type"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

func ValidUnitStatus(status string) bool {
	switch status {
	case UnitStatusAvailable, UnitStatusOccupied, UnitStatusMaintenance:
		return true
	}
	return false
}

func ValidUnitType(unitType string) bool {
	switch unitType {
	case UnitTypeApartment, UnitTypeStudio, UnitTypeTownhouse, UnitTypeCommercial:
		return true
	}
	return false
}
