package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenancy links one tenant to one unit for a bounded period.
// Unit and Tenant are denormalized read-only snapshots filled on reads;
// they are never written back.
type Tenancy struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TenantID      uuid.UUID `json:"tenantId" db:"tenant_id"`
	UnitID        uuid.UUID `json:"unitId" db:"unit_id"`
	StartDate     time.Time `json:"startDate" db:"start_date"`
	EndDate       time.Time `json:"endDate" db:"end_date"`
	MonthlyRent   float64   `json:"monthlyRent" db:"monthly_rent"`
	DepositAmount float64   `json:"depositAmount" db:"deposit_amount"`
	IsActive      bool      `json:"isActive" db:"is_active"`
	EndReason     *string   `json:"endReason,omitempty" db:"end_reason"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Unit   *Unit `json:"unit,omitempty" db:"-"`
	Tenant *User `json:"tenant,omitempty" db:"-"`
}
