package models

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance request statuses
const (
	MaintenanceStatusPending    = "PENDING"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusCompleted  = "COMPLETED"
	MaintenanceStatusCancelled  = "CANCELLED"
)

// Maintenance request priorities
const (
	MaintenancePriorityLow    = "LOW"
	MaintenancePriorityMedium = "MEDIUM"
	MaintenancePriorityHigh   = "HIGH"
	MaintenancePriorityUrgent = "URGENT"
)

// Maintenance request categories
const (
	MaintenanceCategoryPlumbing   = "PLUMBING"
	MaintenanceCategoryElectrical = "ELECTRICAL"
	MaintenanceCategoryHVAC       = "HVAC"
	MaintenanceCategoryAppliance  = "APPLIANCE"
	MaintenanceCategoryStructural = "STRUCTURAL"
	MaintenanceCategoryOther      = "OTHER"
)

type MaintenanceRequest struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UnitID          uuid.UUID  `json:"unitId" db:"unit_id"`
	TenantID        uuid.UUID  `json:"tenantId" db:"tenant_id"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	Category        string     `json:"category" db:"category"`
	Priority        string     `json:"priority" db:"priority"`
	Status          string     `json:"status" db:"status"`
	ResolutionNotes *string    `json:"resolutionNotes,omitempty" db:"resolution_notes"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty" db:"resolved_at"`

	Unit *Unit `json:"unit,omitempty" db:"-"`
}

func ValidMaintenanceStatus(status string) bool {
	switch status {
	case MaintenanceStatusPending, MaintenanceStatusInProgress,
		MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}

func ValidMaintenancePriority(priority string) bool {
	switch priority {
	case MaintenancePriorityLow, MaintenancePriorityMedium,
		MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}

func ValidMaintenanceCategory(category string) bool {
	switch category {
	case MaintenanceCategoryPlumbing, MaintenanceCategoryElectrical,
		MaintenanceCategoryHVAC, MaintenanceCategoryAppliance,
		MaintenanceCategoryStructural, MaintenanceCategoryOther:
		return true
	}
	return false
}

// ValidMaintenanceTransition reports whether a status change is legal.
// COMPLETED and CANCELLED are terminal.
func ValidMaintenanceTransition(from, to string) bool {
	switch from {
	case MaintenanceStatusPending:
		return to == MaintenanceStatusInProgress ||
			to == MaintenanceStatusCompleted ||
			to == MaintenanceStatusCancelled
	case MaintenanceStatusInProgress:
		return to == MaintenanceStatusCompleted ||
			to == MaintenanceStatusCancelled
	}
	return false
}
