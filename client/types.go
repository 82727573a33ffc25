package client

import (
	"net/url"
	"strconv"
	"time"
)

// Pagination is the collection metadata block of the response envelope.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Building struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 *string   `json:"addressLine2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Unit struct {
	ID         string    `json:"id"`
	BuildingID string    `json:"buildingId"`
	UnitNumber string    `json:"unitNumber"`
	Floor      *int      `json:"floor"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
	AreaSqft   *float64  `json:"areaSqft"`
	RentAmount float64   `json:"rentAmount"`
	UnitType   string    `json:"unitType"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Tenancy carries denormalized unit and tenant snapshots returned by the
// API; they are read-only copies, not live links.
type Tenancy struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenantId"`
	UnitID        string    `json:"unitId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	MonthlyRent   float64   `json:"monthlyRent"`
	DepositAmount float64   `json:"depositAmount"`
	IsActive      bool      `json:"isActive"`
	EndReason     *string   `json:"endReason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Unit   *Unit `json:"unit,omitempty"`
	Tenant *User `json:"tenant,omitempty"`
}

type MaintenanceRequest struct {
	ID              string     `json:"id"`
	UnitID          string     `json:"unitId"`
	TenantID        string     `json:"tenantId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	ResolutionNotes *string    `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`

	Unit *Unit `json:"unit,omitempty"`
}

// Attachment is a maintenance-request photo; URL is a short-lived
// presigned link generated per response.
type Attachment struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"requestId"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
	URL         string    `json:"url,omitempty"`
}

// Filters. Zero-valued fields are omitted from the query string entirely,
// never sent as empty parameters.

type UserFilter struct {
	Role     string
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

func (f UserFilter) query() url.Values {
	q := url.Values{}
	setNonEmpty(q, "role", f.Role)
	setNonEmpty(q, "search", f.Search)
	setBool(q, "isActive", f.IsActive)
	setPage(q, f.Page, f.Limit)
	return q
}

type BuildingFilter struct {
	Search  string
	OwnerID string
	Page    int
	Limit   int
}

func (f BuildingFilter) query() url.Values {
	q := url.Values{}
	setNonEmpty(q, "search", f.Search)
	setNonEmpty(q, "ownerId", f.OwnerID)
	setPage(q, f.Page, f.Limit)
	return q
}

type UnitFilter struct {
	BuildingID string
	Status     string
	Search     string
	Page       int
	Limit      int
}

func (f UnitFilter) query() url.Values {
	q := url.Values{}
	setNonEmpty(q, "buildingId", f.BuildingID)
	setNonEmpty(q, "status", f.Status)
	setNonEmpty(q, "search", f.Search)
	setPage(q, f.Page, f.Limit)
	return q
}

type TenancyFilter struct {
	TenantID string
	UnitID   string
	IsActive *bool
	Page     int
	Limit    int
}

func (f TenancyFilter) query() url.Values {
	q := url.Values{}
	setNonEmpty(q, "tenantId", f.TenantID)
	setNonEmpty(q, "unitId", f.UnitID)
	setBool(q, "isActive", f.IsActive)
	setPage(q, f.Page, f.Limit)
	return q
}

type MaintenanceFilter struct {
	Status   string
	Priority string
	Category string
	UnitID   string
	Page     int
	Limit    int
}

func (f MaintenanceFilter) query() url.Values {
	q := url.Values{}
	setNonEmpty(q, "status", f.Status)
	setNonEmpty(q, "priority", f.Priority)
	setNonEmpty(q, "category", f.Category)
	setNonEmpty(q, "unitId", f.UnitID)
	setPage(q, f.Page, f.Limit)
	return q
}

func setNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func setPage(q url.Values, page, limit int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
}
