package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"propertyhub/internal/models"
)

type TenancyFilter struct {
	TenantID *uuid.UUID
	UnitID   *uuid.UUID
	IsActive *bool
	OwnerID  *uuid.UUID
}

type TenancyRepository interface {
	Create(ctx context.Context, tenancy *models.Tenancy) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error)
	Update(ctx context.Context, tenancy *models.Tenancy) error
	End(ctx context.Context, id uuid.UUID, endDate time.Time, reason *string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TenancyFilter, limit, offset int) ([]*models.Tenancy, error)
	Count(ctx context.Context, filter *TenancyFilter) (int, error)
	GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Tenancy, error)
	ListExpired(ctx context.Context, limit int) ([]*models.Tenancy, error)
}

type tenancyRepo struct {
	db Database
}

func NewTenancyRepository(db Database) TenancyRepository {
	return &tenancyRepo{db: db}
}

// Reads join in the unit and tenant snapshots the API returns alongside
// each tenancy. The snapshots are denormalized copies, not live links.
const tenancySelect = `
	SELECT t.id, t.tenant_id, t.unit_id, t.start_date, t.end_date,
	       t.monthly_rent, t.deposit_amount, t.is_active, t.end_reason,
	       t.created_at, t.updated_at,
	       u.id, u.building_id, u.unit_number, u.floor, u.bedrooms, u.bathrooms,
	       u.area_sqft, u.rent_amount, u.unit_type, u.status, u.created_at, u.updated_at,
	       usr.id, usr.first_name, usr.last_name, usr.email, usr.password_hash,
	       usr.phone, usr.role, usr.is_active, usr.created_at, usr.updated_at
	FROM tenancies t
	JOIN units u ON u.id = t.unit_id
	JOIN users usr ON usr.id = t.tenant_id
`

func scanTenancy(row interface{ Scan(...interface{}) error }) (*models.Tenancy, error) {
	t := &models.Tenancy{}
	unit := &models.Unit{}
	tenant := &models.User{}
	err := row.Scan(
		&t.ID, &t.TenantID, &t.UnitID, &t.StartDate, &t.EndDate,
		&t.MonthlyRent, &t.DepositAmount, &t.IsActive, &t.EndReason,
		&t.CreatedAt, &t.UpdatedAt,
		&unit.ID, &unit.BuildingID, &unit.UnitNumber, &unit.Floor, &unit.Bedrooms, &unit.Bathrooms,
		&unit.AreaSqft, &unit.RentAmount, &unit.UnitType, &unit.Status, &unit.CreatedAt, &unit.UpdatedAt,
		&tenant.ID, &tenant.FirstName, &tenant.LastName, &tenant.Email, &tenant.PasswordHash,
		&tenant.Phone, &tenant.Role, &tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Unit = unit
	t.Tenant = tenant
	return t, nil
}

func (r *tenancyRepo) Create(ctx context.Context, tenancy *models.Tenancy) error {
	query := `
		INSERT INTO tenancies (id, tenant_id, unit_id, start_date, end_date, monthly_rent, deposit_amount, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, tenancy.ID, tenancy.TenantID,
		tenancy.UnitID, tenancy.StartDate, tenancy.EndDate,
		tenancy.MonthlyRent, tenancy.DepositAmount, tenancy.IsActive)
	return err
}

func (r *tenancyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenancy, error) {
	query := tenancySelect + ` WHERE t.id = $1`
	return scanTenancy(r.db.QueryRow(ctx, query, id))
}

func (r *tenancyRepo) Update(ctx context.Context, tenancy *models.Tenancy) error {
	query := `
		UPDATE tenancies
		SET start_date = $1, end_date = $2, monthly_rent = $3, deposit_amount = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query, tenancy.StartDate, tenancy.EndDate,
		tenancy.MonthlyRent, tenancy.DepositAmount, tenancy.IsActive, tenancy.ID)
	return err
}

func (r *tenancyRepo) End(ctx context.Context, id uuid.UUID, endDate time.Time, reason *string) error {
	query := `
		UPDATE tenancies
		SET is_active = false, end_date = $1, end_reason = $2, updated_at = NOW()
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, endDate, reason, id)
	return err
}

func (r *tenancyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tenancies WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func buildTenancyWhere(filter *TenancyFilter) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter == nil {
		return where, args
	}
	if filter.TenantID != nil {
		args = append(args, *filter.TenantID)
		where += fmt.Sprintf(" AND t.tenant_id = $%d", len(args))
	}
	if filter.UnitID != nil {
		args = append(args, *filter.UnitID)
		where += fmt.Sprintf(" AND t.unit_id = $%d", len(args))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where += fmt.Sprintf(" AND t.is_active = $%d", len(args))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		where += fmt.Sprintf(" AND u.building_id IN (SELECT id FROM buildings WHERE owner_id = $%d)", len(args))
	}
	return where, args
}

func (r *tenancyRepo) List(ctx context.Context, filter *TenancyFilter, limit, offset int) ([]*models.Tenancy, error) {
	where, args := buildTenancyWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s %s ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d`,
		tenancySelect, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenancies []*models.Tenancy
	for rows.Next() {
		tenancy, err := scanTenancy(rows)
		if err != nil {
			return nil, err
		}
		tenancies = append(tenancies, tenancy)
	}
	return tenancies, rows.Err()
}

func (r *tenancyRepo) Count(ctx context.Context, filter *TenancyFilter) (int, error) {
	where, args := buildTenancyWhere(filter)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM tenancies t
		JOIN units u ON u.id = t.unit_id
		%s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *tenancyRepo) GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Tenancy, error) {
	query := tenancySelect + ` WHERE t.unit_id = $1 AND t.is_active = true`
	return scanTenancy(r.db.QueryRow(ctx, query, unitID))
}

// ListExpired returns active tenancies whose end date has passed; the
// background sweep deactivates them.
func (r *tenancyRepo) ListExpired(ctx context.Context, limit int) ([]*models.Tenancy, error) {
	query := tenancySelect + ` WHERE t.is_active = true AND t.end_date < NOW() ORDER BY t.end_date ASC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tenancies []*models.Tenancy
	for rows.Next() {
		tenancy, err := scanTenancy(rows)
		if err != nil {
			return nil, err
		}
		tenancies = append(tenancies, tenancy)
	}
	return tenancies, rows.Err()
}
