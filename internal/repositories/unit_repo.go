package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"propertyhub/internal/models"
)

// UnitFilter narrows unit collection queries. OwnerID scopes through the
// owning building for OWNER-role callers.
type UnitFilter struct {
	BuildingID *uuid.UUID
	Status     *string
	Search     *string
	OwnerID    *uuid.UUID
}

type UnitRepository interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	Update(ctx context.Context, unit *models.Unit) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *UnitFilter, limit, offset int) ([]*models.Unit, error)
	Count(ctx context.Context, filter *UnitFilter) (int, error)
	// ListRentedByTenant returns the units the tenant currently holds an
	// active tenancy on; it backs /maintenance/my-units.
	ListRentedByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Unit, error)
}

type unitRepo struct {
	db Database
}

func NewUnitRepository(db Database) UnitRepository {
	return &unitRepo{db: db}
}

const unitColumns = "id, building_id, unit_number, floor, bedrooms, bathrooms, area_sqft, rent_amount, unit_type, status, created_at, updated_at"

func scanUnit(row interface{ Scan(...interface{}) error }) (*models.Unit, error) {
	u := &models.Unit{}
	err := row.Scan(&u.ID, &u.BuildingID, &u.UnitNumber, &u.Floor,
		&u.Bedrooms, &u.Bathrooms, &u.AreaSqft, &u.RentAmount,
		&u.UnitType, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *unitRepo) Create(ctx context.Context, unit *models.Unit) error {
	query := `
		INSERT INTO units (id, building_id, unit_number, floor, bedrooms, bathrooms, area_sqft, rent_amount, unit_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, unit.ID, unit.BuildingID, unit.UnitNumber,
		unit.Floor, unit.Bedrooms, unit.Bathrooms, unit.AreaSqft,
		unit.RentAmount, unit.UnitType, unit.Status)
	return err
}

func (r *unitRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	query := fmt.Sprintf(`SELECT %s FROM units WHERE id = $1`, unitColumns)
	return scanUnit(r.db.QueryRow(ctx, query, id))
}

func (r *unitRepo) Update(ctx context.Context, unit *models.Unit) error {
	query := `
		UPDATE units
		SET building_id = $1, unit_number = $2, floor = $3, bedrooms = $4, bathrooms = $5, area_sqft = $6, rent_amount = $7, unit_type = $8, status = $9, updated_at = NOW()
		WHERE id = $10
	`
	_, err := r.db.Exec(ctx, query, unit.BuildingID, unit.UnitNumber,
		unit.Floor, unit.Bedrooms, unit.Bathrooms, unit.AreaSqft,
		unit.RentAmount, unit.UnitType, unit.Status, unit.ID)
	return err
}

func (r *unitRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE units SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *unitRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM units WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func buildUnitWhere(filter *UnitFilter) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter == nil {
		return where, args
	}
	if filter.BuildingID != nil {
		args = append(args, *filter.BuildingID)
		where += fmt.Sprintf(" AND u.building_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND u.status = $%d", len(args))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND u.unit_number ILIKE $%d", len(args))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		where += fmt.Sprintf(" AND u.building_id IN (SELECT id FROM buildings WHERE owner_id = $%d)", len(args))
	}
	return where, args
}

func (r *unitRepo) List(ctx context.Context, filter *UnitFilter, limit, offset int) ([]*models.Unit, error) {
	where, args := buildUnitWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s FROM units u
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, unitColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func (r *unitRepo) Count(ctx context.Context, filter *UnitFilter) (int, error) {
	where, args := buildUnitWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM units u %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *unitRepo) ListRentedByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Unit, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM units u
		WHERE u.id IN (SELECT unit_id FROM tenancies WHERE tenant_id = $1 AND is_active = true)
		ORDER BY created_at DESC
	`, unitColumns)

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}
