package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"propertyhub/internal/models"
)

type MaintenanceFilter struct {
	Status   *string
	Priority *string
	Category *string
	TenantID *uuid.UUID
	UnitID   *uuid.UUID
	OwnerID  *uuid.UUID
}

type MaintenanceRepository interface {
	Create(ctx context.Context, request *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error)
	Update(ctx context.Context, request *models.MaintenanceRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *MaintenanceFilter, limit, offset int) ([]*models.MaintenanceRequest, error)
	Count(ctx context.Context, filter *MaintenanceFilter) (int, error)
}

type maintenanceRepo struct {
	db Database
}

func NewMaintenanceRepository(db Database) MaintenanceRepository {
	return &maintenanceRepo{db: db}
}

const maintenanceSelect = `
	SELECT m.id, m.unit_id, m.tenant_id, m.title, m.description, m.category,
	       m.priority, m.status, m.resolution_notes, m.created_at, m.updated_at, m.resolved_at,
	       u.id, u.building_id, u.unit_number, u.floor, u.bedrooms, u.bathrooms,
	       u.area_sqft, u.rent_amount, u.unit_type, u.status, u.created_at, u.updated_at
	FROM maintenance_requests m
	JOIN units u ON u.id = m.unit_id
`

func scanMaintenance(row interface{ Scan(...interface{}) error }) (*models.MaintenanceRequest, error) {
	m := &models.MaintenanceRequest{}
	unit := &models.Unit{}
	err := row.Scan(
		&m.ID, &m.UnitID, &m.TenantID, &m.Title, &m.Description, &m.Category,
		&m.Priority, &m.Status, &m.ResolutionNotes, &m.CreatedAt, &m.UpdatedAt, &m.ResolvedAt,
		&unit.ID, &unit.BuildingID, &unit.UnitNumber, &unit.Floor, &unit.Bedrooms, &unit.Bathrooms,
		&unit.AreaSqft, &unit.RentAmount, &unit.UnitType, &unit.Status, &unit.CreatedAt, &unit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Unit = unit
	return m, nil
}

func (r *maintenanceRepo) Create(ctx context.Context, request *models.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, unit_id, tenant_id, title, description, category, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, request.ID, request.UnitID,
		request.TenantID, request.Title, request.Description,
		request.Category, request.Priority, request.Status)
	return err
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRequest, error) {
	query := maintenanceSelect + ` WHERE m.id = $1`
	return scanMaintenance(r.db.QueryRow(ctx, query, id))
}

func (r *maintenanceRepo) Update(ctx context.Context, request *models.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests
		SET title = $1, description = $2, category = $3, priority = $4, status = $5, resolution_notes = $6, resolved_at = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, request.Title, request.Description,
		request.Category, request.Priority, request.Status,
		request.ResolutionNotes, request.ResolvedAt, request.ID)
	return err
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM maintenance_requests WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func buildMaintenanceWhere(filter *MaintenanceFilter) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter == nil {
		return where, args
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND m.status = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		where += fmt.Sprintf(" AND m.priority = $%d", len(args))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		where += fmt.Sprintf(" AND m.category = $%d", len(args))
	}
	if filter.TenantID != nil {
		args = append(args, *filter.TenantID)
		where += fmt.Sprintf(" AND m.tenant_id = $%d", len(args))
	}
	if filter.UnitID != nil {
		args = append(args, *filter.UnitID)
		where += fmt.Sprintf(" AND m.unit_id = $%d", len(args))
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		where += fmt.Sprintf(" AND u.building_id IN (SELECT id FROM buildings WHERE owner_id = $%d)", len(args))
	}
	return where, args
}

func (r *maintenanceRepo) List(ctx context.Context, filter *MaintenanceFilter, limit, offset int) ([]*models.MaintenanceRequest, error) {
	where, args := buildMaintenanceWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s %s ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d`,
		maintenanceSelect, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.MaintenanceRequest
	for rows.Next() {
		request, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *maintenanceRepo) Count(ctx context.Context, filter *MaintenanceFilter) (int, error) {
	where, args := buildMaintenanceWhere(filter)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM maintenance_requests m
		JOIN units u ON u.id = m.unit_id
		%s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
