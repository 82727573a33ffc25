package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"propertyhub/internal/models"
)

type BuildingFilter struct {
	OwnerID *uuid.UUID
	Search  *string
}

type BuildingRepository interface {
	Create(ctx context.Context, building *models.Building) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *BuildingFilter, limit, offset int) ([]*models.Building, error)
	Count(ctx context.Context, filter *BuildingFilter) (int, error)
}

type buildingRepo struct {
	db Database
}

func NewBuildingRepository(db Database) BuildingRepository {
	return &buildingRepo{db: db}
}

const buildingColumns = "id, name, address_line1, address_line2, city, state, postal_code, owner_id, created_at, updated_at"

func scanBuilding(row interface{ Scan(...interface{}) error }) (*models.Building, error) {
	b := &models.Building{}
	err := row.Scan(&b.ID, &b.Name, &b.AddressLine1, &b.AddressLine2,
		&b.City, &b.State, &b.PostalCode, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *buildingRepo) Create(ctx context.Context, building *models.Building) error {
	query := `
		INSERT INTO buildings (id, name, address_line1, address_line2, city, state, postal_code, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, building.ID, building.Name,
		building.AddressLine1, building.AddressLine2, building.City,
		building.State, building.PostalCode, building.OwnerID)
	return err
}

func (r *buildingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Building, error) {
	query := fmt.Sprintf(`SELECT %s FROM buildings WHERE id = $1`, buildingColumns)
	return scanBuilding(r.db.QueryRow(ctx, query, id))
}

func (r *buildingRepo) Update(ctx context.Context, building *models.Building) error {
	query := `
		UPDATE buildings
		SET name = $1, address_line1 = $2, address_line2 = $3, city = $4, state = $5, postal_code = $6, owner_id = $7, updated_at = NOW()
		WHERE id = $8
	`
	_, err := r.db.Exec(ctx, query, building.Name, building.AddressLine1,
		building.AddressLine2, building.City, building.State,
		building.PostalCode, building.OwnerID, building.ID)
	return err
}

func (r *buildingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM buildings WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func buildBuildingWhere(filter *BuildingFilter) (string, []interface{}) {
	where := "WHERE 1=1"
	args := []interface{}{}
	if filter == nil {
		return where, args
	}
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		where += fmt.Sprintf(" AND owner_id = $%d", len(args))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR city ILIKE $%d)", len(args), len(args))
	}
	return where, args
}

func (r *buildingRepo) List(ctx context.Context, filter *BuildingFilter, limit, offset int) ([]*models.Building, error) {
	where, args := buildBuildingWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s FROM buildings
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, buildingColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []*models.Building
	for rows.Next() {
		building, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		buildings = append(buildings, building)
	}
	return buildings, rows.Err()
}

func (r *buildingRepo) Count(ctx context.Context, filter *BuildingFilter) (int, error) {
	where, args := buildBuildingWhere(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM buildings %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
