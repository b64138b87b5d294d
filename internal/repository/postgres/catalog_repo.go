// internal/repository/postgres/catalog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gari-service/internal/domain/catalog"
	xerrors "gari-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListMakes retrieves all makes ordered by name.
func (r *CatalogRepository) ListMakes(ctx context.Context) ([]catalog.Make, error) {
	query := `SELECT id, name, logo_url, description FROM makes ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list makes: %w", err)
	}
	defer rows.Close()

	makes := []catalog.Make{}
	for rows.Next() {
		var m catalog.Make
		if err := rows.Scan(&m.ID, &m.Name, &m.LogoURL, &m.Description); err != nil {
			return nil, fmt.Errorf("failed to scan make: %w", err)
		}
		makes = append(makes, m)
	}

	return makes, rows.Err()
}

// FindMakeByID retrieves a single make.
func (r *CatalogRepository) FindMakeByID(ctx context.Context, id int64) (*catalog.Make, error) {
	query := `SELECT id, name, logo_url, description FROM makes WHERE id = $1`

	var m catalog.Make
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.LogoURL, &m.Description)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find make: %w", err)
	}

	return &m, nil
}

// ListModelsByMake retrieves the models of one make ordered by name.
func (r *CatalogRepository) ListModelsByMake(ctx context.Context, makeID int64) ([]catalog.Model, error) {
	query := `SELECT id, make_id, name FROM models WHERE make_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, makeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	models := []catalog.Model{}
	for rows.Next() {
		var m catalog.Model
		if err := rows.Scan(&m.ID, &m.MakeID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, m)
	}

	return models, rows.Err()
}

// FindModelByID retrieves a single model; listing writes use it to check
// the model/make pairing.
func (r *CatalogRepository) FindModelByID(ctx context.Context, id int64) (*catalog.Model, error) {
	query := `SELECT id, make_id, name FROM models WHERE id = $1`

	var m catalog.Model
	err := r.db.QueryRow(ctx, query, id).Scan(&m.ID, &m.MakeID, &m.Name)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find model: %w", err)
	}

	return &m, nil
}
