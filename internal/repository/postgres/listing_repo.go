// internal/repository/postgres/listing_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gari-service/internal/domain/listing"
	xerrors "gari-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listingColumns = `
	l.id, l.make_id, l.model_id, l.year, l.car_type, l.price, l.mileage,
	l.engine_capacity, l.transmission, l.fuel_type, l.color, l.doors, l.seats,
	l.features, l.description, l.country_of_origin, l.recondition_status,
	l.seller_id, l.is_featured, l.is_sold, l.posted_on, l.updated_on, l.slug,
	mk.name AS make_name, md.name AS model_name
`

const listingJoins = `
	FROM listings l
	JOIN makes mk ON mk.id = l.make_id
	JOIN models md ON md.id = l.model_id
`

type ListingRepository struct {
	db *pgxpool.Pool
}

func NewListingRepository(db *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: db}
}

func scanListing(row pgx.Row) (*listing.Listing, error) {
	var l listing.Listing
	err := row.Scan(
		&l.ID, &l.MakeID, &l.ModelID, &l.Year, &l.CarType, &l.Price, &l.Mileage,
		&l.EngineCapacity, &l.Transmission, &l.FuelType, &l.Color, &l.Doors, &l.Seats,
		&l.Features, &l.Description, &l.CountryOfOrigin, &l.ReconditionStatus,
		&l.SellerID, &l.IsFeatured, &l.IsSold, &l.PostedOn, &l.UpdatedOn, &l.Slug,
		&l.MakeName, &l.ModelName,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]listing.Listing, error) {
	defer rows.Close()

	listings := []listing.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}

	return listings, rows.Err()
}

// buildListingFilter translates the optional filter fields into a WHERE
// clause. Sold listings are always excluded; distinct fields combine with
// AND, the free-text query ORs across make, model, description and
// features.
func buildListingFilter(f *listing.Filters) (string, []interface{}) {
	conditions := []string{"l.is_sold = FALSE"}
	args := []interface{}{}
	argPos := 1

	next := func(cond string, val interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, val)
		argPos++
	}

	if f.Make != "" {
		next("mk.name ILIKE $%d", "%"+f.Make+"%")
	}
	if f.Model != "" {
		next("md.name ILIKE $%d", "%"+f.Model+"%")
	}
	if f.CarType != "" {
		next("l.car_type = $%d", string(f.CarType))
	}
	if f.MinPrice != nil {
		next("l.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		next("l.price <= $%d", *f.MaxPrice)
	}
	if f.MinYear != nil {
		next("l.year >= $%d", *f.MinYear)
	}
	if f.MaxYear != nil {
		next("l.year <= $%d", *f.MaxYear)
	}
	if f.Transmission != "" {
		next("l.transmission = $%d", string(f.Transmission))
	}
	if f.FuelType != "" {
		next("l.fuel_type = $%d", string(f.FuelType))
	}
	if f.Query != "" {
		cond := fmt.Sprintf(
			"(mk.name ILIKE $%d OR md.name ILIKE $%d OR l.description ILIKE $%d OR l.features ILIKE $%d)",
			argPos, argPos, argPos, argPos,
		)
		conditions = append(conditions, cond)
		args = append(args, "%"+f.Query+"%")
		argPos++
	}

	where := conditions[0]
	for _, c := range conditions[1:] {
		where += " AND " + c
	}

	return where, args
}

// List retrieves unsold listings matching the filters, newest first.
func (r *ListingRepository) List(ctx context.Context, f *listing.Filters) ([]listing.Listing, int64, error) {
	where, args := buildListingFilter(f)

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", listingJoins, where)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	offset := (f.Page - 1) * f.PageSize
	query := fmt.Sprintf(
		"SELECT %s %s WHERE %s ORDER BY l.posted_on DESC LIMIT $%d OFFSET $%d",
		listingColumns, listingJoins, where, len(args)+1, len(args)+2,
	)
	args = append(args, f.PageSize, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list listings: %w", err)
	}

	listings, err := collectListings(rows)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// Create inserts a listing and its images in one transaction. A slug
// collision surfaces as ErrDuplicateEntry so the caller can retry with
// the next candidate.
func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing, images []listing.Image) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO listings (
			make_id, model_id, year, car_type, price, mileage,
			engine_capacity, transmission, fuel_type, color, doors, seats,
			features, description, country_of_origin, recondition_status,
			seller_id, slug
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, is_featured, is_sold, posted_on, updated_on
	`

	err = tx.QueryRow(
		ctx, query,
		l.MakeID, l.ModelID, l.Year, l.CarType, l.Price, l.Mileage,
		l.EngineCapacity, l.Transmission, l.FuelType, l.Color, l.Doors, l.Seats,
		l.Features, l.Description, l.CountryOfOrigin, l.ReconditionStatus,
		l.SellerID, l.Slug,
	).Scan(&l.ID, &l.IsFeatured, &l.IsSold, &l.PostedOn, &l.UpdatedOn)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return xerrors.ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	if err := insertImages(ctx, tx, l.ID, images); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertImages(ctx context.Context, tx pgx.Tx, listingID int64, images []listing.Image) error {
	query := `INSERT INTO listing_images (listing_id, image_url, is_primary) VALUES ($1, $2, $3) RETURNING id`

	for i := range images {
		images[i].ListingID = listingID
		if err := tx.QueryRow(ctx, query, listingID, images[i].ImageURL, images[i].IsPrimary).Scan(&images[i].ID); err != nil {
			return fmt.Errorf("failed to insert image: %w", err)
		}
	}

	return nil
}

// SlugExists checks whether a slug is already taken.
func (r *ListingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM listings WHERE slug = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

// FindBySlug retrieves a listing with its images. Sold listings are still
// reachable by slug so owners can manage them.
func (r *ListingRepository) FindBySlug(ctx context.Context, slug string) (*listing.Listing, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE l.slug = $1", listingColumns, listingJoins)

	l, err := scanListing(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find listing: %w", err)
	}

	images, err := r.loadImages(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.Images = images

	return l, nil
}

func (r *ListingRepository) loadImages(ctx context.Context, listingID int64) ([]listing.Image, error) {
	query := `
		SELECT id, listing_id, image_url, is_primary
		FROM listing_images
		WHERE listing_id = $1
		ORDER BY is_primary DESC, id
	`

	rows, err := r.db.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}
	defer rows.Close()

	images := []listing.Image{}
	for rows.Next() {
		var img listing.Image
		if err := rows.Scan(&img.ID, &img.ListingID, &img.ImageURL, &img.IsPrimary); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// FindFeatured retrieves unsold featured listings, newest first.
func (r *ListingRepository) FindFeatured(ctx context.Context, limit int) ([]listing.Listing, error) {
	query := fmt.Sprintf(
		"SELECT %s %s WHERE l.is_featured = TRUE AND l.is_sold = FALSE ORDER BY l.posted_on DESC LIMIT $1",
		listingColumns, listingJoins,
	)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find featured listings: %w", err)
	}

	return collectListings(rows)
}

// FindByType retrieves unsold listings of one car type, newest first.
func (r *ListingRepository) FindByType(ctx context.Context, carType listing.CarType, limit int) ([]listing.Listing, error) {
	query := fmt.Sprintf(
		"SELECT %s %s WHERE l.car_type = $1 AND l.is_sold = FALSE ORDER BY l.posted_on DESC LIMIT $2",
		listingColumns, listingJoins,
	)

	rows, err := r.db.Query(ctx, query, carType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find listings by type: %w", err)
	}

	return collectListings(rows)
}

// FindSimilar retrieves unsold listings of the same make, excluding the
// listing itself.
func (r *ListingRepository) FindSimilar(ctx context.Context, makeID, excludeID int64, limit int) ([]listing.Listing, error) {
	query := fmt.Sprintf(
		"SELECT %s %s WHERE l.make_id = $1 AND l.id <> $2 AND l.is_sold = FALSE ORDER BY l.posted_on DESC LIMIT $3",
		listingColumns, listingJoins,
	)

	rows, err := r.db.Query(ctx, query, makeID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar listings: %w", err)
	}

	return collectListings(rows)
}

// ListBySeller retrieves every listing of a seller, sold included.
func (r *ListingRepository) ListBySeller(ctx context.Context, sellerID int64) ([]listing.Listing, error) {
	query := fmt.Sprintf(
		"SELECT %s %s WHERE l.seller_id = $1 ORDER BY l.posted_on DESC",
		listingColumns, listingJoins,
	)

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seller listings: %w", err)
	}

	return collectListings(rows)
}

// Update rewrites a listing's mutable fields and replaces its image set
// in one transaction.
func (r *ListingRepository) Update(ctx context.Context, l *listing.Listing, images []listing.Image) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE listings
		SET make_id = $1, model_id = $2, year = $3, car_type = $4, price = $5,
		    mileage = $6, engine_capacity = $7, transmission = $8, fuel_type = $9,
		    color = $10, doors = $11, seats = $12, features = $13, description = $14,
		    country_of_origin = $15, recondition_status = $16, updated_on = $17
		WHERE id = $18
	`

	result, err := tx.Exec(
		ctx, query,
		l.MakeID, l.ModelID, l.Year, l.CarType, l.Price,
		l.Mileage, l.EngineCapacity, l.Transmission, l.FuelType,
		l.Color, l.Doors, l.Seats, l.Features, l.Description,
		l.CountryOfOrigin, l.ReconditionStatus, time.Now(), l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if images != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM listing_images WHERE listing_id = $1`, l.ID); err != nil {
			return fmt.Errorf("failed to clear images: %w", err)
		}
		if err := insertImages(ctx, tx, l.ID, images); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// MarkSold flags a listing as sold. Marking an already-sold listing is a
// no-op success.
func (r *ListingRepository) MarkSold(ctx context.Context, id int64) error {
	query := `UPDATE listings SET is_sold = TRUE, updated_on = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark listing sold: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes a listing; images and inquiries cascade at the schema
// level.
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
