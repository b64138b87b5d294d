// internal/repository/postgres/inquiry_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"gari-service/internal/domain/inquiry"
	xerrors "gari-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create inserts a new inquiry against a listing.
func (r *InquiryRepository) Create(ctx context.Context, i *inquiry.Inquiry) error {
	query := `
		INSERT INTO inquiries (listing_id, name, email, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, responded, created_at
	`

	err := r.db.QueryRow(ctx, query, i.ListingID, i.Name, i.Email, i.Phone, i.Message).
		Scan(&i.ID, &i.Responded, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// FindByID retrieves an inquiry together with its listing's seller, slug
// and title for ownership checks and display.
func (r *InquiryRepository) FindByID(ctx context.Context, id int64) (*inquiry.Inquiry, int64, error) {
	query := `
		SELECT i.id, i.listing_id, i.name, i.email, i.phone, i.message,
		       i.responded, i.created_at, l.seller_id, l.slug,
		       l.year::text || ' ' || mk.name || ' ' || md.name
		FROM inquiries i
		JOIN listings l ON l.id = i.listing_id
		JOIN makes mk ON mk.id = l.make_id
		JOIN models md ON md.id = l.model_id
		WHERE i.id = $1
	`

	var inq inquiry.Inquiry
	var sellerID int64
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inq.ID, &inq.ListingID, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
		&inq.Responded, &inq.CreatedAt, &sellerID, &inq.ListingSlug, &inq.ListingTitle,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find inquiry: %w", err)
	}

	return &inq, sellerID, nil
}

// ListBySeller retrieves every inquiry across all of a seller's listings,
// newest first.
func (r *InquiryRepository) ListBySeller(ctx context.Context, sellerID int64) ([]inquiry.Inquiry, error) {
	query := `
		SELECT i.id, i.listing_id, i.name, i.email, i.phone, i.message,
		       i.responded, i.created_at, l.slug,
		       l.year::text || ' ' || mk.name || ' ' || md.name
		FROM inquiries i
		JOIN listings l ON l.id = i.listing_id
		JOIN makes mk ON mk.id = l.make_id
		JOIN models md ON md.id = l.model_id
		WHERE l.seller_id = $1
		ORDER BY i.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []inquiry.Inquiry{}
	for rows.Next() {
		var inq inquiry.Inquiry
		err := rows.Scan(
			&inq.ID, &inq.ListingID, &inq.Name, &inq.Email, &inq.Phone, &inq.Message,
			&inq.Responded, &inq.CreatedAt, &inq.ListingSlug, &inq.ListingTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, rows.Err()
}

// SetResponded stores the toggled responded flag.
func (r *InquiryRepository) SetResponded(ctx context.Context, id int64, responded bool) error {
	result, err := r.db.Exec(ctx, `UPDATE inquiries SET responded = $1 WHERE id = $2`, responded, id)
	if err != nil {
		return fmt.Errorf("failed to update inquiry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}
