// internal/service/listing/listing.go
package listing

import (
	"context"
	"fmt"

	"gari-service/internal/domain/listing"
	xerrors "gari-service/internal/pkg/errors"
	"gari-service/internal/pkg/render"
	"gari-service/internal/pkg/slug"
	"gari-service/internal/repository/postgres"

	"go.uber.org/zap"
)

const (
	homePreviewLimit   = 6
	similarLimit       = 3
	maxSlugInsertTries = 10
)

type ListingService struct {
	listingRepo *postgres.ListingRepository
	catalogRepo *postgres.CatalogRepository
	logger      *zap.Logger
}

func NewListingService(listingRepo *postgres.ListingRepository, catalogRepo *postgres.CatalogRepository, logger *zap.Logger) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Home aggregates the landing-page previews.
func (s *ListingService) Home(ctx context.Context) (*listing.HomeResponse, error) {
	featured, err := s.listingRepo.FindFeatured(ctx, homePreviewLimit)
	if err != nil {
		return nil, err
	}

	newCars, err := s.listingRepo.FindByType(ctx, listing.CarTypeNew, homePreviewLimit)
	if err != nil {
		return nil, err
	}

	reconditioned, err := s.listingRepo.FindByType(ctx, listing.CarTypeReconditioned, homePreviewLimit)
	if err != nil {
		return nil, err
	}

	makes, err := s.catalogRepo.ListMakes(ctx)
	if err != nil {
		return nil, err
	}

	return &listing.HomeResponse{
		Featured:      featured,
		New:           newCars,
		Reconditioned: reconditioned,
		Makes:         makes,
	}, nil
}

// List retrieves the public, unsold listing collection.
func (s *ListingService) List(ctx context.Context, f *listing.Filters) (*listing.ListResponse, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = listing.DefaultPageSize
	}

	listings, total, err := s.listingRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	totalPages := int(total) / f.PageSize
	if int(total)%f.PageSize > 0 {
		totalPages++
	}

	return &listing.ListResponse{
		Listings:   listings,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}, nil
}

// Get retrieves a listing detail with rendered features and similar cars.
func (s *ListingService) Get(ctx context.Context, slugStr string) (*listing.DetailResponse, error) {
	l, err := s.listingRepo.FindBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}

	similar, err := s.listingRepo.FindSimilar(ctx, l.MakeID, l.ID, similarLimit)
	if err != nil {
		return nil, err
	}

	return &listing.DetailResponse{
		Listing:         l,
		FeatureList:     render.FeatureList(l.Features),
		FeaturesDisplay: render.FeaturesDisplay(l.Features),
		SimilarListings: similar,
	}, nil
}

// Create validates the request, assigns a unique slug and persists the
// listing with its images. The caller becomes the seller.
func (s *ListingService) Create(ctx context.Context, sellerID int64, req *listing.CreateListingRequest) (*listing.Listing, error) {
	if err := validateSpec(req); err != nil {
		return nil, err
	}

	mk, err := s.catalogRepo.FindMakeByID(ctx, req.MakeID)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "unknown make")
	}
	md, err := s.catalogRepo.FindModelByID(ctx, req.ModelID)
	if err != nil || md.MakeID != req.MakeID {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "model does not belong to make")
	}

	l := buildEntity(req)
	l.SellerID = sellerID

	base := slug.Make(req.Year, mk.Name, md.Name)
	suffix, err := s.probeSlug(ctx, base)
	if err != nil {
		return nil, err
	}

	// The probe narrows the candidate; the unique constraint on slug plus
	// retry-on-conflict closes the race between probe and insert.
	for try := 0; try < maxSlugInsertTries; try++ {
		l.Slug = slug.Candidate(base, suffix)

		err = s.listingRepo.Create(ctx, l, imagesFromInput(req.Images))
		if err == nil {
			s.logger.Info("listing created",
				zap.Int64("listing_id", l.ID),
				zap.String("slug", l.Slug),
				zap.Int64("seller_id", sellerID),
			)
			return l, nil
		}
		if !xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			s.logger.Error("failed to create listing", zap.Error(err))
			return nil, err
		}
		suffix++
	}

	return nil, xerrors.Wrap(xerrors.ErrConflict, "could not assign a unique slug")
}

func (s *ListingService) probeSlug(ctx context.Context, base string) (int, error) {
	for n := 0; ; n++ {
		exists, err := s.listingRepo.SlugExists(ctx, slug.Candidate(base, n))
		if err != nil {
			return 0, err
		}
		if !exists {
			return n, nil
		}
	}
}

// Update rewrites an owned listing; conditional fields are re-validated
// against the possibly changed car type and images are replaced.
func (s *ListingService) Update(ctx context.Context, sellerID int64, slugStr string, req *listing.UpdateListingRequest) (*listing.Listing, error) {
	existing, err := s.listingRepo.FindBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}
	if err := ensureOwner(existing, sellerID); err != nil {
		return nil, err
	}

	if err := validateSpec(req); err != nil {
		return nil, err
	}
	if md, err := s.catalogRepo.FindModelByID(ctx, req.ModelID); err != nil || md.MakeID != req.MakeID {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "model does not belong to make")
	}

	updated := buildEntity(req)
	updated.ID = existing.ID
	updated.SellerID = existing.SellerID
	updated.Slug = existing.Slug

	if err := s.listingRepo.Update(ctx, updated, imagesFromInput(req.Images)); err != nil {
		s.logger.Error("failed to update listing", zap.Error(err), zap.String("slug", slugStr))
		return nil, err
	}

	s.logger.Info("listing updated", zap.Int64("listing_id", updated.ID), zap.String("slug", updated.Slug))

	return s.listingRepo.FindBySlug(ctx, updated.Slug)
}

// MarkSold flags an owned listing as sold. Idempotent.
func (s *ListingService) MarkSold(ctx context.Context, sellerID int64, slugStr string) error {
	l, err := s.listingRepo.FindBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if err := ensureOwner(l, sellerID); err != nil {
		return err
	}

	if err := s.listingRepo.MarkSold(ctx, l.ID); err != nil {
		return err
	}

	s.logger.Info("listing marked sold", zap.Int64("listing_id", l.ID), zap.String("slug", l.Slug))
	return nil
}

// Delete removes an owned listing; images and inquiries cascade.
func (s *ListingService) Delete(ctx context.Context, sellerID int64, slugStr string) error {
	l, err := s.listingRepo.FindBySlug(ctx, slugStr)
	if err != nil {
		return err
	}
	if err := ensureOwner(l, sellerID); err != nil {
		return err
	}

	if err := s.listingRepo.Delete(ctx, l.ID); err != nil {
		return err
	}

	s.logger.Info("listing deleted", zap.Int64("listing_id", l.ID), zap.String("slug", l.Slug))
	return nil
}

// MyListings retrieves the caller's own listings, sold included.
func (s *ListingService) MyListings(ctx context.Context, sellerID int64) ([]listing.Listing, error) {
	return s.listingRepo.ListBySeller(ctx, sellerID)
}

// imagesFromInput keeps nil distinct from empty: a nil input means "leave
// the stored images alone" on update, an empty slice clears them.
func imagesFromInput(inputs []listing.ImageInput) []listing.Image {
	if inputs == nil {
		return nil
	}

	images := make([]listing.Image, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, listing.Image{ImageURL: in.ImageURL, IsPrimary: in.IsPrimary})
	}
	return images
}
