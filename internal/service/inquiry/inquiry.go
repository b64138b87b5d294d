// internal/service/inquiry/inquiry.go
package inquiry

import (
	"context"

	"gari-service/internal/domain/inquiry"
	xerrors "gari-service/internal/pkg/errors"
	"gari-service/internal/pkg/session"
	"gari-service/internal/repository/postgres"
	"gari-service/internal/ws"

	"go.uber.org/zap"
)

type InquiryService struct {
	inquiryRepo *postgres.InquiryRepository
	listingRepo *postgres.ListingRepository
	rateLimiter *session.RateLimiter
	hub         *ws.Hub
	logger      *zap.Logger
}

func NewInquiryService(
	inquiryRepo *postgres.InquiryRepository,
	listingRepo *postgres.ListingRepository,
	rateLimiter *session.RateLimiter,
	hub *ws.Hub,
	logger *zap.Logger,
) *InquiryService {
	return &InquiryService{
		inquiryRepo: inquiryRepo,
		listingRepo: listingRepo,
		rateLimiter: rateLimiter,
		hub:         hub,
		logger:      logger,
	}
}

// Submit creates an inquiry against a listing. No authentication is
// required; submissions are rate limited per client IP.
func (s *InquiryService) Submit(ctx context.Context, listingSlug, clientIP string, req *inquiry.CreateInquiryRequest) (*inquiry.Inquiry, error) {
	allowed, err := s.rateLimiter.CheckInquiryAttempt(ctx, clientIP)
	if err != nil {
		s.logger.Warn("inquiry rate limit check failed", zap.Error(err))
	} else if !allowed {
		return nil, xerrors.ErrRateLimited
	}

	l, err := s.listingRepo.FindBySlug(ctx, listingSlug)
	if err != nil {
		return nil, err
	}

	inq := &inquiry.Inquiry{
		ListingID: l.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
	}

	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		s.logger.Error("failed to create inquiry", zap.Error(err))
		return nil, err
	}

	s.logger.Info("inquiry submitted",
		zap.Int64("inquiry_id", inq.ID),
		zap.Int64("listing_id", l.ID),
	)

	// Push a realtime notification to the seller if they are connected.
	s.hub.NotifyUser(l.SellerID, "inquiry.created", map[string]interface{}{
		"inquiry_id":   inq.ID,
		"listing_slug": l.Slug,
		"name":         inq.Name,
	})

	return inq, nil
}

// ListMine retrieves every inquiry across the caller's listings, newest
// first.
func (s *InquiryService) ListMine(ctx context.Context, sellerID int64) ([]inquiry.Inquiry, error) {
	return s.inquiryRepo.ListBySeller(ctx, sellerID)
}

// ToggleResponded flips an inquiry's responded flag. Only the owner of
// the inquiry's listing may do this; the toggle is deliberately
// bidirectional.
func (s *InquiryService) ToggleResponded(ctx context.Context, sellerID, inquiryID int64) (*inquiry.Inquiry, error) {
	inq, listingSellerID, err := s.inquiryRepo.FindByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	if listingSellerID != sellerID {
		return nil, xerrors.ErrForbidden
	}

	inq.Toggle()
	if err := s.inquiryRepo.SetResponded(ctx, inq.ID, inq.Responded); err != nil {
		return nil, err
	}

	s.logger.Info("inquiry responded toggled",
		zap.Int64("inquiry_id", inq.ID),
		zap.Bool("responded", inq.Responded),
	)

	return inq, nil
}
