// internal/service/catalog/catalog.go
package catalog

import (
	"context"

	"gari-service/internal/domain/catalog"
	"gari-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type CatalogService struct {
	catalogRepo *postgres.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(catalogRepo *postgres.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListMakes retrieves all makes.
func (s *CatalogService) ListMakes(ctx context.Context) ([]catalog.Make, error) {
	return s.catalogRepo.ListMakes(ctx)
}

// GetMake retrieves a make together with its models.
func (s *CatalogService) GetMake(ctx context.Context, id int64) (*catalog.MakeDetail, error) {
	mk, err := s.catalogRepo.FindMakeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	models, err := s.catalogRepo.ListModelsByMake(ctx, id)
	if err != nil {
		return nil, err
	}

	return &catalog.MakeDetail{Make: *mk, Models: models}, nil
}
