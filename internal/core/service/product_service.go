package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
)

// ProductService implements the marketplace listing lifecycle. Women manage
// their own listings; admins may manage any.
type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, actor *domain.User, in ports.ProductInput) (*domain.Product, error) {
	if actor.Role != domain.RoleWoman && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	product := &domain.Product{
		SellerID:    actor.ID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		PriceINR:    in.PriceINR,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("seller_id", actor.ID).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, actor *domain.User, id string, in ports.ProductInput) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.SellerID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Category = in.Category
	existing.PriceINR = in.PriceINR
	existing.Stock = in.Stock
	existing.ImageURL = in.ImageURL
	existing.UpdatedAt = time.Now().UTC()

	return s.products.Update(ctx, existing)
}

func (s *ProductService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SellerID != actor.ID && actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f ports.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, f)
}
