package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/repository"

	"github.com/go-redis/redis/v8"
)

var ErrProductNotFound = errors.New("product not found")

const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortFeatured  = "featured"
)

type ProductFilter struct {
	Category string
	Search   string
	Sort     string
}

// QueryProducts filters then sorts. Category "all" or empty passes everything,
// search is a case-insensitive substring match on the name, and every sort is
// stable so ties keep their input order.
func QueryProducts(products []domain.Product, f ProductFilter) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	search := strings.ToLower(f.Search)
	for _, p := range products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	default:
		// featured/default keeps input order
	}
	return out
}

const catalogCacheKey = "products:catalog"

type CatalogService struct {
	repo        repository.ProductRepository
	redisClient *redis.Client
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// ListProducts returns the in-stock catalog filtered and sorted per f. The
// raw catalog is served from a short-lived redis cache when available.
func (s *CatalogService) ListProducts(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	products, err := s.inStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	return QueryProducts(products, f), nil
}

func (s *CatalogService) inStockProducts(ctx context.Context) ([]domain.Product, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.repo.FindInStock()
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(products); err == nil {
			s.redisClient.Set(ctx, catalogCacheKey, data, time.Minute)
		}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	p, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ListAllProducts is the admin view, including out-of-stock products.
func (s *CatalogService) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll()
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product) error {
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	if err := s.repo.Create(p); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if err := domain.ValidateProduct(p); err != nil {
		return err
	}
	existing, err := s.repo.FindByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.repo.Update(p); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CatalogService) invalidateCatalog(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
}
