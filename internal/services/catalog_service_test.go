package services

import (
	"context"
	"testing"
	"time"

	"storefront-service/internal/domain"
	"storefront-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func catalogFixture() []domain.Product {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Ceramic Vase", Price: 500, Category: "ceramics", Rating: 4.5, CreatedAt: base},
		{ID: 2, Name: "Woven Basket", Price: 100, Category: "baskets", Rating: 0, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, Name: "Macrame Wall Hanging", Price: 300, Category: "textiles", Rating: 4.8, CreatedAt: base.Add(24 * time.Hour)},
	}
}

func TestQueryProducts(t *testing.T) {
	tests := []struct {
		name        string
		filter      ProductFilter
		expectedIDs []uint64
	}{
		{
			name:        "default keeps input order",
			filter:      ProductFilter{Category: "all"},
			expectedIDs: []uint64{1, 2, 3},
		},
		{
			name:        "price-low sorts ascending",
			filter:      ProductFilter{Category: "all", Sort: SortPriceLow},
			expectedIDs: []uint64{2, 3, 1},
		},
		{
			name:        "price-high sorts descending",
			filter:      ProductFilter{Category: "all", Sort: SortPriceHigh},
			expectedIDs: []uint64{1, 3, 2},
		},
		{
			name:        "rating sorts descending with missing rating as zero",
			filter:      ProductFilter{Category: "all", Sort: SortRating},
			expectedIDs: []uint64{3, 1, 2},
		},
		{
			name:        "newest sorts by creation time descending",
			filter:      ProductFilter{Category: "all", Sort: SortNewest},
			expectedIDs: []uint64{2, 3, 1},
		},
		{
			name:        "category filter is exact",
			filter:      ProductFilter{Category: "ceramics"},
			expectedIDs: []uint64{1},
		},
		{
			name:        "unmatched category yields empty result",
			filter:      ProductFilter{Category: "glassware"},
			expectedIDs: []uint64{},
		},
		{
			name:        "search is case-insensitive substring",
			filter:      ProductFilter{Category: "all", Search: "wAlL"},
			expectedIDs: []uint64{3},
		},
		{
			name:        "search and category compose with AND",
			filter:      ProductFilter{Category: "baskets", Search: "vase"},
			expectedIDs: []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QueryProducts(catalogFixture(), tt.filter)
			ids := make([]uint64, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestQueryProducts_StableSort(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "A", Price: 200},
		{ID: 2, Name: "B", Price: 200},
		{ID: 3, Name: "C", Price: 100},
		{ID: 4, Name: "D", Price: 200},
	}
	result := QueryProducts(products, ProductFilter{Sort: SortPriceLow})

	ids := make([]uint64, 0, len(result))
	for _, p := range result {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []uint64{3, 1, 2, 4}, ids, "equal prices must keep input order")
}

func TestCatalogService_GetProduct(t *testing.T) {
	t.Run("missing product maps to not-found", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		repo.On("FindByID", uint64(99)).Return(nil, nil)

		service := NewCatalogService(repo)
		_, err := service.GetProduct(context.Background(), 99)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("found product is returned", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		p := CreateMockProduct(TestProductID, "Ceramic Vase", 29900, "ceramics")
		repo.On("FindByID", TestProductID).Return(&p, nil)

		service := NewCatalogService(repo)
		got, err := service.GetProduct(context.Background(), TestProductID)

		assert.NoError(t, err)
		assert.Equal(t, &p, got)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	t.Run("invalid product never reaches the repository", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		service := NewCatalogService(repo)

		err := service.CreateProduct(context.Background(), &domain.Product{Name: "Vase"})

		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("valid product is persisted", func(t *testing.T) {
		repo := new(mocks.MockProductRepository)
		p := CreateMockProduct(0, "Ceramic Vase", 29900, "ceramics")
		repo.On("Create", &p).Return(nil)

		service := NewCatalogService(repo)
		assert.NoError(t, service.CreateProduct(context.Background(), &p))
		repo.AssertExpectations(t)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	repo.On("FindInStock").Return(catalogFixture(), nil)

	service := NewCatalogService(repo)
	result, err := service.ListProducts(context.Background(), ProductFilter{Category: "all", Sort: SortPriceLow})

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, int64(100), result[0].Price)
	repo.AssertExpectations(t)
}
