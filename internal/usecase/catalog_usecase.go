package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// CatalogUseCase управляет товарами и категориями витрины.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    ProductCacheRepository
	store        *cfg.StoreCfg
	logger       logger.Logger
	loads        singleflight.Group
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo ProductCacheRepository,
	store *cfg.StoreCfg,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		store:        store,
		logger:       logger,
	}
}

func (c *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return products, nil
}

// GetProduct сначала смотрит в кэш, при промахе читает из БД и кэширует в фоне.
// Одновременные промахи по одному товару дают один запрос в БД.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProducts(ctx, []uuid.UUID{id})
	if err == nil {
		if product, ok := cached[id]; ok {
			return &product, nil
		}
	}

	v, err, _ := c.loads.Do(id.String(), func() (any, error) {
		return c.productRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	product := *v.(*domain.Product)

	toCache := product
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProducts(bgCtx, []domain.Product{toCache}); err != nil {
			c.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &product, nil
}

func (c *CatalogUseCase) CreateProduct(ctx context.Context, in *ProductInput) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	product, err := c.buildProduct(ctx, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.logger.Infof("product created: id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id uuid.UUID, in *ProductInput) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	product, err := c.buildProduct(ctx, in)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	product.ID = id

	updated, err := c.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.invalidate(ctx, op, id)
	return updated, nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.invalidate(ctx, op, id)
	return nil
}

// ResetProducts удаляет весь каталог товаров. Позиции заказов сохраняют название товара.
func (c *CatalogUseCase) ResetProducts(ctx context.Context) (int, error) {
	const op = "CatalogUseCase.ResetProducts"

	ids, err := c.productRepo.DeleteAll(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	c.invalidate(ctx, op, ids...)
	c.logger.Warnf("catalog reset: %d products deleted", len(ids))
	return len(ids), nil
}

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return categories, nil
}

func (c *CatalogUseCase) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return category, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, in *CategoryInput) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if err := validateCategoryInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := c.categoryRepo.Create(ctx, domain.NewCategory(strings.TrimSpace(in.Name), emptyToNil(in.Description), emptyToNil(in.ImageURL)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return created, nil
}

func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, in *CategoryInput) (*domain.Category, error) {
	const op = "CatalogUseCase.UpdateCategory"

	if err := validateCategoryInput(in); err != nil {
		return nil, e.Wrap(op, err)
	}

	category := domain.NewCategory(strings.TrimSpace(in.Name), emptyToNil(in.Description), emptyToNil(in.ImageURL))
	category.ID = id

	updated, err := c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return updated, nil
}

// DeleteCategory удаляет категорию; её товары остаются без категории.
func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	const op = "CatalogUseCase.DeleteCategory"

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) buildProduct(ctx context.Context, in *ProductInput) (*domain.Product, error) {
	price, promo, categoryID, err := validateProductInput(in)
	if err != nil {
		return nil, err
	}

	if categoryID != nil {
		if _, err := c.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, e.NewValidationError("category_id", "category does not exist")
			}
			return nil, err
		}
	}

	product := domain.NewProduct(strings.TrimSpace(in.Name), strings.TrimSpace(in.Description), price, promo, categoryID)
	product.ImageURL = emptyToNil(in.ImageURL)
	product.VideoURL = emptyToNil(in.VideoURL)
	product.IsFeatured = in.IsFeatured
	for _, u := range in.AdditionalImages {
		if u = strings.TrimSpace(u); u != "" {
			product.AdditionalImages = append(product.AdditionalImages, u)
		}
	}

	return product, nil
}

func (c *CatalogUseCase) invalidate(ctx context.Context, op string, ids ...uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	if err := c.cacheRepo.DeleteProducts(ctx, ids); err != nil {
		c.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}
}
