package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

var facebookFeedHeader = []string{
	"id",
	"title",
	"description",
	"availability",
	"condition",
	"price",
	"link",
	"image_link",
	"brand",
	"google_product_category",
	"product_type",
}

// ExportFacebookCatalog пишет каталог в формате CSV-фида Facebook, новые товары первыми.
func (c *CatalogUseCase) ExportFacebookCatalog(ctx context.Context, w io.Writer) error {
	const op = "CatalogUseCase.ExportFacebookCatalog"

	products, err := c.productRepo.List(ctx, ProductFilter{})
	if err != nil {
		return e.Wrap(op, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(facebookFeedHeader); err != nil {
		return e.Wrap(op, err)
	}

	for i := range products {
		if err := cw.Write(c.feedRow(&products[i])); err != nil {
			return e.Wrap(op, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (c *CatalogUseCase) feedRow(p *domain.Product) []string {
	imageLink := ""
	if p.ImageURL != nil {
		imageLink = *p.ImageURL
	}

	productType := c.store.DefaultProductType
	if p.Category != nil && p.Category.Name != "" {
		productType = p.Category.Name
	}

	return []string{
		p.ID.String(),
		p.Name,
		p.Description,
		"in stock",
		"new",
		fmt.Sprintf("%d %s", p.EffectivePrice(), c.store.Currency),
		fmt.Sprintf("%s/product/%s", c.store.PublicURL, p.ID),
		imageLink,
		c.store.Brand,
		c.store.GoogleProductCategory,
		productType,
	}
}
