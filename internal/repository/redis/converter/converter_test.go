package converter

import (
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartConverter_RestoresLines(t *testing.T) {
	promo := int64(900)
	sofa := &domain.Product{ID: uuid.New(), Name: "Sofa", Price: 1000, PromotionalPrice: &promo}

	cart := domain.NewCart()
	cart.AddItem(sofa)
	cart.AddItem(sofa)

	conv := NewCartConverter()
	data, err := json.Marshal(conv.ToRedisModel(cart))
	require.NoError(t, err)

	var model CartRedisModel
	require.NoError(t, json.Unmarshal(data, &model))
	restored := conv.ToEntity(&model)

	assert.Equal(t, 2, restored.ItemCount())
	assert.Equal(t, int64(1800), restored.Total())
}

func TestCartConverter_DropsBrokenLines(t *testing.T) {
	id := uuid.New()
	restored := NewCartConverter().ToEntity(&CartRedisModel{Lines: []CartLineRedisModel{
		{ProductID: id, Name: "Chair", Price: 10, Quantity: 0},
		{ProductID: id, Name: "Chair", Price: 10, Quantity: 2},
		{ProductID: id, Name: "Chair", Price: 10, Quantity: 1},
	}})

	require.Len(t, restored.Lines(), 1)
	assert.Equal(t, 3, restored.ItemCount())
}

func TestProductConverter_KeepsCategory(t *testing.T) {
	catID := uuid.New()
	p := &domain.Product{
		ID:         uuid.New(),
		Name:       "Bed",
		CategoryID: &catID,
		Category:   &domain.CategorySummary{ID: catID, Name: "Chambre"},
	}

	conv := NewProductConverter()
	back := conv.ToEntity(conv.ToRedisModel(p))

	require.NotNil(t, back.Category)
	assert.Equal(t, "Chambre", back.Category.Name)
	assert.Equal(t, []string{}, back.AdditionalImages)
}
