package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category описывает категорию товаров
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type CategorySummary struct {
	ID   uuid.UUID
	Name string
}

func NewCategory(name string, description, imageURL *string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}
}
