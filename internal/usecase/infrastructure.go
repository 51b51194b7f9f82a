package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type MediaInfra interface {
	UploadMedia(ctx context.Context, req *UploadMediaReq) (*UploadMediaRes, error)
	CleanupMedia(keys []string)
}

// EventPublisher доставляет события заказов во внешние системы.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *domain.OrderEvent) error
}

type ConversionsInfra interface {
	SendEvent(ctx context.Context, event *ConversionEvent) error
}
