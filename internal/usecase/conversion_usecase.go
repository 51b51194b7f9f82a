package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

// ConversionUseCase пересылает события витрины в рекламный API конверсий.
// Сбой внешнего API логируется и не влияет на ответ покупателю.
type ConversionUseCase struct {
	infra  ConversionsInfra
	store  *cfg.StoreCfg
	logger logger.Logger
	now    func() time.Time
}

func NewConversionUC(infra ConversionsInfra, store *cfg.StoreCfg, logger logger.Logger) *ConversionUseCase {
	return &ConversionUseCase{infra: infra, store: store, logger: logger, now: time.Now}
}

func ParseConversionEventName(s string) (ConversionEventName, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pageview":
		return ConversionPageView, true
	case "viewcontent":
		return ConversionViewContent, true
	case "addtocart":
		return ConversionAddToCart, true
	case "purchase":
		return ConversionPurchase, true
	default:
		return "", false
	}
}

func (c *ConversionUseCase) Track(ctx context.Context, req *TrackConversionReq) error {
	const op = "ConversionUseCase.Track"

	switch req.EventName {
	case ConversionPageView, ConversionViewContent, ConversionAddToCart, ConversionPurchase:
	default:
		return e.Wrap(op, e.NewValidationError("event", "unknown conversion event"))
	}

	event := &ConversionEvent{
		EventID:        uuid.NewString(),
		EventName:      req.EventName,
		EventTime:      c.now().Unix(),
		EventSourceURL: c.sourceURL(req),
		ClientIP:       req.ClientIP,
		UserAgent:      req.UserAgent,
		Email:          req.Email,
		Phone:          req.Phone,
		ContentIDs:     req.ContentIDs,
		ContentName:    req.ContentName,
		Value:          req.Value,
		Currency:       req.Currency,
		NumItems:       req.NumItems,
	}
	if event.Currency == "" {
		event.Currency = c.store.Currency
	}

	if err := c.infra.SendEvent(ctx, event); err != nil {
		c.logger.Warnf("Conversion event %s was not delivered: %v", event.EventName, e.Wrap(op, err))
	}
	return nil
}

func (c *ConversionUseCase) sourceURL(req *TrackConversionReq) string {
	if u := strings.TrimSpace(req.EventSourceURL); u != "" && IsHTTPURL(u) {
		return u
	}

	switch req.EventName {
	case ConversionViewContent:
		if len(req.ContentIDs) > 0 {
			return c.store.PublicURL + "/product/" + req.ContentIDs[0]
		}
	case ConversionPurchase:
		return c.store.PublicURL + "/cart"
	}
	return c.store.PublicURL
}
