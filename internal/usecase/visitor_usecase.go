package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

const maxUserAgentLen = 512

type VisitorUseCase struct {
	visitorRepo VisitorRepository
	now         func() time.Time
}

func NewVisitorUC(visitorRepo VisitorRepository) *VisitorUseCase {
	return &VisitorUseCase{visitorRepo: visitorRepo, now: time.Now}
}

// Track засчитывает посещение; повторные визиты с того же IP в тот же день игнорируются.
func (v *VisitorUseCase) Track(ctx context.Context, req *TrackVisitReq) error {
	const op = "VisitorUseCase.Track"

	ip := strings.TrimSpace(req.IPAddress)
	if ip == "" {
		return e.Wrap(op, e.NewValidationError("ip_address", "is required"))
	}

	ua := req.UserAgent
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}

	visit := &domain.Visit{
		IPAddress: ip,
		UserAgent: ua,
		VisitDate: v.now().UTC().Truncate(24 * time.Hour),
	}
	if err := v.visitorRepo.Track(ctx, visit); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (v *VisitorUseCase) Stats(ctx context.Context) (*domain.VisitorStats, error) {
	const op = "VisitorUseCase.Stats"

	stats, err := v.visitorRepo.Stats(ctx, v.now().UTC())
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return stats, nil
}
