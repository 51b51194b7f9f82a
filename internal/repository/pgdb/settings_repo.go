package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// WhatsAppRepo хранит историю настроек WhatsApp; активна не больше одной записи.
type WhatsAppRepo struct {
	pool *pgxpool.Pool
	conv converter.SettingsConverter
}

func NewWhatsAppRepo(pool *pgxpool.Pool, conv converter.SettingsConverter) *WhatsAppRepo {
	return &WhatsAppRepo{pool: pool, conv: conv}
}

func (w *WhatsAppRepo) GetActive(ctx context.Context) (*domain.WhatsAppConfig, error) {
	query := `
		SELECT id, phone_number, message_template, is_active, created_at
		FROM whatsapp_settings
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1
	`

	var m converter.WhatsAppConfigModel
	err := tr.Conn(ctx, w.pool).QueryRow(ctx, query).
		Scan(&m.ID, &m.PhoneNumber, &m.MessageTemplate, &m.IsActive, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return w.conv.WhatsAppToEntity(&m), nil
}

func (w *WhatsAppRepo) DeactivateAll(ctx context.Context) error {
	if _, err := tr.Conn(ctx, w.pool).Exec(ctx, `UPDATE whatsapp_settings SET is_active = FALSE WHERE is_active`); err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	return nil
}

func (w *WhatsAppRepo) Create(ctx context.Context, config *domain.WhatsAppConfig) (*domain.WhatsAppConfig, error) {
	query := `
		INSERT INTO whatsapp_settings (id, phone_number, message_template, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, phone_number, message_template, is_active, created_at
	`

	var m converter.WhatsAppConfigModel
	err := tr.Conn(ctx, w.pool).
		QueryRow(ctx, query, config.ID, config.PhoneNumber, config.MessageTemplate, config.IsActive).
		Scan(&m.ID, &m.PhoneNumber, &m.MessageTemplate, &m.IsActive, &m.CreatedAt)
	if err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return w.conv.WhatsAppToEntity(&m), nil
}

// HeroVideoRepo хранит единственную строку с видео главной страницы.
type HeroVideoRepo struct {
	pool *pgxpool.Pool
	conv converter.SettingsConverter
}

func NewHeroVideoRepo(pool *pgxpool.Pool, conv converter.SettingsConverter) *HeroVideoRepo {
	return &HeroVideoRepo{pool: pool, conv: conv}
}

func (h *HeroVideoRepo) Get(ctx context.Context) (*domain.HeroVideo, error) {
	var m converter.HeroVideoModel
	err := tr.Conn(ctx, h.pool).
		QueryRow(ctx, `SELECT id, video_url, updated_at FROM hero_video WHERE slot = 1`).
		Scan(&m.ID, &m.VideoURL, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return h.conv.HeroVideoToEntity(&m), nil
}

func (h *HeroVideoRepo) Upsert(ctx context.Context, videoURL string) (*domain.HeroVideo, error) {
	query := `
		INSERT INTO hero_video (slot, video_url) VALUES (1, $1)
		ON CONFLICT (slot) DO UPDATE SET video_url = EXCLUDED.video_url, updated_at = NOW()
		RETURNING id, video_url, updated_at
	`

	var m converter.HeroVideoModel
	if err := tr.Conn(ctx, h.pool).QueryRow(ctx, query, videoURL).Scan(&m.ID, &m.VideoURL, &m.UpdatedAt); err != nil {
		return nil, e.Persistence(whereami.WhereAmI(), err)
	}

	return h.conv.HeroVideoToEntity(&m), nil
}

// Delete не считает ошибкой отсутствие видео.
func (h *HeroVideoRepo) Delete(ctx context.Context) error {
	if _, err := tr.Conn(ctx, h.pool).Exec(ctx, `DELETE FROM hero_video WHERE slot = 1`); err != nil {
		return e.Persistence(whereami.WhereAmI(), err)
	}
	return nil
}
