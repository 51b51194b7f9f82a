package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// SettingsUseCase хранит настройки витрины: контакт WhatsApp и видео на главной.
type SettingsUseCase struct {
	whatsAppRepo  WhatsAppRepository
	heroVideoRepo HeroVideoRepository
	txManager     TxManager
	logger        logger.Logger
}

func NewSettingsUC(whatsAppRepo WhatsAppRepository, heroVideoRepo HeroVideoRepository, txManager TxManager, logger logger.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		whatsAppRepo:  whatsAppRepo,
		heroVideoRepo: heroVideoRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetWhatsApp возвращает активную настройку или nil.
func (s *SettingsUseCase) GetWhatsApp(ctx context.Context) (*domain.WhatsAppConfig, error) {
	const op = "SettingsUseCase.GetWhatsApp"

	config, err := s.whatsAppRepo.GetActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return config, nil
}

// SetWhatsApp деактивирует текущую настройку и сохраняет новую в одной транзакции.
func (s *SettingsUseCase) SetWhatsApp(ctx context.Context, req *SetWhatsAppReq) (*domain.WhatsAppConfig, error) {
	const op = "SettingsUseCase.SetWhatsApp"

	phone := strings.TrimSpace(req.PhoneNumber)
	template := strings.TrimSpace(req.MessageTemplate)

	v := &e.ValidationError{}
	if phone == "" {
		v.Add("phone_number", "is required")
	} else if !IsValidPhone(phone) {
		v.Add("phone_number", "must be a valid phone number")
	}
	if utf8.RuneCountInString(template) > maxTemplateLen {
		v.Add("message_template", fmt.Sprintf("must be at most %d characters", maxTemplateLen))
	}
	if err := v.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	var created *domain.WhatsAppConfig
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.whatsAppRepo.DeactivateAll(ctx); err != nil {
			return err
		}

		var err error
		created, err = s.whatsAppRepo.Create(ctx, domain.NewWhatsAppConfig(phone, template))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Infof("whatsapp contact updated: id=%s", created.ID)
	return created, nil
}

// GetHeroVideo возвращает видео главной страницы или nil.
func (s *SettingsUseCase) GetHeroVideo(ctx context.Context) (*domain.HeroVideo, error) {
	const op = "SettingsUseCase.GetHeroVideo"

	video, err := s.heroVideoRepo.Get(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return video, nil
}

func (s *SettingsUseCase) SetHeroVideo(ctx context.Context, videoURL string) (*domain.HeroVideo, error) {
	const op = "SettingsUseCase.SetHeroVideo"

	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return nil, e.Wrap(op, e.NewValidationError("video_url", "is required"))
	}
	if !IsHTTPURL(videoURL) {
		return nil, e.Wrap(op, e.NewValidationError("video_url", "must be an absolute http(s) URL"))
	}

	video, err := s.heroVideoRepo.Upsert(ctx, videoURL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	return video, nil
}

func (s *SettingsUseCase) DeleteHeroVideo(ctx context.Context) error {
	const op = "SettingsUseCase.DeleteHeroVideo"

	if err := s.heroVideoRepo.Delete(ctx); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
