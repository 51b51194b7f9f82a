package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// SettingsHandler отдаёт и меняет настройки витрины: WhatsApp-контакт и видео на главной.
type SettingsHandler struct {
	settingsUsecase usecase.SettingsUC
	logger          logger.Logger
}

func NewSettingsHandler(settingsUsecase usecase.SettingsUC, logger logger.Logger) *SettingsHandler {
	return &SettingsHandler{settingsUsecase: settingsUsecase, logger: logger}
}

// getWhatsApp
//
//	@Summary	Активный WhatsApp-контакт
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	whatsAppResponse
//	@Router		/whatsapp [get]
func (s *SettingsHandler) getWhatsApp(w http.ResponseWriter, r *http.Request) {
	config, err := s.settingsUsecase.GetWhatsApp(r.Context())
	if err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toWhatsAppResponse(config))
}

// setWhatsApp
//
//	@Summary		Новый WhatsApp-контакт
//	@Description	Предыдущая настройка деактивируется в той же транзакции
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			config	body		whatsAppRequest	true	"Контакт"
//	@Success		201		{object}	whatsAppResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/whatsapp [post]
func (s *SettingsHandler) setWhatsApp(w http.ResponseWriter, r *http.Request) {
	var body whatsAppRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	config, err := s.settingsUsecase.SetWhatsApp(r.Context(), &usecase.SetWhatsAppReq{
		PhoneNumber:     body.PhoneNumber,
		MessageTemplate: body.MessageTemplate,
	})
	if err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toWhatsAppResponse(config))
}

// getHeroVideo
//
//	@Summary	Видео на главной
//	@Tags		settings
//	@Produce	json
//	@Success	200	{object}	heroVideoResponse
//	@Router		/hero-video [get]
func (s *SettingsHandler) getHeroVideo(w http.ResponseWriter, r *http.Request) {
	video, err := s.settingsUsecase.GetHeroVideo(r.Context())
	if err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toHeroVideoResponse(video))
}

// setHeroVideo
//
//	@Summary	Задать видео на главной
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		video	body		heroVideoRequest	true	"URL видео"
//	@Success	200		{object}	heroVideoResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/hero-video [post]
func (s *SettingsHandler) setHeroVideo(w http.ResponseWriter, r *http.Request) {
	var body heroVideoRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	video, err := s.settingsUsecase.SetHeroVideo(r.Context(), body.VideoURL)
	if err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toHeroVideoResponse(video))
}

// deleteHeroVideo
//
//	@Summary	Убрать видео с главной
//	@Tags		settings
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	successResponse
//	@Router		/hero-video [delete]
func (s *SettingsHandler) deleteHeroVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.settingsUsecase.DeleteHeroVideo(r.Context()); err != nil {
		writeErr(s.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, successResponse{Success: true})
}
