package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type MediaHandler struct {
	mediaUsecase usecase.MediaUC
	logger       logger.Logger
}

func NewMediaHandler(mediaUsecase usecase.MediaUC, logger logger.Logger) *MediaHandler {
	return &MediaHandler{mediaUsecase: mediaUsecase, logger: logger}
}

// uploadMedia
//
//	@Summary		Загрузка изображений и видео
//	@Description	До 10 файлов по 50 МБ: jpeg, png, webp, mp4, webm
//	@Tags			media
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			folder	formData	string	false	"products, categories или hero"
//	@Param			files	formData	file	true	"Файлы"
//	@Success		201		{object}	mediaResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/media [post]
func (m *MediaHandler) uploadMedia(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = usecase.MaxMediaFiles*usecase.MaxMediaFileSize + 1<<20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		writeErr(m.logger, w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files, err := parseMedia(r.MultipartForm.File["files"])
	if err != nil {
		writeErr(m.logger, w, r, err)
		return
	}

	urls, err := m.mediaUsecase.Upload(r.Context(), r.FormValue("folder"), files)
	if err != nil {
		writeErr(m.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, mediaResponse{URLs: urls})
}
