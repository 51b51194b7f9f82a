package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

const maxJSONBodySize = 1 << 20

type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Errors  []e.FieldError `json:"errors,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse выбирает HTTP-статус по категории ошибки.
// Для 5xx наружу уходит только общее сообщение.
func ToHTTPResponse(err error) *ErrorResponse {
	var (
		validationErr *e.ValidationError
		notFoundErr   *e.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		resp := NewErrorResponse(http.StatusBadRequest, e.ErrValidation.Error())
		resp.Errors = validationErr.Fields
		return resp
	case errors.As(err, &notFoundErr):
		return NewErrorResponse(http.StatusNotFound, notFoundErr.Error())
	case errors.Is(err, e.ErrNotFound):
		return NewErrorResponse(http.StatusNotFound, e.ErrNotFound.Error())
	case errors.Is(err, e.ErrUnauthorized):
		return NewErrorResponse(http.StatusUnauthorized, e.ErrUnauthorized.Error())
	case errors.Is(err, e.ErrForbidden):
		return NewErrorResponse(http.StatusForbidden, e.ErrForbidden.Error())
	case errors.Is(err, e.ErrExpectedMultipart):
		return NewErrorResponse(http.StatusBadRequest, e.ErrExpectedMultipart.Error())
	case errors.Is(err, e.ErrExpectedJSON):
		return NewErrorResponse(http.StatusBadRequest, e.ErrExpectedJSON.Error())
	case errors.Is(err, e.ErrInvalidID):
		return NewErrorResponse(http.StatusBadRequest, e.ErrInvalidID.Error())
	case errors.Is(err, e.ErrMissingCartSession):
		return NewErrorResponse(http.StatusBadRequest, e.ErrMissingCartSession.Error())
	case errors.Is(err, e.ErrNoFiles):
		return NewErrorResponse(http.StatusBadRequest, e.ErrNoFiles.Error())
	case errors.Is(err, e.ErrTooManyFiles):
		return NewErrorResponse(http.StatusBadRequest, e.ErrTooManyFiles.Error())
	case errors.Is(err, e.ErrFileTooLarge):
		return NewErrorResponse(http.StatusBadRequest, e.ErrFileTooLarge.Error())
	case errors.Is(err, e.ErrIdempotencyInProgress):
		return NewErrorResponse(http.StatusConflict, e.ErrIdempotencyInProgress.Error())
	case errors.Is(err, e.ErrStatusBadRequest):
		return NewErrorResponse(http.StatusBadRequest, e.ErrStatusBadRequest.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, e.ErrInternalServerError.Error())
	}
}

func WriteError(w http.ResponseWriter, err error) {
	resp := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code)
	json.NewEncoder(w).Encode(resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeErr пишет ответ об ошибке: 4xx логируются как предупреждение, 5xx как ошибка с причиной.
func writeErr(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	resp := ToHTTPResponse(err)
	if resp.Code >= http.StatusInternalServerError {
		log.Errorf(err, "%d %s %s", resp.Code, r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %s", resp.Code, r.Method, r.URL.Path, err.Error())
	}
	WriteError(w, err)
}

// decodeJSON читает тело запроса в dst. Пустое или битое тело даёт ErrExpectedJSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrExpectedJSON)
	}
	return nil
}

// parseUUIDParam достаёт UUID из параметра пути chi.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, e.Wrap(name+"="+raw, e.ErrInvalidID)
	}
	return id, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

func parseMedia(files []*multipart.FileHeader) ([]usecase.MediaFile, error) {
	if len(files) == 0 {
		return nil, e.ErrNoFiles
	}
	if len(files) > usecase.MaxMediaFiles {
		return nil, e.ErrTooManyFiles
	}

	media := make([]usecase.MediaFile, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, usecase.MaxMediaFileSize)
		if err != nil {
			return nil, err
		}
		media = append(media, *usecase.NewMediaFile(data, mimeType, fh.Filename))
	}
	return media, nil
}

// readFile читает файл целиком и определяет MIME по первым 512 байтам.
func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	if fh.Size > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return data, mimeType, nil
}
