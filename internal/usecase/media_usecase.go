package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	MaxMediaFiles    = 10
	MaxMediaFileSize = 50 << 20
	defaultFolder    = "products"
)

var (
	supportedMediaTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/webp": {},
		"video/mp4":  {},
		"video/webm": {},
	}
	mediaFolders = map[string]struct{}{
		"products":   {},
		"categories": {},
		"hero":       {},
	}
)

// MediaUseCase загружает изображения и видео витрины в объектное хранилище.
type MediaUseCase struct {
	mediaInfra MediaInfra
	cfg        *cfg.MinIOCfg
	logger     logger.Logger
}

func NewMediaUC(mediaInfra MediaInfra, cfg *cfg.MinIOCfg, logger logger.Logger) *MediaUseCase {
	return &MediaUseCase{mediaInfra: mediaInfra, cfg: cfg, logger: logger}
}

// Upload сохраняет файлы в каталоге folder и возвращает их публичные URL.
func (m *MediaUseCase) Upload(ctx context.Context, folder string, files []MediaFile) ([]string, error) {
	const op = "MediaUseCase.Upload"

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = defaultFolder
	}

	v := &e.ValidationError{}
	if _, ok := mediaFolders[folder]; !ok {
		v.Add("folder", "must be one of: products, categories, hero")
	}
	switch {
	case len(files) == 0:
		v.Add("files", e.ErrNoFiles.Error())
	case len(files) > MaxMediaFiles:
		v.Add("files", fmt.Sprintf("at most %d files per request", MaxMediaFiles))
	}
	for i, f := range files {
		if _, ok := supportedMediaTypes[f.MimeType]; !ok {
			v.Add(fmt.Sprintf("files[%d]", i), fmt.Sprintf("%s: %s", e.ErrUnsupportedMediaType.Error(), f.MimeType))
		}
		if f.Size > MaxMediaFileSize {
			v.Add(fmt.Sprintf("files[%d]", i), e.ErrFileTooLarge.Error())
		}
	}
	if err := v.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	res, err := m.mediaInfra.UploadMedia(ctx, NewUploadMediaReq(folder, files))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	urls := make([]string, 0, len(res.Keys))
	for _, key := range res.Keys {
		urls = append(urls, m.PublicURL(key))
	}

	m.logger.Infof("uploaded %d media file(s) to %s", len(urls), folder)
	return urls, nil
}

// PublicURL строит адрес объекта, по которому его забирает браузер.
func (m *MediaUseCase) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", m.cfg.PublicURL, m.cfg.BucketName, key)
}
