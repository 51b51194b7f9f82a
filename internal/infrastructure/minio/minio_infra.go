package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/infrastructure"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	cleanupAttempts   = 3
	cleanupBaseDelay  = time.Second
	cleanupMaxDelay   = 8 * time.Second
	cleanupTimeout    = 30 * time.Second
	defaultUploadRate = 4
)

// MinioInfrastructure управляет загрузкой и очисткой медиафайлов в MinIO.
type MinioInfrastructure struct {
	mediaRepo   usecase.MediaRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
	uploadLimit int
}

func NewMinioInfrastructure(mediaRepo usecase.MediaRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	limit := cfg.UploadLimit
	if limit <= 0 {
		limit = defaultUploadRate
	}

	return &MinioInfrastructure{
		mediaRepo:   mediaRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		uploadLimit: limit,
	}
}

// UploadMedia загружает файлы параллельно, не больше uploadLimit одновременно.
// При первой ошибке отменяет остальные загрузки, дожидается запущенных и отправляет
// всё уже загруженное в фоновую очистку. Ключи возвращаются в порядке входных файлов.
func (m *MinioInfrastructure) UploadMedia(ctx context.Context, req *usecase.UploadMediaReq) (*usecase.UploadMediaRes, error) {
	const op = "MinioInfrastructure.UploadMedia"

	keys := make([]string, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.uploadLimit)
	for i, file := range req.Files {
		g.Go(func() error {
			ext, err := infrastructure.GetExtensionFromMIME(file.MimeType)
			if err != nil {
				return fmt.Errorf("invalid mime type %s for %s: %w", file.MimeType, file.Name, err)
			}
			if err := gctx.Err(); err != nil {
				return err
			}

			mediaID := uuid.NewString()
			media := domain.NewMedia(mediaID, m.cfg.BucketName, ObjectKey(req.Prefix, mediaID, ext), file.Data, file.MimeType)

			key, err := m.mediaRepo.Upload(gctx, media)
			if err != nil {
				return fmt.Errorf("upload %s failed: %w", file.Name, err)
			}
			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uploaded := make([]string, 0, len(keys))
		for _, k := range keys {
			if k != "" {
				uploaded = append(uploaded, k)
			}
		}
		m.CleanupMedia(uploaded)
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadMediaRes(keys), nil
}

// CleanupMedia запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupMedia(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет объекты с экспоненциальной задержкой и jitter между попытками.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: cleaning up %d uploaded key(s)", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		err := jitter.Retry(ctx, cleanupAttempts, cleanupBaseDelay, cleanupMaxDelay, func(ctx context.Context) error {
			return m.mediaRepo.Delete(ctx, m.cfg.BucketName, key)
		})
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
			return
		}
		m.logger.Errorf(e.Wrap(op, err), "failed to remove orphaned object %s", key)
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

// ObjectKey строит ключ объекта вида folder/uuid.ext.
func ObjectKey(folder, id, ext string) string {
	return fmt.Sprintf("%s/%s.%s", folder, id, ext)
}
