package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// MediaRepo реализует репозиторий медиафайлов поверх MinIO.
type MediaRepo struct {
	mc *minio.Client
}

func NewMediaRepo(mc *minio.Client) *MediaRepo {
	return &MediaRepo{mc: mc}
}

// Upload загружает файл в бакет из media.Bucket и возвращает ключ объекта.
func (m *MediaRepo) Upload(ctx context.Context, media *domain.Media) (string, error) {
	reader := bytes.NewReader(media.Data)

	info, err := m.mc.PutObject(ctx, media.Bucket, media.ObjectKey, reader, media.Size, minio.PutObjectOptions{
		ContentType:  media.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (m *MediaRepo) Delete(ctx context.Context, bucket, key string) error {
	if err := m.mc.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
