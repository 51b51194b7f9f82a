package infrastructure

import "github.com/DRSN-tech/storefront/pkg/e"

var mediaExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"video/mp4":  "mp4",
	"video/webm": "webm",
}

// GetExtensionFromMIME возвращает расширение объекта в хранилище по MIME-типу.
// Для неизвестного типа отдаёт "bin" вместе с e.ErrUnsupportedMediaType.
func GetExtensionFromMIME(mime string) (string, error) {
	if ext, ok := mediaExtensions[mime]; ok {
		return ext, nil
	}
	return "bin", e.ErrUnsupportedMediaType
}
