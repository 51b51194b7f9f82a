package domain

// Media описывает файл (изображение или видео), который хранится в S3
type Media struct {
	ID          string // uuid
	Bucket      string
	ObjectKey   string
	Data        []byte
	Size        int64
	ContentType string // Example: "image/webp"
}

func NewMedia(id, bucket, objectKey string, data []byte, contentType string) *Media {
	return &Media{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Data:        data,
		Size:        int64(len(data)),
		ContentType: contentType,
	}
}
