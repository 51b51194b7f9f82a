package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultWhatsAppTemplate = "Bonjour, je suis intéressé par vos produits sur Vekora."

// WhatsAppConfig — контакт для кнопки WhatsApp на витрине. Активна не больше одной записи.
type WhatsAppConfig struct {
	ID              uuid.UUID
	PhoneNumber     string
	MessageTemplate string
	IsActive        bool
	CreatedAt       time.Time
}

func NewWhatsAppConfig(phone, template string) *WhatsAppConfig {
	if template == "" {
		template = DefaultWhatsAppTemplate
	}
	return &WhatsAppConfig{
		ID:              uuid.New(),
		PhoneNumber:     phone,
		MessageTemplate: template,
		IsActive:        true,
	}
}

// HeroVideo — видео на главной странице, хранится одной строкой.
type HeroVideo struct {
	ID        uuid.UUID
	VideoURL  string
	UpdatedAt time.Time
}
