package e

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Категории ошибок, по которым delivery-слой выбирает HTTP-статус
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = errors.New("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = errors.New("bad request")
	ErrExpectedMultipart    = errors.New("expected multipart/form-data")
	ErrExpectedJSON         = errors.New("expected application/json body")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrPricePrecision       = errors.New("price must be a whole number of XAF")
	ErrNoFiles              = errors.New("no files provided")
	ErrTooManyFiles         = errors.New("too many files")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidID            = errors.New("invalid identifier")
	ErrMissingCartSession   = errors.New("missing or invalid cart session")

	// 409 Conflict
	ErrIdempotencyInProgress = errors.New("request with this idempotency key is still in progress")

	// 500
	ErrInternalServerError  = errors.New("internal server error")
	ErrIncorrectEnvVariable = errors.New("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Persistence помечает ошибку хранилища как ErrPersistence, сохраняя исходную причину.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrPersistence) {
		return Wrap(op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// FieldError описывает проблему с одним полем запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError содержит все нарушения, найденные при проверке запроса.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add регистрирует нарушение поля.
func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// Err возвращает nil, если нарушений не найдено.
func (v *ValidationError) Err() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// NewValidationError создаёт ошибку валидации по одному полю.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// NotFoundError — сущность с указанным идентификатором отсутствует.
type NotFoundError struct {
	Entity string
	ID     string
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (n *NotFoundError) Error() string {
	if n.ID == "" {
		return n.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", n.Entity, n.ID)
}

func (n *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
