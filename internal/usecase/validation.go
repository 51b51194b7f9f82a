package usecase

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxCustomerNameLen     = 100
	maxDeliveryLocationLen = 500
	maxProductNameLen      = 200
	maxCategoryNameLen     = 100
	maxTemplateLen         = 500
	minPhoneDigits         = 8
	maxPhoneDigits         = 15
	maxPriceXAF            = 1_000_000_000
	maxItemQuantity        = 1000
)

var phoneChars = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]*$`)

// orderLine — проверенная позиция заказа.
type orderLine struct {
	productID uuid.UUID
	quantity  int
}

// validateCreateOrder проверяет все поля сразу и возвращает позиции,
// в которых повторяющиеся товары объединены.
func validateCreateOrder(req *CreateOrderReq) ([]orderLine, error) {
	v := &e.ValidationError{}

	validateCustomer(v, req.CustomerName, req.CustomerPhone, req.DeliveryLocation)

	if len(req.Items) == 0 {
		v.Add("items", "must contain at least one item")
	}

	lines := make([]orderLine, 0, len(req.Items))
	seen := make(map[uuid.UUID]int, len(req.Items))
	for i, item := range req.Items {
		id, err := uuid.Parse(strings.TrimSpace(item.ProductID))
		if err != nil {
			v.Add(fmt.Sprintf("items[%d].product_id", i), "must be a valid UUID")
		}
		quantityField := fmt.Sprintf("items[%d].quantity", i)
		switch {
		case item.Quantity < 1:
			v.Add(quantityField, "must be an integer >= 1")
		case item.Quantity > maxItemQuantity:
			v.Add(quantityField, fmt.Sprintf("must be at most %d", maxItemQuantity))
		}
		if err != nil || item.Quantity < 1 || item.Quantity > maxItemQuantity {
			continue
		}

		// Оба слагаемых не больше maxItemQuantity, сумма не переполняется.
		if idx, ok := seen[id]; ok {
			merged := lines[idx].quantity + item.Quantity
			if merged > maxItemQuantity {
				v.Add(quantityField, fmt.Sprintf("total quantity of product %s must be at most %d", id, maxItemQuantity))
				continue
			}
			lines[idx].quantity = merged
			continue
		}
		seen[id] = len(lines)
		lines = append(lines, orderLine{productID: id, quantity: item.Quantity})
	}

	if err := v.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func validateCustomer(v *e.ValidationError, name, phone, location string) {
	if n := utf8.RuneCountInString(strings.TrimSpace(name)); n == 0 {
		v.Add("customer_name", "is required")
	} else if n > maxCustomerNameLen {
		v.Add("customer_name", fmt.Sprintf("must be at most %d characters", maxCustomerNameLen))
	}

	if strings.TrimSpace(phone) == "" {
		v.Add("customer_phone", "is required")
	} else if !IsValidPhone(phone) {
		v.Add("customer_phone", "must be a valid phone number")
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(location)); n == 0 {
		v.Add("delivery_location", "is required")
	} else if n > maxDeliveryLocationLen {
		v.Add("delivery_location", fmt.Sprintf("must be at most %d characters", maxDeliveryLocationLen))
	}
}

// IsValidPhone принимает номер с необязательным '+', пробелами, скобками, точками и дефисами
// и от 8 до 15 цифр.
func IsValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !phoneChars.MatchString(phone) {
		return false
	}

	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// parsePriceXAF переводит строку вида "150000" или "150000.00" в целые XAF.
func parsePriceXAF(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(maxPriceXAF)) {
		return 0, e.ErrInvalidPrice
	}

	// у XAF нет дробной части
	if !d.Equal(d.Truncate(0)) {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

func validateProductInput(in *ProductInput) (price int64, promo *int64, categoryID *uuid.UUID, err error) {
	v := &e.ValidationError{}

	if n := utf8.RuneCountInString(strings.TrimSpace(in.Name)); n == 0 {
		v.Add("name", "is required")
	} else if n > maxProductNameLen {
		v.Add("name", fmt.Sprintf("must be at most %d characters", maxProductNameLen))
	}

	price, perr := parsePriceXAF(in.Price)
	if perr != nil {
		v.Add("price", perr.Error())
	}

	if in.PromotionalPrice != nil && strings.TrimSpace(*in.PromotionalPrice) != "" {
		p, perr := parsePriceXAF(*in.PromotionalPrice)
		if perr != nil {
			v.Add("promotional_price", perr.Error())
		} else {
			promo = &p
		}
	}

	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) != "" {
		id, perr := uuid.Parse(strings.TrimSpace(*in.CategoryID))
		if perr != nil {
			v.Add("category_id", "must be a valid UUID")
		} else {
			categoryID = &id
		}
	}

	validateOptionalURL(v, "image_url", in.ImageURL)
	validateOptionalURL(v, "video_url", in.VideoURL)
	for i, u := range in.AdditionalImages {
		validateOptionalURL(v, fmt.Sprintf("additional_images[%d]", i), &u)
	}

	if err := v.Err(); err != nil {
		return 0, nil, nil, err
	}
	return price, promo, categoryID, nil
}

func validateCategoryInput(in *CategoryInput) error {
	v := &e.ValidationError{}

	if n := utf8.RuneCountInString(strings.TrimSpace(in.Name)); n == 0 {
		v.Add("name", "is required")
	} else if n > maxCategoryNameLen {
		v.Add("name", fmt.Sprintf("must be at most %d characters", maxCategoryNameLen))
	}
	validateOptionalURL(v, "image_url", in.ImageURL)

	return v.Err()
}

func validateOptionalURL(v *e.ValidationError, field string, raw *string) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return
	}
	if !IsHTTPURL(*raw) {
		v.Add(field, "must be an absolute http(s) URL")
	}
}

func IsHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// emptyToNil приводит пустую строку к nil, чтобы в БД попадал NULL.
func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
