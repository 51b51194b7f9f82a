package facebook

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
)

const (
	retryBaseDelay = 200 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
	actionSource   = "website"
)

// ConversionsClient отправляет серверные события в Facebook Conversions API.
type ConversionsClient struct {
	http   *http.Client
	cfg    *cfg.FacebookCfg
	logger logger.Logger
}

func NewConversionsClient(cfg *cfg.FacebookCfg, logger logger.Logger) *ConversionsClient {
	return &ConversionsClient{
		http:   &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		logger: logger,
	}
}

type eventsRequest struct {
	Data []serverEvent `json:"data"`
}

type serverEvent struct {
	EventName      string     `json:"event_name"`
	EventTime      int64      `json:"event_time"`
	EventID        string     `json:"event_id"`
	EventSourceURL string     `json:"event_source_url,omitempty"`
	ActionSource   string     `json:"action_source"`
	UserData       userData   `json:"user_data"`
	CustomData     customData `json:"custom_data"`
}

type userData struct {
	Email           []string `json:"em,omitempty"`
	Phone           []string `json:"ph,omitempty"`
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
}

type customData struct {
	Currency    string   `json:"currency,omitempty"`
	Value       int64    `json:"value,omitempty"`
	ContentIDs  []string `json:"content_ids,omitempty"`
	ContentName string   `json:"content_name,omitempty"`
	ContentType string   `json:"content_type,omitempty"`
	NumItems    int      `json:"num_items,omitempty"`
}

// retryableError — ответ, после которого имеет смысл повторить запрос.
type retryableError struct {
	status int
	body   string
}

func (r *retryableError) Error() string {
	return fmt.Sprintf("conversions api responded %d: %s", r.status, r.body)
}

// SendEvent отправляет событие, повторяя запрос при сетевых ошибках, 429 и 5xx.
// Если пиксель не настроен, событие пропускается.
func (c *ConversionsClient) SendEvent(ctx context.Context, event *usecase.ConversionEvent) error {
	if !c.cfg.Enabled() {
		c.logger.Debugf("conversion %s skipped: pixel is not configured", event.EventName)
		return nil
	}

	body, err := json.Marshal(eventsRequest{Data: []serverEvent{toServerEvent(event)}})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	attempts := c.cfg.MaxRetries + 1
	err = jitter.Retry(ctx, attempts, retryBaseDelay, retryMaxDelay, func(ctx context.Context) error {
		err := c.post(ctx, body)
		if err == nil {
			return nil
		}
		var retryable *retryableError
		if errors.As(err, &retryable) {
			return err
		}
		// 4xx кроме 429 повторять бессмысленно
		return jitter.Permanent(err)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *ConversionsClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &retryableError{body: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &retryableError{status: resp.StatusCode, body: string(msg)}
	}
	return fmt.Errorf("conversions api responded %d: %s", resp.StatusCode, msg)
}

func (c *ConversionsClient) endpoint() string {
	return fmt.Sprintf("%s/%s/%s/events?access_token=%s",
		c.cfg.BaseURL, c.cfg.APIVersion, url.PathEscape(c.cfg.PixelID), url.QueryEscape(c.cfg.AccessToken))
}

func toServerEvent(ev *usecase.ConversionEvent) serverEvent {
	out := serverEvent{
		EventName:      string(ev.EventName),
		EventTime:      ev.EventTime,
		EventID:        ev.EventID,
		EventSourceURL: ev.EventSourceURL,
		ActionSource:   actionSource,
		UserData: userData{
			ClientIPAddress: ev.ClientIP,
			ClientUserAgent: ev.UserAgent,
		},
		CustomData: customData{
			Currency:    ev.Currency,
			Value:       ev.Value,
			ContentIDs:  ev.ContentIDs,
			ContentName: ev.ContentName,
			NumItems:    ev.NumItems,
		},
	}
	if len(ev.ContentIDs) > 0 {
		out.CustomData.ContentType = "product"
	}
	if h := HashIdentifier(ev.Email); h != "" {
		out.UserData.Email = []string{h}
	}
	if h := HashIdentifier(normalizePhone(ev.Phone)); h != "" {
		out.UserData.Phone = []string{h}
	}
	return out
}

// HashIdentifier возвращает SHA-256 от нормализованного значения, пустая строка остаётся пустой.
func HashIdentifier(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:])
}

// normalizePhone оставляет только цифры, как того требует API.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
