// Package jitter добавляет случайность в интервалы повторных попыток,
// чтобы клиенты не ретраили синхронно.
package jitter

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	f := globalRand.Float64()
	randMutex.Unlock()
	return d + time.Duration(f*jitterFactor*float64(d))
}

// ExponentialBackoff — base*2^attempt, не больше max, плюс джиттер.
// attempt нумеруется с нуля.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}

// Sleep ждёт d или отмены контекста.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PermanentError останавливает Retry без дальнейших попыток.
type PermanentError struct {
	Err error
}

func (p *PermanentError) Error() string { return p.Err.Error() }

func (p *PermanentError) Unwrap() error { return p.Err }

// Permanent помечает ошибку как неповторяемую.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Retry вызывает fn до maxAttempts раз с экспоненциальной задержкой между попытками.
// Возвращает последнюю ошибку fn или ошибку контекста. Ошибка, обёрнутая в Permanent,
// возвращается сразу и без обёртки.
func Retry(ctx context.Context, maxAttempts int, base, max time.Duration, fn func(ctx context.Context) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		var permanent *PermanentError
		if errors.As(err, &permanent) {
			return permanent.Err
		}
		if attempt == maxAttempts-1 {
			break
		}
		if sleepErr := Sleep(ctx, ExponentialBackoff(base, max, attempt, DefaultJitter)); sleepErr != nil {
			return sleepErr
		}
	}

	return err
}
