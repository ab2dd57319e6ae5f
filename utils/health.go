package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     *bool     `json:"redis,omitempty"` // nil when no Redis is configured
	Telegram  bool      `json:"telegram"`
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot in memory.
type HealthMonitor struct {
	mu       sync.RWMutex
	current  HealthStatus
	redis    *redis.Client
	telegram bool
}

func NewHealthMonitor(redisClient *redis.Client, telegramEnabled bool) *HealthMonitor {
	return &HealthMonitor{
		redis:    redisClient,
		telegram: telegramEnabled,
		current:  HealthStatus{Telegram: telegramEnabled},
	}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings the dependencies once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Telegram: h.telegram, CheckedAt: time.Now()}
	if h.redis != nil {
		ok := h.redis.Ping(ctx).Err() == nil
		status.Redis = &ok
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (h *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		h.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
