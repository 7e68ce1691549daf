package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/bookexchange/internal/config"
)

// LoginLimiter throttles failed login attempts per client IP and email.
// Once MaxAttempts failures land inside Window the pair is locked out for
// Lockout, regardless of whether later passwords are correct.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptRecord
	limits   LimiterConfig
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type attemptRecord struct {
	failures    int
	windowStart time.Time
	lockedUntil time.Time
}

// LimiterConfig contains configuration for the login limiter.
type LimiterConfig struct {
	MaxAttempts     int
	Window          time.Duration
	Lockout         time.Duration
	CleanupInterval time.Duration
}

// LimiterConfigFrom maps the auth configuration onto limiter settings.
// A zero MaxLoginAttempts yields a config for which NewLoginLimiter
// returns nil.
func LimiterConfigFrom(cfg config.Auth) LimiterConfig {
	return LimiterConfig{
		MaxAttempts:     cfg.MaxLoginAttempts,
		Window:          cfg.RateLimitWindow,
		Lockout:         cfg.LockoutDuration,
		CleanupInterval: 5 * time.Minute,
	}
}

// NewLoginLimiter starts a limiter with a background cleanup loop. It
// returns nil when MaxAttempts is not positive; a nil limiter allows
// everything.
func NewLoginLimiter(cfg LimiterConfig) *LoginLimiter {
	if cfg.MaxAttempts <= 0 {
		return nil
	}
	if cfg.Window <= 0 {
		cfg.Window = 15 * time.Minute
	}
	if cfg.Lockout <= 0 {
		cfg.Lockout = 30 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	l := &LoginLimiter{
		attempts: make(map[string]*attemptRecord),
		limits:   cfg,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (l *LoginLimiter) Stop() {
	if l == nil {
		return
	}
	l.stopOnce.Do(func() { close(l.stop) })
}

func limiterKey(ip, correo string) string {
	return ip + "|" + strings.ToLower(strings.TrimSpace(correo))
}

// Allow reports whether a login attempt may proceed and, if not, how long
// until the lockout ends.
func (l *LoginLimiter) Allow(ip, correo string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.attempts[limiterKey(ip, correo)]
	if !ok {
		return true, 0
	}
	if now.Before(record.lockedUntil) {
		return false, record.lockedUntil.Sub(now)
	}
	return true, 0
}

// RecordFailure counts a failed attempt and reports whether the pair is
// now locked out.
func (l *LoginLimiter) RecordFailure(ip, correo string) (bool, time.Duration) {
	if l == nil {
		return false, 0
	}
	now := l.now()
	key := limiterKey(ip, correo)

	l.mu.Lock()
	defer l.mu.Unlock()

	record, ok := l.attempts[key]
	if !ok || now.Sub(record.windowStart) > l.limits.Window {
		record = &attemptRecord{windowStart: now}
		l.attempts[key] = record
	}

	record.failures++
	if record.failures >= l.limits.MaxAttempts {
		record.lockedUntil = now.Add(l.limits.Lockout)
		return true, l.limits.Lockout
	}
	return false, 0
}

// RecordSuccess forgets earlier failures for the pair.
func (l *LoginLimiter) RecordSuccess(ip, correo string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	delete(l.attempts, limiterKey(ip, correo))
	l.mu.Unlock()
}

func (l *LoginLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.limits.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

// cleanup drops records whose window and lockout have both passed.
func (l *LoginLimiter) cleanup() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, record := range l.attempts {
		if now.Sub(record.windowStart) > l.limits.Window && !now.Before(record.lockedUntil) {
			delete(l.attempts, key)
		}
	}
}
