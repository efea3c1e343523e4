package services

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	appcontext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/agri-quest/agriquest_api/shared"
)

// RateLimitService enforces per-IP fixed windows backed by Redis so limits
// hold across replicas. A Redis failure fails open.
type RateLimitService struct {
	appcontext.DefaultService

	redisSvc *RedisService
	configs  map[string]rateLimitConfig
}

type rateLimitConfig struct {
	MaxRequests int
	WindowSize  time.Duration
	Message     string
}

const RATE_LIMIT_SVC = "rate_limit_svc"

const (
	LimitGeneral = "general"
	LimitUpload  = "upload"
	LimitAIScan  = "ai_scan"
)

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appcontext.Context) error {
	svc.configs = map[string]rateLimitConfig{
		LimitGeneral: {
			MaxRequests: 100,
			WindowSize:  15 * time.Minute,
			Message:     "Too many requests. Please slow down.",
		},
		LimitUpload: {
			MaxRequests: 10,
			WindowSize:  5 * time.Minute,
			Message:     "Too many uploads. Please try again in a few minutes.",
		},
		LimitAIScan: {
			MaxRequests: 5,
			WindowSize:  10 * time.Minute,
			Message:     "Crop analysis limit reached. Please try again later.",
		},
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// Middleware limits requests for the given endpoint type, keyed by client IP.
func (svc *RateLimitService) Middleware(endpointType string) fiber.Handler {
	config, ok := svc.configs[endpointType]
	if !ok {
		config = svc.configs[LimitGeneral]
	}

	return func(c *fiber.Ctx) error {
		allowed, remaining, resetAt, err := svc.isAllowed(getClientIP(c), endpointType, config)
		if err != nil {
			log.WithError(err).Warnf("rate limit check failed for %s", endpointType)
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !allowed {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter > 0 {
				c.Set("Retry-After", strconv.Itoa(retryAfter))
			}
			return shared.NewTooManyRequestsError(config.Message)
		}

		return c.Next()
	}
}

// isAllowed increments the fixed-window counter and reports whether this
// request fits. The window TTL is set on first hit only.
func (svc *RateLimitService) isAllowed(identifier, endpointType string, config rateLimitConfig) (bool, int, time.Time, error) {
	ctx := context.Background()
	key := fmt.Sprintf("ratelimit:%s:%s", endpointType, identifier)

	count, err := svc.redisSvc.Increment(ctx, key)
	if err != nil {
		return false, 0, time.Time{}, err
	}

	if count == 1 {
		if err := svc.redisSvc.Expire(ctx, key, config.WindowSize); err != nil {
			return false, 0, time.Time{}, err
		}
	}

	ttl, err := svc.redisSvc.TTL(ctx, key)
	if err != nil || ttl < 0 {
		ttl = config.WindowSize
	}
	resetAt := time.Now().Add(ttl)

	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return count <= int64(config.MaxRequests), remaining, resetAt, nil
}

// Shutdown the service
func (svc *RateLimitService) Shutdown() {
}

func getClientIP(c *fiber.Ctx) string {
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}
	return ip
}
