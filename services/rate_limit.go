package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/emberholm-legacy/ember_api/shared"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RateLimitService throttles the mutation endpoints with redis counters.
// A failed redis lookup never blocks the request.
type RateLimitService struct {
	appContext.DefaultService

	redisSvc *RedisService

	configs map[string]*RateLimitConfig
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc, _ = svc.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()
	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.configs = map[string]*RateLimitConfig{
		// Mission execution is cooldown-gated anyway; this only stops
		// request floods.
		"mission_execute": {
			EndpointType: "mission_execute",
			MaxRequests:  30,
			WindowSize:   time.Minute,
			Description:  "Mission execution rate limit",
		},
		"spend_xp": {
			EndpointType: "spend_xp",
			MaxRequests:  30,
			WindowSize:   time.Minute,
			Description:  "XP-for-energy exchange rate limit",
		},
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  600,
			WindowSize:   time.Minute,
			Description:  "General API rate limit",
		},
	}
}

// RateLimit creates a rate limiting middleware for a specific endpoint type.
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		config, exists := svc.configs[endpointType]
		if !exists {
			return c.Next()
		}

		identifier := c.IP()
		key := fmt.Sprintf("ratelimit:%s:%s", endpointType, identifier)

		count, err := svc.redisSvc.IncrWithWindow(context.Background(), key, config.WindowSize)
		if err != nil {
			log.Printf("Rate limit check error for %s (%s): %v", endpointType, identifier, err)
			return c.Next()
		}

		remaining := config.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Limit", strconv.Itoa(config.MaxRequests))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > config.MaxRequests {
			return shared.NewTooManyRequestsError(nil, "Too many requests, slow down")
		}

		return c.Next()
	}
}

// IPRateLimit applies the general per-IP limit.
func (svc *RateLimitService) IPRateLimit() fiber.Handler {
	return svc.RateLimit("api_general")
}
