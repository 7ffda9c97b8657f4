package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/config"
	"bistro/infras/otel/mocks"
	"bistro/shared/cache"
	cacheMocks "bistro/shared/cache/mocks"
	"bistro/shared/constant"
	"bistro/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAppMiddleware_RateLimit(t *testing.T) {
	storeCount := func(count int) func(context.Context, string, any) error {
		return func(_ context.Context, _ string, value any) error {
			*value.(*int) = count

			return nil
		}
	}

	tests := []struct {
		name          string
		key           string
		setup         func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name: "first request opens a window",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "last allowed request",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(storeCount(2))
				c.EXPECT().Save(gomock.Any(), gomock.Any(), 3, 60).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "over the limit",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(storeCount(3))
			},
			wantCode: http.StatusTooManyRequests,
		},
		{
			name: "cache outage lets requests through",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "staff are not limited",
			key:      "s3cret",
			setup:    func(*cacheMocks.MockRedisCache) {},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			cfg := &config.Config{}
			cfg.App.APIKey = "s3cret"
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			auth := middleware.NewAuthMiddleware(mocks.NewOtel(), cfg)
			limiter := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache).RateLimit()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/tables/available", nil)
			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()
			auth.APIKey(limiter(next)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantRemaining != "" {
				assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
			}
		})
	}
}
