package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"
)

func newRateLimiter(t *testing.T, maxRequests, windowSecs int) (middleware.AppMiddleware, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache), mockCache
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	okHandler := http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	t.Run("request under the limit passes with the window expiry", func(t *testing.T) {
		limiter, mockCache := newRateLimiter(t, 5, 60)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(1, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)

		limiter.RateLimit(okHandler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "5", recorder.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "4", recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, "60", recorder.Header().Get(constant.RequestHeaderRateLimitWindow))
	})

	t.Run("request over the limit is rejected", func(t *testing.T) {
		limiter, mockCache := newRateLimiter(t, 2, 60)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(3, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)

		limiter.RateLimit(okHandler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		limiter, mockCache := newRateLimiter(t, 2, 60)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(0, errors.New("connection refused"))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)

		limiter.RateLimit(okHandler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("disabled limiter never touches the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		cfg := &config.Config{}

		limiter := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)

		limiter.RateLimit(okHandler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
