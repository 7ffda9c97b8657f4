package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/shared"
	"bistro/shared/constant"
	"bistro/shared/failure"
	"bistro/transport/http/response"
)

// Auth identifies the caller. Guests reach the public reservation routes; staff present the
// configured API key.
type Auth interface {
	// APIKey marks the request as staff when X-API-Key matches and as guest when it is absent.
	APIKey(http.Handler) http.Handler
	// RequireStaff rejects every caller APIKey did not mark as staff.
	RequireStaff(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == constant.Empty {
			scope.SetAttribute("http.source", constant.ContextGuest)
			scope.End()

			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, constant.ContextKeyActor, constant.ContextGuest)))

			return
		}

		scope.SetAttribute("http.source", constant.ContextStaff)

		expected := m.cfg.App.APIKey
		if expected == constant.Empty || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError

			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, constant.ContextKeyActor, constant.ContextStaff)))
	})
}

func (m *authImpl) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "staff.middleware")
		defer scope.End()

		if shared.ActorFromContext(ctx) != constant.ContextStaff {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"reason": "staff_only",
			})

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
