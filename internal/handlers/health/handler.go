package health

import (
	"context"
	"net/http"
	"time"

	"bistro/infras/postgres"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *postgres.Connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db    Pinger
	cache goRedis.UniversalClient
}

func New(db *postgres.Connection, cache *goRedis.Client) Handler {
	return NewWithPingers(db, cache)
}

func NewWithPingers(db Pinger, cache goRedis.UniversalClient) Handler {
	return Handler{
		db:    db,
		cache: cache,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

type Status struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health reports whether the database and cache answer.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[health.Status]
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status := Status{Database: "up", Cache: "up"}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("database ping failed")

		status.Database = "down"
		healthy = false
	}

	if err := h.cache.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis ping failed")

		status.Cache = "down"
		healthy = false
	}

	if !healthy {
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, status)
}
