package handler

import (
	"net/http"
	"sync"

	"bistro/config"
	"bistro/di"
	"bistro/shared/logger"
	httpTransport "bistro/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless runtime; the container is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
