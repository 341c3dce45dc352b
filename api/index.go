package handler

import (
	"dashboard/config"
	"dashboard/di"
	"dashboard/shared/logger"
	"net/http"
	"sync"

	dashboardHTTP "dashboard/transport/http"
)

var (
	server *dashboardHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint; the stack is built on the first invocation and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
