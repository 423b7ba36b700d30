package httpserver

import (
	"context"

	"intentions-tracker/internal/middleware"
	"intentions-tracker/internal/model"
	trackerHTTP "intentions-tracker/internal/tracker/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l)

	srv.gin.Use(mw.Recovery())
	srv.gin.Use(mw.RequestLogger())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(context.Background(), "Running in production mode")
	}

	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	h := trackerHTTP.New(srv.l, srv.trackerUC)
	trackerHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Tracker domain registered")
}
