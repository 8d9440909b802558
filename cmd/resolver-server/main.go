package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/brightline-data/resolver/internal/httpapi/handler"
	"github.com/brightline-data/resolver/internal/httpapi/middleware"
	"github.com/brightline-data/resolver/internal/resolve/config"
	"github.com/brightline-data/resolver/internal/resolve/engine"
)

func main() {
	// Create Zap logger.
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("main")

	// Enable strict JSON decoding (must be before binding happens).
	binding.EnableDecoderDisallowUnknownFields = true

	// The resolver engine: single-writer state machine for the
	// "individual" record kind, per the reference configuration.
	eng := engine.New(config.Individual, log)

	resolveHandler := handler.NewResolveHandler(eng)
	entityHandler := handler.NewEntityHandler(eng)
	statsHandler := handler.NewStatsHandler(eng)

	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})

	r.Use(gin.Recovery()) // Recovery first (outermost).

	// Security headers.
	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	}))

	// CORS (dev only).
	if os.Getenv("ENV") == "dev" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.InvariantRecovery(log))
	r.Use(middleware.CapConcurrentRequests(256))
	r.Use(middleware.ZapLogger(log)) // Observability after that.

	r.POST("/resolve/individual", resolveHandler.ResolveIndividual)
	r.GET("/entity/:id", entityHandler.GetEntity)
	r.GET("/stats", statsHandler.Stats)

	httpserver := &http.Server{
		Addr:    "127.0.0.1:8080",
		Handler: r,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,

		MaxHeaderBytes: 1 << 15,

		ErrorLog: zap.NewStdLog(log.Named("http").WithOptions(zap.AddCallerSkip(1))),
	}

	log.Info("running HTTP server on 127.0.0.1:8080")
	if err := httpserver.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server failed", zap.Error(err))
	}
}
