package main // Entry point package

import (
	"context"   // shutdown and consumer lifetimes
	"errors"    // distinguishes a normal server close
	"net/http"  // http.ErrServerClosed
	"os"        // signal handling
	"os/signal" // stop on SIGINT/SIGTERM
	"syscall"   // SIGTERM
	"time"      // shutdown timeout and sweep interval

	"github.com/labstack/echo/v4"                  // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's recover middleware
	"github.com/rs/zerolog/log"                     // structured logging

	"github.com/iliyamo/hotel-booking-web/internal/apiclient"     // REST backend client
	"github.com/iliyamo/hotel-booking-web/internal/auth"          // session auth state
	"github.com/iliyamo/hotel-booking-web/internal/config"        // environment config
	"github.com/iliyamo/hotel-booking-web/internal/handler"       // page handlers
	"github.com/iliyamo/hotel-booking-web/internal/middleware"    // session, csrf, rate limit
	"github.com/iliyamo/hotel-booking-web/internal/observability" // logger setup
	"github.com/iliyamo/hotel-booking-web/internal/queue"         // activity events
	"github.com/iliyamo/hotel-booking-web/internal/router"        // route registration
	"github.com/iliyamo/hotel-booking-web/internal/view"          // templates and i18n
)

func main() {
	cfg := config.Load()                               // Load environment config
	observability.InitLogger(cfg.ServiceName, cfg.Env) // Configure zerolog

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional: without it sessions live in memory and the read
	// cache and rate limiter are off.
	rdb := config.NewRedisClient()
	var storage auth.Storage
	var memory *auth.MemoryStorage // swept below; Redis expires keys itself
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
		storage = auth.NewRedisStorage(rdb, "hotelweb:session", cfg.SessionTTL())
	} else {
		memory = auth.NewMemoryStorage(cfg.SessionTTL())
		storage = memory
	}

	notifier := auth.NewNotifier()            // fans login/logout out to listeners
	nav := view.NewNavigation(notifier)       // navigation bar per session
	spaces := handler.NewWorkspaces(notifier) // booking guard, console, confirmation
	defer nav.Close()
	defer spaces.Close()

	api := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithReadCache(apiclient.NewReadCache(config.LoadCacheConfig(), rdb)),
	)

	qcfg := config.LoadQueueConfig()
	publisher := queue.NewPublisher(qcfg)
	if qcfg.Enabled && qcfg.StartConsumer {
		go func() {
			if err := queue.StartActivityConsumer(ctx, qcfg); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("activity consumer stopped")
			}
		}()
	}

	tr := view.NewTranslator(cfg.Locale)
	renderer, err := view.NewRenderer(tr)
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}

	h := handler.New(handler.Deps{
		API:        api,
		Navigation: nav,
		Translator: tr,
		Workspaces: spaces,
		Publisher:  publisher,
	})

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Session(storage, notifier, middleware.SessionConfig{Secure: cfg.CookieSecure, TTL: cfg.SessionTTL()}))
	e.Use(middleware.TokenExpiry(time.Now))
	e.Use(middleware.CSRF(cfg.SessionSecret, cfg.CookieSecure))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterAll(e, h) // Register application routes

	// Drop per-session state of sessions that went quiet or expired.
	go func() {
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				ws, nv := spaces.Sweep(cfg.SessionTTL()), nav.Sweep(cfg.SessionTTL())
				st := 0
				if memory != nil {
					st = memory.Sweep()
				}
				if ws+nv+st > 0 {
					log.Debug().Int("workspaces", ws).Int("nav", nv).Int("sessions", st).Msg("swept idle session state")
				}
			}
		}
	}()

	addr := ":" + cfg.Port // Address string with port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("backend", cfg.APIBaseURL).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
