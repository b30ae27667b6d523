package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hairpalace.org/store-web/internal/cart"
	"hairpalace.org/store-web/internal/checkout"
	"hairpalace.org/store-web/internal/config"
	"hairpalace.org/store-web/internal/content"
	"hairpalace.org/store-web/internal/logging"
	mw "hairpalace.org/store-web/internal/middleware"
	"hairpalace.org/store-web/internal/storeapi"
)

// Shared application state, wired in main and overridden in tests.
var (
	cfg          config.Config
	log          zerolog.Logger
	apiClient    *storeapi.Client
	cartManager  *cart.Manager
	submitter    *checkout.Submitter
	contentStore *content.Store

	templatesDir = "templates"
	publicDir    = "public"
	devMode      bool
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		bootLog := logging.New(logging.Options{Service: "store-web"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log = logging.New(logging.Options{
		Service: "store-web",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir
	devMode = cfg.DevMode

	mw.ConfigureSession(cfg.SessionSigningKey, cfg.IsProd())

	apiClient = storeapi.NewClient(cfg.APIBaseURL, storeapi.WithTimeout(cfg.APITimeout))
	cartManager = cart.NewManager(apiClient, cfg.CartIdleTTL)
	submitter = checkout.NewSubmitter(apiClient)
	contentStore = content.NewStore(cfg.ContentDir, 5*time.Minute)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatal().Err(err).Msg("parse templates")
		}
		tmplCache = tc
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", cfg.Addr).Bool("dev", devMode).Msg("store-web listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("listen")
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind a trusted reverse proxy, RealIP derives the client IP from
	// X-Forwarded-For; ensure only trusted proxies can set these headers.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(publicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)

	r.Get("/products", ProductsHandler)
	r.Get("/products/page", ProductsPageFrag)
	r.Get("/products/{slug}", ProductDetailHandler)

	r.Get("/categories", CategoriesHandler)
	r.Get("/categories/{slug}", CategoryDetailHandler)

	r.Get("/cart", CartHandler)
	r.Post("/cart/items", CartAddHandler)
	r.Post("/cart/items/{variantID}/update", CartUpdateHandler)
	r.Post("/cart/items/{variantID}/remove", CartRemoveHandler)

	r.Get("/checkout", CheckoutHandler)
	r.Post("/checkout", CheckoutSubmitHandler)

	r.Get("/orders", OrdersHandler)

	r.Get("/pages/{slug}", ContentPageHandler)

	return r
}
