package router

import (
	"net/http"

	"patitas-eternas/internal/domain/applications"
	"patitas-eternas/internal/domain/images"
	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/domain/pets"
	"patitas-eternas/internal/domain/users"
	"patitas-eternas/internal/middleware"
	"patitas-eternas/internal/platform/logger"
	"patitas-eternas/internal/platform/metrics"
	"patitas-eternas/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene nil se usan repos in-memory.
	Backends *Backends

	Logger  logger.Logger    // nil => nop
	Metrics *metrics.Metrics // nil => registry nuevo

	// Rate limit de las rutas públicas de escritura. <= 0 lo desactiva.
	RatePerSecond float64
	Burst         int
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Backends == nil {
		opts.Backends = MemoryBackends()
	}
	b := opts.Backends

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)
	r.Use(opts.Metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	limit := middleware.NewRateLimiter(opts.RatePerSecond, opts.Burst).Handler

	// Services por módulo
	petsSvc := pets.NewService(b.Pets)
	applicationsSvc := applications.NewService(b.Applications, petsSvc, opts.Metrics)
	usersSvc := users.NewService(b.Users)
	paymentsSvc := payments.NewService(b.Payments, b.Gateway, opts.Metrics)
	imagesSvc := images.NewService(b.Images, opts.Metrics)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	applications.RegisterRoutes(r, applicationsSvc, limit)
	users.RegisterRoutes(r, usersSvc, limit)
	payments.RegisterRoutes(r, paymentsSvc, limit)
	images.RegisterRoutes(r, imagesSvc)

	return r
}
