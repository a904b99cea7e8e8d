package router

import (
	"database/sql"
	"net/http"

	_ "kitty-registry/docs"
	"kitty-registry/internal/adapters/entropy"
	memledger "kitty-registry/internal/adapters/ledger/memory"
	bdg "kitty-registry/internal/adapters/storage/badger"
	mem "kitty-registry/internal/adapters/storage/memory"
	pg "kitty-registry/internal/adapters/storage/postgres"
	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/middleware"
	"kitty-registry/internal/platform/logger"
	"kitty-registry/internal/platform/metrics"
	"kitty-registry/internal/ports/auth"
	entropyport "kitty-registry/internal/ports/entropy"
	"kitty-registry/internal/ports/ledger"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Verifier auth.Verifier // puede ser nil (modo dev)

	// Storage: DB tiene prioridad sobre Badger. Sin ninguno, in-memory.
	DB     *sql.DB
	Badger *badger.DB

	// Nil = ledger en memoria sin saldo.
	Ledger ledger.StakeLedger
	// Nil = crypto/rand.
	Entropy entropyport.Source

	// Zero value = kitties.DefaultConfig().
	Kitties kitties.Config

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.Identity(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		kittyRepo kitties.Repository
		eventRepo events.Repository
	)
	switch {
	case opts.DB != nil:
		kittyRepo = pg.NewKittiesRepo(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	case opts.Badger != nil:
		kittyRepo = bdg.NewKittiesRepo(opts.Badger)
		eventRepo = bdg.NewEventsRepo(opts.Badger)
	default:
		kittyRepo = mem.NewKittiesRepo()
		eventRepo = mem.NewEventRepo()
	}

	stakes := opts.Ledger
	if stakes == nil {
		stakes = memledger.NewLedger()
	}
	seeds := opts.Entropy
	if seeds == nil {
		seeds = entropy.NewCryptoSource()
	}
	cfg := opts.Kitties
	if cfg == (kitties.Config{}) {
		cfg = kitties.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	// Services por módulo
	eventsSvc := events.NewService(eventRepo)
	kittiesSvc := kitties.NewService(kittyRepo, stakes, seeds, cfg).
		WithEventSink(eventsSvc).
		WithLogger(log)

	// Rutas por módulo
	kitties.RegisterRoutes(r, kittiesSvc)
	events.RegisterRoutes(r, eventsSvc, kittiesSvc)

	return r
}
