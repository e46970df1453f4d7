package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "animal-chip-registry/docs"
	mem "animal-chip-registry/internal/adapters/storage/memory"
	pg "animal-chip-registry/internal/adapters/storage/postgres"
	"animal-chip-registry/internal/domain/animals"
	"animal-chip-registry/internal/domain/animaltypes"
	"animal-chip-registry/internal/domain/locations"
	"animal-chip-registry/internal/middleware"
	"animal-chip-registry/internal/platform/logger"
	"animal-chip-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil = dev mode (X-Debug-User-ID)

	// Optional: with a DB, repos are Postgres; without, in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		animalsRepo   animals.Repository
		locationsRepo locations.Repository
		typesRepo     animaltypes.Repository
	)

	// Without an explicit DB, try env (dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		animalsRepo = pg.NewAnimalsRepo(db)
		locationsRepo = pg.NewLocationsRepo(db)
		typesRepo = pg.NewAnimalTypesRepo(db)
	} else {
		animalsRepo = mem.NewAnimalsRepo()
		locationsRepo = mem.NewLocationsRepo()
		typesRepo = mem.NewAnimalTypesRepo()
	}

	// One service per module
	animalsSvc := animals.NewService(animalsRepo)
	locationsSvc := locations.NewService(locationsRepo)
	typesSvc := animaltypes.NewService(typesRepo)

	// Routes per module
	locations.RegisterRoutes(r, locationsSvc)
	animaltypes.RegisterRoutes(r, typesSvc)
	animals.RegisterRoutes(r, animalsSvc, locationsSvc, typesSvc)

	return r
}
