package router

import (
	"database/sql"
	"fmt"
	"net/http"

	_ "child-validations/docs"
	mem "child-validations/internal/adapters/storage/memory"
	pg "child-validations/internal/adapters/storage/postgres"
	"child-validations/internal/domain/actionitems"
	"child-validations/internal/domain/formvalidation"
	"child-validations/internal/domain/forms"
	"child-validations/internal/domain/subjects"
	"child-validations/internal/middleware"
	"child-validations/internal/platform/logger"
	"child-validations/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Logger       logger.Logger

	// Opcional: si viene, usa Postgres con las tablas de Tables (default DefaultTables).
	DB     *sql.DB
	Tables *pg.Tables

	// Opcional: stores ya armados (tests, datos sembrados). Tienen prioridad sobre DB.
	Subjects    subjects.Store
	ActionItems actionitems.Repository
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store, items, err := resolveStores(opts)
	if err != nil {
		return nil, err
	}

	// site_action_items: el offstudy del niño guarda sus action items en items
	actions := actionitems.NewRegistry()
	if err := actions.Register(actionitems.NewAction(actionitems.ChildOffStudyAction, items)); err != nil {
		return nil, err
	}

	validator := formvalidation.New(formvalidation.Config{
		InfantBirths:    store.Births(),
		Consents:        store.Consents(),
		ConsentVersions: store.ConsentVersions(),
		Offstudies:      store.Offstudies(),
		Actions:         actions,
		Logger:          log,
	})
	formsSvc := forms.NewService(forms.NewRegistry(validator), validator, store.Visits(), log)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	forms.RegisterRoutes(r, formsSvc)

	return r, nil
}

func resolveStores(opts Options) (subjects.Store, actionitems.Repository, error) {
	store := opts.Subjects
	items := opts.ActionItems

	if opts.DB != nil {
		tables := pg.DefaultTables()
		if opts.Tables != nil {
			tables = *opts.Tables
		}
		if store == nil {
			s, err := pg.NewSubjectsStore(opts.DB, tables)
			if err != nil {
				return nil, nil, fmt.Errorf("postgres subjects store: %w", err)
			}
			store = s
		}
		if items == nil {
			a, err := pg.NewActionItemsRepo(opts.DB, tables)
			if err != nil {
				return nil, nil, fmt.Errorf("postgres action items repo: %w", err)
			}
			items = a
		}
	}

	// Sin DB: in-memory (vacío)
	if store == nil {
		store = mem.NewSubjectsStore()
	}
	if items == nil {
		items = mem.NewActionItemsRepo()
	}
	return store, items, nil
}
