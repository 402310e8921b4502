package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhandlers "github.com/mediadesk/taqrir/pkg/handlers/auth"
	reporthandlers "github.com/mediadesk/taqrir/pkg/handlers/report"
	taqrirmiddleware "github.com/mediadesk/taqrir/pkg/server/middleware"
	authservice "github.com/mediadesk/taqrir/pkg/services/auth"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	reportstore "github.com/mediadesk/taqrir/pkg/store/duckdb/report"
	userstore "github.com/mediadesk/taqrir/pkg/store/duckdb/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Editor      *editor.Editor
	Auth        *authservice.Service
	Reports     reportstore.Store
	Users       userstore.Store
	Calculator  *followers.Calculator
	HTML        *export.HTMLRenderer
	PDFExporter *export.PDFExporter
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter builds the API mux without binding a listener.
func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	deps := config.Dependencies
	reportHandler := reporthandlers.NewHandler(
		deps.Editor, deps.Reports, deps.Calculator, deps.HTML, deps.PDFExporter,
	)
	authHandler := authhandlers.NewHandler(deps.Auth, deps.Users)

	router := chi.NewRouter()

	router.Use(taqrirmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.Middleware)

			r.Route("/report", func(r chi.Router) {
				r.Get("/", reportHandler.GetDocument)
				r.Get("/settings", reportHandler.GetSettings)
				r.Patch("/settings", reportHandler.MergeSettings)
				r.Put("/header", reportHandler.UpdateHeader)
				r.Put("/footer", reportHandler.UpdateFooter)

				r.Post("/sections", reportHandler.AddSection)
				r.Put("/sections/order", reportHandler.UpdateSectionsOrder)
				r.Route("/sections/{sectionID}", func(r chi.Router) {
					r.Delete("/", reportHandler.RemoveSection)
					r.Put("/title", reportHandler.UpdateSectionTitle)
					r.Post("/visibility", reportHandler.ToggleSectionVisibility)

					r.Post("/kpis", reportHandler.AddKPI)
					r.Put("/kpis/{kpiID}", reportHandler.UpdateKPI)
					r.Delete("/kpis/{kpiID}", reportHandler.RemoveKPI)

					r.Post("/tables", reportHandler.AddTable)
					r.Route("/tables/{tableID}", func(r chi.Router) {
						r.Put("/", reportHandler.UpdateTable)
						r.Put("/cell", reportHandler.UpdateTableCell)
						r.Post("/rows", reportHandler.AddTableRow)
						r.Delete("/rows/{rowID}", reportHandler.RemoveTableRow)
						r.Post("/columns", reportHandler.AddTableColumn)
						r.Post("/columns/{columnID}/visibility", reportHandler.ToggleColumnVisibility)
					})

					r.Post("/platforms", reportHandler.AddPlatformCard)
					r.Put("/platforms/{cardID}", reportHandler.UpdatePlatformCard)
					r.Delete("/platforms/{cardID}", reportHandler.RemovePlatformCard)

					r.Post("/notes", reportHandler.AddNoteGroup)
					r.Put("/notes/{noteID}", reportHandler.UpdateNoteGroup)
					r.Post("/notes/{noteID}/items", reportHandler.AddNoteItem)
					r.Put("/notes/{noteID}/items", reportHandler.UpdateNoteItem)
					r.Delete("/notes/{noteID}/items", reportHandler.RemoveNoteItem)

					r.Post("/contents", reportHandler.AddContentCard)
					r.Put("/contents/{cardID}", reportHandler.UpdateContentCard)
					r.Delete("/contents/{cardID}", reportHandler.RemoveContentCard)

					r.Post("/evaluations", reportHandler.AddEvaluation)
					r.Put("/evaluations/{evalID}", reportHandler.UpdateEvaluation)
					r.Delete("/evaluations/{evalID}", reportHandler.RemoveEvaluation)
				})

				r.Get("/followers", reportHandler.GetFollowerSummary)
				r.Get("/export/json", reportHandler.ExportJSON)
				r.Get("/export/word", reportHandler.ExportWord)
				r.Get("/export/pdf", reportHandler.ExportPDF)
				r.Post("/import", reportHandler.Import)
				r.Post("/save", reportHandler.SaveState)
				r.Post("/reset", reportHandler.Reset)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", reportHandler.SaveReport)
				r.Get("/", reportHandler.ListReports)
				r.Get("/{reportID}", reportHandler.GetReport)
				r.Post("/{reportID}/load", reportHandler.LoadReport)
				r.Put("/{reportID}", reportHandler.UpdateReport)
				r.Delete("/{reportID}", reportHandler.DeleteReport)
			})

			r.Group(func(r chi.Router) {
				r.Use(authservice.RequireAdmin)
				r.Get("/users", authHandler.ListUsers)
				r.Put("/users/{userID}/role", authHandler.UpdateRole)
				r.Delete("/users/{userID}", authHandler.DeleteUser)
			})
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)
	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
