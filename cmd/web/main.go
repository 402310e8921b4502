package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/mediadesk/taqrir/pkg/server"
	"github.com/mediadesk/taqrir/pkg/services/auth"
	"github.com/mediadesk/taqrir/pkg/services/config"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	"github.com/mediadesk/taqrir/pkg/store/duckdb"
	reportstore "github.com/mediadesk/taqrir/pkg/store/duckdb/report"
	userstore "github.com/mediadesk/taqrir/pkg/store/duckdb/user"
	"github.com/mediadesk/taqrir/pkg/store/state"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the report builder API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional config file; environment variables take precedence")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	reports, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	users, err := userstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create user store: %w", err)
	}

	stateStore, err := state.NewFileStore(cfg.StateDir)
	if err != nil {
		return fmt.Errorf("failed to create state store: %w", err)
	}
	ed, err := editor.New(stateStore)
	if err != nil {
		return fmt.Errorf("failed to create report editor: %w", err)
	}

	authService, err := auth.NewService(users, auth.Config{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	htmlRenderer, err := export.NewHTMLRenderer()
	if err != nil {
		return fmt.Errorf("failed to create html renderer: %w", err)
	}
	pdfOpts := export.DefaultPDFOptions()
	pdfOpts.ChromePath = cfg.ChromePath
	pdfOpts.Headless = !cfg.ChromeShown
	pdfExporter := export.NewPDFExporter(htmlRenderer, pdfOpts)

	addr := net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Editor:      ed,
			Auth:        authService,
			Reports:     reports,
			Users:       users,
			Calculator:  followers.NewCalculator(followers.DefaultAliases()),
			HTML:        htmlRenderer,
			PDFExporter: pdfExporter,
		},
	})

	return api.Start()
}
