package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ignatzorin/proposal-desk/internal/app"
	"github.com/ignatzorin/proposal-desk/internal/catalog"
	"github.com/ignatzorin/proposal-desk/internal/config"
	"github.com/ignatzorin/proposal-desk/internal/domain/entity"
	"github.com/ignatzorin/proposal-desk/internal/domain/valueobject"
	"github.com/ignatzorin/proposal-desk/internal/logger"
)

// Заполняются при сборке через -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const appName = "proposal-desk"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Proposal management dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	})

	var catalogPath string
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate and print the service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := catalog.Default()
			if catalogPath != "" {
				loaded, err := catalog.LoadFile(catalogPath)
				if err != nil {
					return err
				}
				categories = loaded
			}
			printCatalog(cmd.OutOrStdout(), categories)
			return nil
		},
	}
	catalogCmd.Flags().StringVarP(&catalogPath, "file", "f", os.Getenv("CATALOG_PATH"), "Catalog YAML file (embedded catalog when empty)")
	cmd.AddCommand(catalogCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func serve() error {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("main: ошибка загрузки конфигурации: %w", err)
	}

	logger.Init(cfg.LogLevel, cfg.Env)
	logger.Log.WithFields(logrus.Fields{
		"env":     cfg.Env,
		"version": Version,
	}).Info("main: запуск")

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("main: ошибка инициализации: %w", err)
	}

	return application.Run(ctx)
}

func printCatalog(w io.Writer, categories []entity.ServiceCategory) {
	for _, c := range categories {
		fmt.Fprintf(w, "%s\n", c.Name)
		for _, s := range c.Services {
			timeline := s.Timeline
			if timeline == "" {
				timeline = "Custom"
			}
			custom := ""
			if s.Customizable {
				custom = " *"
			}
			fmt.Fprintf(w, "  %-28s %-36s %14s  %s%s\n", s.ID, s.Name, valueobject.FormatCurrency(s.Price, "USD"), timeline, custom)
		}
	}
	fmt.Fprintf(w, "\n%d services in %d categories (* customizable)\n", app.ServiceCount(categories), len(categories))
}
