package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"pushreminder/internal/app"
	"pushreminder/internal/app/consumers"
	"pushreminder/internal/app/deps"
	"pushreminder/internal/app/services"
	"pushreminder/internal/config"
	"pushreminder/internal/db"
	"syscall"
	"time"

	dl "pushreminder/internal/core/domain/logging"
)

func main() {
	migrationsPath := flag.String("migrate", "", "apply DB migrations from the given directory before starting")
	flag.Parse()

	deps, shutdownDeps := deps.InitDeps()
	if *migrationsPath != "" {
		migrate(deps, *migrationsPath)
	}

	services := services.InitServices(deps)
	consumers.InitConsumers(deps, services)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func migrate(deps *deps.Deps, migrationsPath string) {
	if deps.Config.IdentityStore != config.IdentityStorePostgres {
		deps.Logger.Info(context.Background(), "Migrations are skipped for the configured identity store.")
		return
	}
	if err := db.Migrate(deps.Config.PostgresqlURL, migrationsPath); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply DB migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "DB migrations applied.", dl.Entry("path", migrationsPath))
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("identityStore", deps.Config.IdentityStore),
		dl.Entry("timezone", deps.Config.Location().String()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
