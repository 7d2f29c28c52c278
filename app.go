package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"api_clientes/src/config"
	"api_clientes/src/controllers"
	"api_clientes/src/db"
	"api_clientes/src/logger"
	"api_clientes/src/middleware"
	"api_clientes/src/models"
	"api_clientes/src/routes"
	"api_clientes/src/services"
	"api_clientes/src/utils"
)

const redisKeyPrefix = "api_clientes:"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("api", "info").Fatal().Err(err).Msg("configuración inválida")
	}
	log := logger.NewLogger("api", cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("la aplicación terminó con error")
	}
	log.Info().Msg("servidor detenido")
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, err := config.ConnectDB(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer config.DisconnectDB(context.Background(), mongoClient, log)

	store := db.NewClienteStore(config.GetCollection(mongoClient, cfg), cfg.RequestTimeout)
	if err := store.EnsureIndexes(ctx); err != nil {
		if !errors.Is(err, models.ErrIDDuplicado) {
			return err
		}
		log.Warn().Err(err).Msg("la colección tiene ids repetidos, se continúa sin índice único")
	}

	ids, err := utils.NewIDGenerator(cfg.IDStrategy)
	if err != nil {
		return err
	}
	if cfg.SeedClientes > 0 {
		if _, err := utils.SeedClientes(ctx, store, ids, cfg.SeedClientes, log); err != nil {
			return err
		}
	}

	checks := []controllers.HealthCheck{{
		Name: "mongodb",
		Ping: func(ctx context.Context) error { return config.PingDB(ctx, mongoClient) },
	}}

	var repo services.ClienteRepository = store
	if cfg.Redis.Enabled() {
		redisClient, err := utils.ConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("continuando sin caché")
		} else {
			defer redisClient.Close()
			cache := utils.NewRedisCache(redisClient, redisKeyPrefix)
			repo = services.NewCachedClienteRepository(store, cache, cfg.Redis.TTL, log)
			checks = append(checks, controllers.HealthCheck{Name: "redis", Ping: cache.Ping})
		}
	}

	cors, err := middleware.CORS(cfg.AllowedOrigins())
	if err != nil {
		return err
	}
	router := routes.NewRouter(
		log,
		cors,
		controllers.NewClienteController(repo, ids, log),
		controllers.NewHealthController(cfg.RequestTimeout, checks...),
	)

	return serve(ctx, cfg, log, &http.Server{Addr: cfg.Address(), Handler: router})
}

// serve atiende hasta que ctx se cancela y luego espera a que terminen las peticiones en curso.
func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("servidor HTTP escuchando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("señal recibida, cerrando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
