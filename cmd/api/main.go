package main

import (
	"context"
	"flag"
	"fmt"

	_ "geocache/docs"
	"geocache/internal/config"
	"geocache/internal/handler"
	"geocache/internal/logger"
	"geocache/internal/provider"
	"geocache/internal/repository"
	"geocache/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// version is set at build time
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print the version and exit")
	configPath := flag.String("config", "./configs", "directory containing app.env")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger.Setup(logger.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	log.Info().Str("version", version).Str("cache", cfg.CacheDriver).Msg("starting geocache")

	ctx := context.Background()

	// Cache store
	var repo service.ReverseGeoCodeRepository
	switch cfg.CacheDriver {
	case config.DriverRedis:
		client, err := repository.NewRedisConnection(ctx, repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to redis")
		}
		defer client.Close()
		repo = repository.NewRedisRepository(client)
	default:
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		pgRepo := repository.NewRepository(conn)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare geocode table")
		}
		repo = pgRepo
	}

	// Initialize layers
	provider.Version = version
	radar := provider.NewRadarClient(cfg.RadarBaseURL, cfg.RadarAPIKey, cfg.RadarTimeout)

	reverseGeocodeService := service.NewReverseGeoCodeService(repo, radar)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)

	gin.SetMode(cfg.GinMode)
	r := handler.NewRouter(reverseGeocodeHandler)

	log.Info().Str("address", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
