package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"belco/shopware-widget/internal/app/cart"
	"belco/shopware-widget/internal/app/channelconfig"
	"belco/shopware-widget/internal/app/events"
	"belco/shopware-widget/internal/app/footer"
	"belco/shopware-widget/internal/app/orders"
	"belco/shopware-widget/internal/app/seo"
	"belco/shopware-widget/internal/app/server"
	"belco/shopware-widget/internal/app/server/handlers"
	"belco/shopware-widget/internal/app/session"
	"belco/shopware-widget/internal/config"
	"belco/shopware-widget/internal/obs"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.NewConfig()
	logger := obs.NewLogger(cfg.Log.Level)

	ctx := context.Background()

	cacheOpts := redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Cache.Host, cfg.Cache.Port),
		Password:     cfg.Cache.Password,
		DB:           0,
		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: 2,
	}

	rdb := redis.NewClient(&cacheOpts)
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Error("Error connecting to cache", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("Error opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Stores
	configService := channelconfig.NewConfigService(rdb)
	cartStorage := cart.NewStorageService(rdb)
	sessionStorage := session.NewStorageService(rdb)
	orderStorage := orders.NewPostgresStorage(db)

	if cfg.Storefront.ChannelsFile != "" {
		channels, err := channelconfig.LoadFile(cfg.Storefront.ChannelsFile)
		if err != nil {
			logger.Error("Error loading channels file", "error", err)
			os.Exit(1)
		}

		if err := configService.Seed(ctx, channels); err != nil {
			logger.Error("Error seeding channel config", "error", err)
			os.Exit(1)
		}
		logger.Info("Seeded channel config", "channels", len(channels))
	}

	// Footer pipeline
	hook := footer.NewHook(
		configService,
		cartStorage,
		cart.NewSummarizer(seo.NewURLBuilder(cfg.Storefront.BaseURL)),
		orders.NewAggregator(orderStorage),
		logger,
	)
	dispatcher := events.NewDispatcher(hook)

	h := handlers.NewHandlers(cfg, rdb, sessionStorage, dispatcher, logger)
	srv := server.NewServer(cfg.Server.Port, h)

	logger.Info("Starting server", "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
