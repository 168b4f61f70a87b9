package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cyclegear/storefront/internal/auth"
	"github.com/cyclegear/storefront/internal/cart"
	"github.com/cyclegear/storefront/internal/catalog"
	"github.com/cyclegear/storefront/internal/config"
	"github.com/cyclegear/storefront/internal/handlers"
	"github.com/cyclegear/storefront/internal/httpserver"
	"github.com/cyclegear/storefront/internal/logging"
	loggingmw "github.com/cyclegear/storefront/internal/middleware/logging"
	"github.com/cyclegear/storefront/internal/notify"
	"github.com/cyclegear/storefront/internal/search"
	"github.com/cyclegear/storefront/internal/session"
)

func main() {
	configuration, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	sessions, err := session.Open(configuration.SessionDBPath)
	if err != nil {
		log.Fatalf("session store init failed: %v", err)
	}

	var events notify.Events = notify.Noop{}
	var producer *notify.Producer
	if len(configuration.KafkaBrokers) > 0 {
		producer, err = notify.NewProducer(
			configuration.KafkaBrokers,
			[]string{notify.TopicCartEvents, notify.TopicUserEvents},
		)
		if err != nil {
			log.Fatal(err)
		}
		events = producer
	} else {
		logger.Info("no kafka brokers configured, events disabled")
	}

	shopCatalog := catalog.New()

	searchHandler := &handlers.SearchHandler{Index: search.Index}
	if configuration.ES_URL != "" {
		esClient, err := search.NewClient(search.ClientConfig{
			URL:      configuration.ES_URL,
			User:     configuration.ES_USER,
			Password: configuration.ES_PASSWORD,
		})
		if err != nil {
			log.Fatal(err)
		}
		indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := search.IndexCatalog(indexCtx, esClient, search.Index, shopCatalog.Products()); err != nil {
			cancel()
			log.Fatalf("catalog indexing failed: %v", err)
		}
		cancel()
		searchHandler.ES = esClient
	} else {
		logger.Info("no elasticsearch configured, search disabled")
	}

	cartStore := cart.New(events)
	authStore := auth.New(auth.SeedDirectory(), sessions, events, configuration.AuthLatency)

	restoreCtx := logging.IntoContext(context.Background(), logger)
	authStore.Restore(restoreCtx)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler: &handlers.ProductHandler{Catalog: shopCatalog},
		CartHandler:    &handlers.CartHandler{Cart: cartStore, Catalog: shopCatalog},
		AuthHandler:    &handlers.AuthHandler{Auth: authStore},
		SearchHandler:  searchHandler,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", configuration.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := sessions.Close(); err != nil {
		log.Printf("session store close error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
