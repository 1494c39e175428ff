package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/mtgtrade/market-services/configs"
	"github.com/mtgtrade/market-services/internal/marketsvc/db"
	handlers "github.com/mtgtrade/market-services/internal/marketsvc/handlers"
	"github.com/mtgtrade/market-services/internal/marketsvc/service"
	"github.com/mtgtrade/market-services/internal/marketsvc/store"
	"github.com/mtgtrade/market-services/web"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "market"

var instanceId string

func init() {
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	userStore := store.NewUserStore(dbpool)
	userService := service.NewUserService(userStore)

	branchStore := store.NewBranchStore(dbpool)
	branchService := service.NewBranchService(branchStore)

	productStore := store.NewProductStore(dbpool)
	productService := service.NewProductService(productStore)

	deckStore := store.NewDeckStore(dbpool)
	deckService := service.NewDeckService(deckStore)

	txStore := store.NewTransactionStore(dbpool)
	txService := service.NewTransactionService(txStore)

	cardStore := store.NewCardStore(dbpool)
	cardService := service.NewCardService(cardStore)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(userService, branchService, productService,
		deckService, txService, cardService)
	h.SetRoutes(r)

	// static front-end; anything that is neither API nor asset gets the
	// not-found envelope instead of a plain text 404
	r.Handle("/*", staticHandler())

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("MARKET_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}

func staticHandler() http.Handler {
	fileServer := http.FileServer(http.FS(web.Static))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" {
			name = "index.html"
		}

		f, err := web.Static.Open(name)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "Ruta no encontrada",
			})
			return
		}
		f.Close()

		fileServer.ServeHTTP(w, r)
	})
}
