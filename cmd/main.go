package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	addToBasketHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/add_to_basket"
	clearBasketHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/clear_basket"
	getBasketHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/get_basket"
	getQuoteHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/get_quote"
	getSessionsHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/get_sessions"
	removeFromBasketHandler "github.com/m04kA/SMC-BayBooking/internal/api/handlers/remove_from_basket"
	"github.com/m04kA/SMC-BayBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BayBooking/internal/config"
	"github.com/m04kA/SMC-BayBooking/internal/infra/storage/kv"
	profileServiceClient "github.com/m04kA/SMC-BayBooking/internal/integrations/profileservice"
	slotServiceClient "github.com/m04kA/SMC-BayBooking/internal/integrations/slotservice"
	basketService "github.com/m04kA/SMC-BayBooking/internal/service/basket"
	"github.com/m04kA/SMC-BayBooking/internal/service/pricing"
	addToBasketUC "github.com/m04kA/SMC-BayBooking/internal/usecase/add_to_basket"
	getQuoteUC "github.com/m04kA/SMC-BayBooking/internal/usecase/get_quote"
	getSessionsUC "github.com/m04kA/SMC-BayBooking/internal/usecase/get_sessions"
	"github.com/m04kA/SMC-BayBooking/pkg/logger"
	"github.com/m04kA/SMC-BayBooking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BayBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// При выключенных метриках коллектор nil, его методы ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище корзин
	store, closeStore, err := newStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize basket storage: %v", err)
	}
	defer closeStore()

	// Инициализируем интеграционных клиентов
	slotClient := slotServiceClient.NewClient(
		cfg.SlotService.URL,
		time.Duration(cfg.SlotService.Timeout)*time.Second,
		log,
	)
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SlotService=%s timeout=%ds, ProfileService=%s timeout=%ds)",
		cfg.SlotService.URL, cfg.SlotService.Timeout, cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем сервисы
	location := cfg.Sessions.Location()
	rates, err := cfg.Pricing.Rates()
	if err != nil {
		log.Fatal("Invalid pricing config: %v", err)
	}
	pricingEngine := pricing.NewEngine(rates, location)

	var recorder basketService.OperationRecorder
	if metricsCollector != nil {
		recorder = metricsCollector
	}
	basketSvc := basketService.NewService(basketService.NewFactory(store, recorder, log))

	// Инициализируем use cases
	getSessionsUseCase := getSessionsUC.NewUseCase(
		slotClient,
		basketSvc,
		metricsCollector,
		getSessionsUC.Settings{
			Location:         location,
			Changeover:       cfg.Sessions.Changeover(),
			MaxSessionLength: cfg.Sessions.MaxSessionLength,
		},
		log,
	)
	addToBasketUseCase := addToBasketUC.NewUseCase(
		slotClient,
		basketSvc,
		addToBasketUC.Settings{
			Location:         location,
			Changeover:       cfg.Sessions.Changeover(),
			MaxSessionLength: cfg.Sessions.MaxSessionLength,
		},
		log,
	)
	getQuoteUseCase := getQuoteUC.NewUseCase(
		basketSvc,
		profileClient,
		pricingEngine,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getSessions := getSessionsHandler.NewHandler(getSessionsUseCase, location, log)
	getBasket := getBasketHandler.NewHandler(basketSvc, log)
	addToBasket := addToBasketHandler.NewHandler(addToBasketUseCase, location, log)
	removeFromBasket := removeFromBasketHandler.NewHandler(basketSvc, log)
	clearBasket := clearBasketHandler.NewHandler(basketSvc, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth)

	// Сессии на день с учётом корзины пользователя
	public.HandleFunc("/sessions", getSessions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Корзина ---
	protected.HandleFunc("/basket", getBasket.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/basket", clearBasket.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/basket/sessions", addToBasket.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/basket/sessions/{sessionId}", removeFromBasket.Handle).Methods(http.MethodDelete)

	// Расчёт стоимости корзины
	protected.HandleFunc("/basket/quote", getQuote.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// newStore создает хранилище корзин по настройке storage.backend
// Возвращаемая функция закрывает соединения хранилища
func newStore(cfg *config.Config, log *logger.Logger) (basketService.KeyValueStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := kv.NewFileStore(cfg.Storage.FileDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Basket storage: files in %s", cfg.Storage.FileDir)
		return store, func() {}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}

		log.Info("Basket storage: redis at %s (db=%d, ttl=%dh)", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.TTLHours)
		store := kv.NewRedisStore(client, "bays", time.Duration(cfg.Redis.TTLHours)*time.Hour)
		return store, func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}

		log.Info("Basket storage: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return kv.NewPostgresStore(db), func() { _ = db.Close() }, nil

	default:
		log.Warn("Basket storage: in-memory, baskets are lost on restart")
		return kv.NewMemoryStore(), func() {}, nil
	}
}
