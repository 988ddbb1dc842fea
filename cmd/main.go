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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	acceptSessionHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/accept_session"
	clearContextHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/clear_context"
	createSlotHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/delete_slot"
	getDashboardHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_dashboard"
	getPreferenceHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_preference"
	getPreferencesHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_preferences"
	getRejectionOptionsHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_rejection_options"
	getSessionsHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_sessions"
	getSlotsHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/get_slots"
	initContextHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/init_context"
	rejectSessionHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/reject_session"
	runMatchmakingHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/run_matchmaking"
	updatePreferenceHandler "github.com/squadsync/SquadSync-SessionService/internal/api/handlers/update_preference"
	"github.com/squadsync/SquadSync-SessionService/internal/api/middleware"
	"github.com/squadsync/SquadSync-SessionService/internal/config"
	preferencesRepo "github.com/squadsync/SquadSync-SessionService/internal/infra/storage/preferences"
	availabilityClient "github.com/squadsync/SquadSync-SessionService/internal/integrations/availability"
	matchmakingClient "github.com/squadsync/SquadSync-SessionService/internal/integrations/matchmaking"
	preferencesService "github.com/squadsync/SquadSync-SessionService/internal/service/preferences"
	availabilityStore "github.com/squadsync/SquadSync-SessionService/internal/store/availability"
	sessionsStore "github.com/squadsync/SquadSync-SessionService/internal/store/sessions"
	acceptSessionUC "github.com/squadsync/SquadSync-SessionService/internal/usecase/accept_session"
	classifySessionsUC "github.com/squadsync/SquadSync-SessionService/internal/usecase/classify_sessions"
	rejectSessionUC "github.com/squadsync/SquadSync-SessionService/internal/usecase/reject_session"
	resolveRejectionUC "github.com/squadsync/SquadSync-SessionService/internal/usecase/resolve_rejection"
	"github.com/squadsync/SquadSync-SessionService/internal/usercontext"
	"github.com/squadsync/SquadSync-SessionService/pkg/logger"
	"github.com/squadsync/SquadSync-SessionService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SquadSync-SessionService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище предпочтений)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	mmClient := matchmakingClient.NewClient(
		cfg.Matchmaking.URL,
		time.Duration(cfg.Matchmaking.Timeout)*time.Second,
		log,
	)
	availClient := availabilityClient.NewClient(
		cfg.Availability.URL,
		time.Duration(cfg.Availability.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Matchmaking=%s timeout=%ds, Availability=%s timeout=%ds)",
		cfg.Matchmaking.URL, cfg.Matchmaking.Timeout, cfg.Availability.URL, cfg.Availability.Timeout)

	// Инициализируем сторы
	sessStore := sessionsStore.NewStore(mmClient, log)
	availStore := availabilityStore.NewStore(availClient, log)

	// Инициализируем репозиторий и сервис предпочтений
	preferenceRepository := preferencesRepo.NewRepository(db)
	preferenceSvc := preferencesService.NewService(preferenceRepository, log)

	// Менеджер пользовательского контекста
	contextManager := usercontext.NewManager(sessStore, availStore, log)

	// Инициализируем use cases
	acceptSessionUseCase := acceptSessionUC.NewUseCase(sessStore, mmClient, log)
	rejectSessionUseCase := rejectSessionUC.NewUseCase(sessStore, availStore, mmClient, log)
	classifySessionsUseCase := classifySessionsUC.NewUseCase(sessStore, log)
	resolveRejectionUseCase := resolveRejectionUC.NewUseCase(sessStore, availStore, log)

	// Инициализируем handlers
	initContext := initContextHandler.NewHandler(contextManager, log)
	clearContext := clearContextHandler.NewHandler(contextManager, log)
	getDashboard := getDashboardHandler.NewHandler(classifySessionsUseCase, log)
	getSessions := getSessionsHandler.NewHandler(sessStore, log)
	acceptSession := acceptSessionHandler.NewHandler(acceptSessionUseCase, log)
	rejectSession := rejectSessionHandler.NewHandler(rejectSessionUseCase, log)
	getRejectionOptions := getRejectionOptionsHandler.NewHandler(resolveRejectionUseCase, log)
	getSlots := getSlotsHandler.NewHandler(availStore, log)
	createSlot := createSlotHandler.NewHandler(availStore, log)
	deleteSlot := deleteSlotHandler.NewHandler(availStore, log)
	getPreferences := getPreferencesHandler.NewHandler(preferenceSvc, log)
	getPreference := getPreferenceHandler.NewHandler(preferenceSvc, log)
	updatePreference := updatePreferenceHandler.NewHandler(preferenceSvc, log)
	runMatchmaking := runMatchmakingHandler.NewHandler(mmClient, sessStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix: все ручки требуют X-User-ID header
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Жизненный цикл контекста ---
	api.HandleFunc("/context", initContext.Handle).Methods(http.MethodPost)
	api.HandleFunc("/context", clearContext.Handle).Methods(http.MethodDelete)

	// --- Сессии ---
	// Главный экран: сессии, разложенные по корзинам отображения
	api.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Плоский список сессий пользователя
	api.HandleFunc("/sessions", getSessions.Handle).Methods(http.MethodGet)

	// Ответы на приглашения
	api.HandleFunc("/sessions/{sessionId}/accept", acceptSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reject", rejectSession.Handle).Methods(http.MethodPost)

	// Варианты причины отказа для диалога подтверждения
	api.HandleFunc("/sessions/{sessionId}/rejection-options", getRejectionOptions.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability", getSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", createSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Предпочтения по играм ---
	api.HandleFunc("/preferences", getPreferences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{gameId}", getPreference.Handle).Methods(http.MethodGet)
	api.HandleFunc("/preferences/{gameId}", updatePreference.Handle).Methods(http.MethodPut)

	// --- Матчмейкинг ---
	api.HandleFunc("/matchmaking/run", runMatchmaking.Handle).Methods(http.MethodPost)

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
