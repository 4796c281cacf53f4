package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Daskott/coastal-alert/server/alerting"
	"github.com/Daskott/coastal-alert/server/auth/key"
	"github.com/Daskott/coastal-alert/server/cron"
	"github.com/Daskott/coastal-alert/server/events"
	"github.com/Daskott/coastal-alert/server/logger"
	"github.com/Daskott/coastal-alert/server/models"
	"github.com/Daskott/coastal-alert/server/notifier"
	"github.com/Daskott/coastal-alert/shared"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	logg = logger.NewLogger()

	serverConfig *shared.ServerConfig
	authKeyPair  *key.KeyPair
	gateway      *notifier.Gateway
	publisher    events.Publisher
	evaluator    *alerting.Evaluator
)

func Start(config *shared.ServerConfig, devMode bool) {
	if devMode {
		logg.Info("Running in development mode")
	}

	fatalOnError(initialize(config, devMode))

	scheduler := cron.NewCronScheduler(config.Coastal.Cron.TimeZone)
	fatalOnError(scheduleJobs(scheduler, config))
	scheduler.StartAsync()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", config.Coastal.Listener.Port),
		Handler: newRouter(config.Coastal.RequireAuth),
	}

	go serve(server)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	cleanup(scheduler, server)
}

func newRouter(requireAuth bool) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	appRouter := router.NewRoute().Subrouter()
	appRouter.Use(initialContextMiddleware)
	appRouter.HandleFunc("/", index).Methods(http.MethodGet)

	apiRouter := appRouter.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/health", health).Methods(http.MethodGet)
	apiRouter.HandleFunc("/thresholds", listThresholds).Methods(http.MethodGet)
	apiRouter.HandleFunc("/stats", getStats).Methods(http.MethodGet)

	authRouter := apiRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/login", logIn).Methods(http.MethodPost)
	authRouter.HandleFunc("/jwks", jwks).Methods(http.MethodGet)
	authRouter.Handle("/me", protectedRouteMiddleware(http.HandlerFunc(currentUser))).Methods(http.MethodGet)
	authRouter.Handle("/signup", adminRouteMiddleware(http.HandlerFunc(signUp))).Methods(http.MethodPost)

	contactRouter := apiRouter.PathPrefix("/contacts").Subrouter()
	contactRouter.HandleFunc("", listContacts).Methods(http.MethodGet)
	contactRouter.HandleFunc("", createContact).Methods(http.MethodPost)
	contactRouter.HandleFunc("/{id:[0-9]+}", findContact).Methods(http.MethodGet)
	contactRouter.HandleFunc("/{id:[0-9]+}", updateContact).Methods(http.MethodPut)
	contactRouter.HandleFunc("/{id:[0-9]+}", deleteContact).Methods(http.MethodDelete)

	alertRouter := apiRouter.PathPrefix("/alerts").Subrouter()
	alertRouter.HandleFunc("", triggerAlert).Methods(http.MethodPost)
	alertRouter.HandleFunc("/logs", listAlertLogs).Methods(http.MethodGet)

	testRouter := apiRouter.PathPrefix("/test").Subrouter()
	testRouter.HandleFunc("/contacts", listSampleContacts).Methods(http.MethodGet)
	testRouter.HandleFunc("/alert", dryRunAlert).Methods(http.MethodPost)

	if requireAuth {
		contactRouter.Use(protectedRouteMiddleware)
		alertRouter.Use(protectedRouteMiddleware)
	}

	return router
}

// initialize opens the database and builds everything the handlers share.
func initialize(config *shared.ServerConfig, devMode bool) error {
	err := validate.Struct(config)
	if err != nil {
		return fmt.Errorf("invalid server config: %v", err)
	}

	if backupEnabled(config) {
		err = restoreSqliteDb(config)
		if err != nil {
			return err
		}
	}

	err = models.AutoMigrate(config.Database.URL, config.Database.PassPhrase)
	if err != nil {
		return err
	}

	authKeyPair, err = loadKeyPair(config.Coastal.PrivateKeyPem, devMode)
	if err != nil {
		return err
	}

	serverConfig = config
	gateway = notifier.NewGatewayFromConfig(config.Twilio, config.Smtp)
	publisher = events.NewPublisher(config.Kafka)
	evaluator = alerting.NewEvaluator(
		alerting.NewThresholds(config.Coastal.Thresholds),
		alerting.ModelStore{},
		alerting.ModelStore{},
		gateway,
		publisher,
	)

	return nil
}

func loadKeyPair(privateKeyPem string, devMode bool) (*key.KeyPair, error) {
	if privateKeyPem != "" {
		return key.NewKeyPairFromRSAPrivateKeyPem(privateKeyPem)
	}

	if !devMode {
		logg.Warn("coastal.privateKeyPem is not set, issued tokens will be invalid after a restart")
	}

	return key.GenerateKeyPair()
}
