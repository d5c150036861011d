package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"laundry/cmd"
	httpadapter "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/eventrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer app.Close()

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                   goDotEnvVariable("HTTP_PORT"),
		DBHost:                     goDotEnvVariable("DB_HOST"),
		DBPort:                     goDotEnvVariable("DB_PORT"),
		DBUser:                     goDotEnvVariable("DB_USER"),
		DBPassword:                 goDotEnvVariable("DB_PASSWORD"),
		DBName:                     goDotEnvVariable("DB_NAME"),
		DBSslMode:                  goDotEnvVariable("DB_SSLMODE"),
		CatalogBaseURL:             goDotEnvVariable("CATALOG_BASE_URL"),
		KafkaHost:                  goDotEnvVariable("KAFKA_HOST"),
		KafkaStageEventsTopic:      goDotEnvVariable("KAFKA_STAGE_EVENTS_TOPIC"),
		KafkaPaymentRemindersTopic: goDotEnvVariable("KAFKA_PAYMENT_REMINDERS_TOPIC"),
		PaymentReminderThreshold:   reminderThreshold(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func reminderThreshold() time.Duration {
	raw := goDotEnvVariable("PAYMENT_REMINDER_THRESHOLD")
	if raw == "" {
		return 30 * time.Minute
	}

	threshold, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid PAYMENT_REMINDER_THRESHOLD: %v", err)
	}
	return threshold
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &eventrepo.StageEventDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetOrdersAwaitingPaymentQueryHandler(),
		app.ReminderPublisher(),
		configs.PaymentReminderThreshold,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSubmitOrderStageCommandHandler(),
		app.CreateSubmitProcessingStageCommandHandler(),
		app.CreateSubmitDeliveryStageCommandHandler(),
		app.CreateRecordWeightCommandHandler(),
		app.CreateSubmitPaymentProofCommandHandler(),
		app.CreateConfirmPaymentCommandHandler(),
		app.CreateGetOrderStateQueryHandler(),
		app.CreateGetOrderTimelineQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
