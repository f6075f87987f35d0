package main

import (
	"fmt"
	"log/slog"
	"os"

	"workshop/cmd"
	adapterhttp "workshop/internal/adapters/in/http"
	"workshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateGetOverdueCandidatesQueryHandler(),
		app.CreateChangeFinancialStatusCommandHandler(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := adapterhttp.NewServer(
		app.CreateCreateServiceOrderCommandHandler(),
		app.CreateUpdateServiceOrderCommandHandler(),
		app.CreateDeleteServiceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateChangeFinancialStatusCommandHandler(),
		app.CreateSetOrderNumberSequenceCommandHandler(),
		app.CreateGetServiceOrderQueryHandler(),
		app.CreateGetServiceOrderByNumberQueryHandler(),
		app.CreateListServiceOrdersQueryHandler(),
		app.CreateSearchServiceOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
