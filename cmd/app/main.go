package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ricemarket/cmd"
	httpadapter "ricemarket/internal/adapters/in/http"
	"ricemarket/internal/adapters/out/postgres/notificationrepo"
	"ricemarket/internal/adapters/out/postgres/orderrepo"
	"ricemarket/internal/adapters/out/postgres/producerrepo"
	"ricemarket/internal/adapters/out/postgres/productrepo"
	"ricemarket/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, nil)

	jobManager := jobs.NewJobManager(
		app.CreateRemindPendingOrdersCommandHandler(),
		configs.ReminderSchedule,
		reminderAge(configs),
		nil,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	err := startWebServer(app, configs.HTTPPort)
	jobManager.StopAll()
	if err != nil {
		log.Fatalf("Web server stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		ReminderSchedule: goDotEnvVariable("REMINDER_SCHEDULE"),
		ReminderAgeHours: goDotEnvVariable("REMINDER_AGE_HOURS"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&producerrepo.ProducerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func reminderAge(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.ReminderAgeHours)
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func startWebServer(app cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateMarkNotificationsReadCommandHandler(),
		app.CreateDeleteNotificationCommandHandler(),
		app.CreateGetProductsQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetNotificationsQueryHandler(),
	)
	server.RegisterRoutes(e)

	return e.Start(fmt.Sprintf("0.0.0.0:%s", port))
}
