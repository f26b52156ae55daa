package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/kafka"
	"dispatch/internal/adapters/out/oracle"
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/productrepo"
	"dispatch/internal/adapters/out/postgres/storerepo"
	redisout "dispatch/internal/adapters/out/redis"
	"dispatch/internal/core/ports"

	goredis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	gormDB := mustOpenDB(config)
	mustMigrate(gormDB)

	oracleClient := buildOracle(config, logger)
	publisher := buildPublisher(config, logger)
	cache := buildCache(config, logger)

	root := cmd.NewCompositionRoot(config, gormDB, oracleClient, publisher, cache, logger)

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		OracleURL:               goDotEnvVariable("ORACLE_URL"),
		OracleTimeout:           goDotEnvVariable("ORACLE_TIMEOUT"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusTopic:   goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		AllowImpersonatedWrites: goDotEnvVariable("IMPERSONATED_WRITES") == "true",
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
		&storerepo.StoreDTO{},
		&productrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func buildOracle(config cmd.Config, logger *slog.Logger) ports.DispatchOracle {
	if config.OracleURL == "" {
		logger.Warn("Oracle URL not configured, oracle features disabled")
		return nil
	}

	timeout, err := time.ParseDuration(config.OracleTimeout)
	if err != nil {
		timeout = 0
	}

	client, err := oracle.NewClient(config.OracleURL, timeout)
	if err != nil {
		log.Fatalf("Failed to create oracle client: %v", err)
	}
	return client
}

func buildPublisher(config cmd.Config, logger *slog.Logger) ports.EventPublisher {
	if config.KafkaHost == "" {
		logger.Warn("Kafka host not configured, order status events disabled")
		return nil
	}

	topic := config.KafkaOrderStatusTopic
	if topic == "" {
		topic = "order-status"
	}

	publisher, err := kafka.NewOrderStatusPublisher([]string{config.KafkaHost}, topic)
	if err != nil {
		log.Fatalf("Failed to create kafka publisher: %v", err)
	}
	return publisher
}

func buildCache(config cmd.Config, logger *slog.Logger) ports.RoutePlanCache {
	if config.RedisAddr == "" {
		logger.Warn("Redis address not configured, route plan cache disabled")
		return nil
	}

	client := goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})

	cache, err := redisout.NewRoutePlanCache(client, 0)
	if err != nil {
		log.Fatalf("Failed to create route plan cache: %v", err)
	}
	return cache
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	handlers, err := root.CreateServerHandlers()
	if err != nil {
		log.Fatalf("Failed to build server handlers: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	httpin.NewServer(handlers, root.Policy()).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
