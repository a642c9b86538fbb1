package main

import (
	"context"
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	segmentiokafka "github.com/segmentio/kafka-go"

	"product-catalog-service/config"
	"product-catalog-service/internal/controller"
	"product-catalog-service/internal/infrastructure/database/mongodb"
	"product-catalog-service/internal/infrastructure/messagequeue/kafka"
	"product-catalog-service/internal/infrastructure/tracing"
	"product-catalog-service/internal/middleware"
	"product-catalog-service/internal/repository"
	"product-catalog-service/internal/service"
	"product-catalog-service/pkg/response"
)

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	config := config.CreateNewConfig()

	if config.TracingConfig.CollectorHost != "" {
		tracerProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
		if err != nil {
			panic(err)
		}
		defer tracerProvider.Shutdown(context.Background())
	}

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	var kafkaProducer *segmentiokafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err = kafka.CreateKafkaProducer(config)
		if err != nil {
			panic(err)
		}
		defer kafkaProducer.Close()
	}

	e := echo.New()
	e.Use(middleware.Logger)
	g := e.Group(config.BasePath)

	productRepo := repository.CreateNewMongoDBProductRepository(db)
	commentRepo := repository.CreateNewMongoDBCommentRepository(db)
	svc := service.CreateCatalogService(productRepo, commentRepo, *config, kafkaProducer)
	controller.CreateCatalogController(g, svc)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteMessageResponse(c, "pong")
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", config.ServicePort)))
}
