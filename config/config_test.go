package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"product-catalog-service/config"
)

func TestCreateNewConfig_Defaults(t *testing.T) {
	t.Setenv("SERVICE_PORT", "")
	t.Setenv("BASE_PATH", "")
	t.Setenv("DB_NAME", "")

	conf := config.CreateNewConfig()

	assert.Equal(t, "5000", conf.ServicePort)
	assert.Equal(t, "/api", conf.BasePath)
	assert.Equal(t, "product_catalog", conf.MongoDBConfig.DBName)
}

func TestCreateNewConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVICE_PORT", "8080")
	t.Setenv("BASE_PATH", "/api/v1")
	t.Setenv("DB_HOST", "mongo")
	t.Setenv("DB_PORT", "27017")
	t.Setenv("DB_NAME", "catalog_test")
	t.Setenv("BROKER_ADDRESS", "kafka:9092")
	t.Setenv("BROKER_TOPIC", "catalog-events")
	t.Setenv("BROKER_PARTITION", "2")

	conf := config.CreateNewConfig()

	assert.Equal(t, "8080", conf.ServicePort)
	assert.Equal(t, "/api/v1", conf.BasePath)
	assert.Equal(t, "mongo", conf.MongoDBConfig.DBHost)
	assert.Equal(t, "27017", conf.MongoDBConfig.DBPort)
	assert.Equal(t, "catalog_test", conf.MongoDBConfig.DBName)
	assert.Equal(t, "kafka:9092", conf.KafkaConfig.BrokerAddress)
	assert.Equal(t, "catalog-events", conf.KafkaConfig.BrokerTopic)
	assert.Equal(t, 2, conf.KafkaConfig.BrokerPartition)
}
