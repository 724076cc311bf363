package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is everything the loader needs to run, grouped by backing service.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Endee - vector database the loader writes into
	Endee EndeeConfig

	// Voyage - embeddings for records without vectors
	Voyage VoyageConfig

	// Redis - query cache invalidation
	Redis RedisConfig

	// Kafka - batch announcements in, dead letters out
	Kafka KafkaConfig

	// ObjStore - batch files
	ObjStore ObjStoreConfig
}

// EnvironmentConfig names the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// LoggerConfig mirrors what pkg/log.NewLogger accepts.
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EndeeConfig locates the Endee API. Timeout is in seconds so it reads
// naturally in yaml.
type EndeeConfig struct {
	BaseURL string
	APIKey  string
	Timeout int
	Retries int
}

// VoyageConfig carries the embeddings credentials. Model falls back to the
// pkg/voyage default when empty.
type VoyageConfig struct {
	APIKey string
	Model  string
}

// RedisConfig locates the Redis behind the query cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig names the batch topic the loader consumes and the DLQ topic
// it publishes failures to.
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	DLQTopic string
}

// ObjStoreConfig locates the S3-compatible store holding batch files.
type ObjStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// Load reads loader-config.yaml, layers environment variables on top, and
// validates the result. A missing file is fine; env vars alone can carry a
// deployment.
func Load() (*Config, error) {
	viper.SetConfigName("loader-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/endee/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Environment: EnvironmentConfig{
			Name: viper.GetString("environment.name"),
		},
		Logger: LoggerConfig{
			Level:        viper.GetString("logger.level"),
			Mode:         viper.GetString("logger.mode"),
			Encoding:     viper.GetString("logger.encoding"),
			ColorEnabled: viper.GetBool("logger.color_enabled"),
		},
		Endee: EndeeConfig{
			BaseURL: viper.GetString("endee.base_url"),
			APIKey:  viper.GetString("endee.api_key"),
			Timeout: viper.GetInt("endee.timeout"),
			Retries: viper.GetInt("endee.retries"),
		},
		Voyage: VoyageConfig{
			APIKey: viper.GetString("voyage.api_key"),
			Model:  viper.GetString("voyage.model"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("redis.host"),
			Port:     viper.GetInt("redis.port"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Kafka: KafkaConfig{
			Brokers:  viper.GetStringSlice("kafka.brokers"),
			Topic:    viper.GetString("kafka.topic"),
			GroupID:  viper.GetString("kafka.group_id"),
			DLQTopic: viper.GetString("kafka.dlq_topic"),
		},
		ObjStore: ObjStoreConfig{
			Endpoint:  viper.GetString("objstore.endpoint"),
			AccessKey: viper.GetString("objstore.access_key"),
			SecretKey: viper.GetString("objstore.secret_key"),
			UseSSL:    viper.GetBool("objstore.use_ssl"),
			Region:    viper.GetString("objstore.region"),
			Bucket:    viper.GetString("objstore.bucket"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "production")

	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("endee.base_url", "http://localhost:8080")
	viper.SetDefault("endee.timeout", 30)
	viper.SetDefault("endee.retries", 3)

	viper.SetDefault("voyage.model", "voyage-3")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "endee.batch.ready")
	viper.SetDefault("kafka.group_id", "endee-loader")
	viper.SetDefault("kafka.dlq_topic", "endee.loader.dlq")

	viper.SetDefault("objstore.endpoint", "localhost:9000")
	viper.SetDefault("objstore.access_key", "minioadmin")
	viper.SetDefault("objstore.secret_key", "minioadmin")
	viper.SetDefault("objstore.use_ssl", false)
	viper.SetDefault("objstore.region", "us-east-1")
	viper.SetDefault("objstore.bucket", "endee-batches")
}

func validate(cfg *Config) error {
	required := []struct {
		ok   bool
		name string
	}{
		{cfg.Endee.BaseURL != "", "endee.base_url"},
		{cfg.Endee.APIKey != "", "endee.api_key"},
		{cfg.Voyage.APIKey != "", "voyage.api_key"},
		{cfg.Redis.Host != "", "redis.host"},
		{cfg.Redis.Port != 0, "redis.port"},
		{len(cfg.Kafka.Brokers) > 0, "kafka.brokers"},
		{cfg.ObjStore.Endpoint != "", "objstore.endpoint"},
		{cfg.ObjStore.AccessKey != "", "objstore.access_key"},
		{cfg.ObjStore.SecretKey != "", "objstore.secret_key"},
		{cfg.ObjStore.Bucket != "", "objstore.bucket"},
	}

	for _, r := range required {
		if !r.ok {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
}
