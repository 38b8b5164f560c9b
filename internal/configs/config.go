package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Mega      MegaConfig      `mapstructure:"mega"`
	S3        S3Config        `mapstructure:"s3"`
	OCR       OCRConfig       `mapstructure:"ocr"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Search    SearchConfig    `mapstructure:"search"`
	Log       LogConfig       `mapstructure:"log"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port               string        `mapstructure:"port"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes     int           `mapstructure:"max_header_bytes"`
	MaxMultipartMemory int64         `mapstructure:"max_multipart_memory"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	GracefulShutdown   time.Duration `mapstructure:"graceful_shutdown"`
}

type DatabaseConfig struct {
	Driver   string        `mapstructure:"driver"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	User     string        `mapstructure:"user"`
	Password string        `mapstructure:"password"`
	Name     string        `mapstructure:"name"`
	SSLMode  string        `mapstructure:"sslmode"`
	Timeout  time.Duration `mapstructure:"timeout"`
}
type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	SearchTTL   time.Duration `mapstructure:"search_ttl"`
	MarathonTTL time.Duration `mapstructure:"marathon_ttl"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	Password string `mapstructure:"password"`
	Exchange string `mapstructure:"exchange"`
}

type KafkaConfig struct {
	BootstrapServers string      `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int         `mapstructure:"retry_backoff_ms"`
	BatchSize        int         `mapstructure:"batch_size"`
	Acks             string      `mapstructure:"acks"`
	Topics           KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	InfoLog  string `mapstructure:"info_log"`
	ErrorLog string `mapstructure:"error_log"`
	WarnLog  string `mapstructure:"warn_log"`
}

type StorageConfig struct {
	Driver     string        `mapstructure:"driver"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint64        `mapstructure:"max_retries"`
}

type MegaConfig struct {
	Email         string `mapstructure:"email"`
	Password      string `mapstructure:"password"`
	MainDirectory string `mapstructure:"main_directory"`
}

type S3Config struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	Bucket        string `mapstructure:"bucket"`
	Prefix        string `mapstructure:"prefix"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type OCRConfig struct {
	Languages  []string      `mapstructure:"languages"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries uint64        `mapstructure:"max_retries"`
	Fetch      string        `mapstructure:"fetch"`
}

type UploadConfig struct {
	MaxFileSize       int64         `mapstructure:"max_file_size"`
	AllowedExtensions []string      `mapstructure:"allowed_extensions"`
	QueueSize         int           `mapstructure:"queue_size"`
	Workers           int           `mapstructure:"workers"`
	TaskTimeout       time.Duration `mapstructure:"task_timeout"`
}

type SearchConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size"`
	MaxPageSize     int `mapstructure:"max_page_size"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Debug bool   `mapstructure:"debug"`
}

type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func setDefaults() {
	viper.SetDefault("server.port", "8083")
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 60*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)
	viper.SetDefault("server.max_multipart_memory", 32<<20)
	viper.SetDefault("server.request_timeout", 45*time.Second)
	viper.SetDefault("server.graceful_shutdown", 15*time.Second)
	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.timeout", 5*time.Second)
	viper.SetDefault("redis.search_ttl", 30*time.Second)
	viper.SetDefault("redis.marathon_ttl", 10*time.Minute)
	viper.SetDefault("rabbitmq.exchange", "photo_events")
	viper.SetDefault("storage.driver", "mega")
	viper.SetDefault("storage.timeout", 30*time.Second)
	viper.SetDefault("storage.max_retries", 3)
	viper.SetDefault("ocr.languages", []string{"eng"})
	viper.SetDefault("ocr.timeout", 20*time.Second)
	viper.SetDefault("ocr.max_retries", 2)
	viper.SetDefault("ocr.fetch", "storage")
	viper.SetDefault("upload.max_file_size", 16<<20)
	viper.SetDefault("upload.allowed_extensions", []string{"png", "jpg", "jpeg", "gif"})
	viper.SetDefault("upload.queue_size", 1000)
	viper.SetDefault("upload.workers", 3)
	viper.SetDefault("upload.task_timeout", 10*time.Second)
	viper.SetDefault("search.default_page_size", 24)
	viper.SetDefault("search.max_page_size", 100)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("ratelimit.rps", 0.5)
	viper.SetDefault("ratelimit.burst", 10)
}

func LoadConfig() Config {
	setDefaults()
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("internal/configs")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("[DEBUG] [Photo-Service] Config file not found; using defaults or environment variables")
		} else {
			log.Fatalf("[DEBUG] [Photo-Service] Error reading config file: %s", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalf("[DEBUG] [Photo-Service] Unable to decode into struct, %v", err)
	}
	docker_flag := os.Getenv("DOCKER")
	if docker_flag == "TRUE" {
		LoadDockerConfig(&config)
		log.Println("[DEBUG] [Photo-Service] Successful Load Config (docker)")
		return config
	}
	log.Println("[DEBUG] [Photo-Service] Successful Load Config (localhost)")
	return config
}
func LoadDockerConfig(config *Config) {
	redis := os.Getenv("REDIS_HOST")
	kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	rabbit := os.Getenv("RABBITMQ_HOST")
	db := os.Getenv("DB_HOST")
	config.Redis.Host = redis
	config.Kafka.BootstrapServers = kafka
	config.RabbitMQ.Host = rabbit
	config.Database.Host = db
}
