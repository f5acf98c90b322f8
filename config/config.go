package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	Auth     Auth
	Broker   Broker
}

type Server struct {
	Port string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Gemini struct {
	ApiKey string
	Model  string
	Client string // "generative-ai-go" or "genai"
}

type Auth struct {
	JWTSecret string
	JWTIssuer string
}

type Broker struct {
	URL      string
	Exchange string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ClientGenerativeAI = "generative-ai-go"
	ClientGenAI        = "genai"
)

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_SQLITE_PATH", "interview.db")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("AI_CLIENT", ClientGenerativeAI)
	viper.SetDefault("RABBITMQ_EXCHANGE", "assessment_events")
}

func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	viper.AutomaticEnv()
	setDefaults()

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = viper.GetString("DATABASE_SQLITE_PATH")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.Client = viper.GetString("AI_CLIENT")

	config.Auth.JWTSecret = viper.GetString("AUTH_JWT_SECRET")
	config.Auth.JWTIssuer = viper.GetString("AUTH_JWT_ISSUER")

	config.Broker.URL = viper.GetString("RABBITMQ_URL")
	config.Broker.Exchange = viper.GetString("RABBITMQ_EXCHANGE")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Str("geminiModel", config.Gemini.Model).
		Str("aiClient", config.Gemini.Client).
		Bool("geminiKeySet", config.Gemini.ApiKey != "").
		Bool("brokerEnabled", config.Broker.URL != "").
		Msg("Config loaded")
	return &config, nil
}
