package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string     `yaml:"port"`
	AppEnv      string     `yaml:"app_env"`
	FrontendURL string     `yaml:"frontend_url"`
	Database    DBConfig   `yaml:"database"`
	Seed        SeedConfig `yaml:"seed"`
}

// DBConfig holds the Postgres connection parameters
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// SeedConfig holds the passwords for the bootstrap accounts
type SeedConfig struct {
	AdminPassword string `yaml:"admin_password"`
	UserPassword  string `yaml:"user_password"`
}

// DSN builds the Postgres connection string
func (db *DBConfig) DSN() string {
	return "host=" + db.Host +
		" port=" + strconv.Itoa(db.Port) +
		" user=" + db.User +
		" password=" + db.Password +
		" dbname=" + db.DBName +
		" sslmode=" + db.SSLMode
}

// Load builds the configuration from defaults, an optional YAML file
// (CONFIG_FILE) and environment variables, later sources winning.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			log.Printf("Failed to read config file %s: %v", path, err)
		}
	}

	cfg.parseEnv()
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Port:        "8080",
		AppEnv:      "development",
		FrontendURL: "http://localhost:3000",
		Database: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			DBName:   "gocalendar",
			SSLMode:  "disable",
		},
		Seed: SeedConfig{
			AdminPassword: "admin123",
			UserPassword:  "user123",
		},
	}
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(c)
}

func (c *Config) parseEnv() {
	c.Port = getEnv("PORT", c.Port)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.FrontendURL = getEnv("FRONTEND_URL", c.FrontendURL)

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	if port := os.Getenv("DB_PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			c.Database.Port = parsed
		}
	}
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.DBName = getEnv("DB_NAME", c.Database.DBName)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)

	c.Seed.AdminPassword = getEnv("SEED_ADMIN_PASSWORD", c.Seed.AdminPassword)
	c.Seed.UserPassword = getEnv("SEED_USER_PASSWORD", c.Seed.UserPassword)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
