package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB      *sql.DB
	Storage StorageConfig
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var AppConfig *Config

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB loads environment configuration and opens the database pool.
func InitDB() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "swaram")
	sslmode := getenv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=10",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection to %s:%s/%s: %v", host, port, dbname, err)
	}

	useSSL, _ := strconv.ParseBool(getenv("STORAGE_USE_SSL", "false"))
	AppConfig = &Config{
		DB: db,
		Storage: StorageConfig{
			Endpoint:  getenv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKey: getenv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretKey: getenv("STORAGE_SECRET_KEY", "minioadmin"),
			Bucket:    getenv("STORAGE_BUCKET", "students"),
			UseSSL:    useSSL,
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func GetStorageConfig() StorageConfig {
	return AppConfig.Storage
}
