package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// excel | postgres
	Source     string
	SheetPath  string
	SheetName  string
	SheetTable string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	BirthDate     time.Time
	JWTSecret     string
	AdminPassword string
}

func Load() *Config {
	// .env опционален
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	source := os.Getenv("SOURCE")
	if source != "postgres" {
		source = "excel"
	}

	sheetPath := os.Getenv("SHEET_PATH")
	if sheetPath == "" {
		sheetPath = "lifelist.xlsx"
	}

	sheetName := os.Getenv("SHEET_NAME")
	if sheetName == "" {
		sheetName = "Sheet1"
	}

	sheetTable := os.Getenv("SHEET_TABLE")
	if sheetTable == "" {
		sheetTable = "lifelist"
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432 // fallback
	}

	// дата рождения фиксирована для всего процесса
	birth, err := time.Parse("2006-01-02", os.Getenv("BIRTH_DATE"))
	if err != nil {
		birth = time.Date(1979, 9, 2, 0, 0, 0, 0, time.UTC)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "SUPER_SECRET_KEY_CHANGE_ME"
	}

	return &Config{
		Port: port,

		Source:     source,
		SheetPath:  sheetPath,
		SheetName:  sheetName,
		SheetTable: sheetTable,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		BirthDate:     birth,
		JWTSecret:     secret,
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
