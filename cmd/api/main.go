package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/rs/cors"

	"lifelist-backend/internal/api"
	"lifelist-backend/internal/auth"
	"lifelist-backend/internal/config"
	"lifelist-backend/internal/records"
	"lifelist-backend/internal/sheet"
)

func main() {
	cfg := config.Load()

	// ----- DATA SOURCE -----
	var (
		src      sheet.Source
		database *sql.DB
		err      error
	)

	if cfg.Source == "postgres" || cfg.DBName != "" {
		database, err = sheet.Connect(cfg.ConnString())
		if err != nil {
			if cfg.Source == "postgres" {
				log.Fatal("❌ Failed to connect DB:", err)
			}
			// excel-режим: БД только для аналитики, живём без неё
			log.Println("⚠️ analytics DB unavailable:", err)
			database = nil
		} else {
			log.Println("✅ Connected to PostgreSQL!")
		}
	}

	uploadPath := cfg.SheetPath
	if cfg.Source == "postgres" {
		src = sheet.NewPostgresSource(database, cfg.SheetTable)
		uploadPath = "" // загрузка файла не имеет смысла
	} else {
		src = sheet.NewExcelSource(cfg.SheetPath, cfg.SheetName)
	}

	norm := records.New(cfg.BirthDate, nil)
	guard := auth.New([]byte(cfg.JWTSecret))

	recordsHandler := api.RecordsHandler(src, norm, database)
	statsHandler := api.StatsHandler(src, norm)
	uploadHandler := guard.Wrap(api.UploadSheetHandler(uploadPath, database))
	loginHandler := auth.LoginHandler([]byte(cfg.JWTSecret), cfg.AdminPassword)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- RECORDS API (JSON/JSONP) -----
	mux.HandleFunc("/records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			recordsHandler(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			statsHandler(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// ----- ADMIN -----
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			loginHandler(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/sheet", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			uploadHandler(w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on :" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
