package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"lifelist-backend/internal/analytics"
	"lifelist-backend/internal/records"
	"lifelist-backend/internal/sheet"
)

// callback должен быть валидным JS-идентификатором (можно с точками)
var callbackPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)

const maxSheetSize = 10 << 20

func RecordsHandler(src sheet.Source, norm *records.Normalizer, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := src.Load(r.Context())
		if err != nil {
			if errors.Is(err, sheet.ErrNoSheet) {
				writeError(w, http.StatusNotFound, "sheet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load sheet")
			return
		}

		recs := norm.Convert(rows)

		env := analytics.FromRequest(r)
		_ = analytics.Log(r.Context(), dbx, env, "records_served", map[string]any{
			"rows":  len(recs),
			"jsonp": r.URL.Query().Get("callback") != "",
		})

		writeJSONP(w, r, recs)
	}
}

func StatsHandler(src sheet.Source, norm *records.Normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := src.Load(r.Context())
		if err != nil {
			if errors.Is(err, sheet.ErrNoSheet) {
				writeError(w, http.StatusNotFound, "sheet not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "failed to load sheet")
			return
		}

		recs := norm.Convert(rows)

		completed := 0
		byCategory := map[string]int{}
		for _, rec := range recs {
			if rec["completed"] == true {
				completed++
			}
			if cat, ok := rec["category"].(string); ok && cat != "" {
				byCategory[cat]++
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total":       len(recs),
			"completed":   completed,
			"remaining":   len(recs) - completed,
			"by_category": byCategory,
		})
	}
}

// UploadSheetHandler replaces the backing .xlsx file. Guarded by the auth
// middleware; takes effect on the next request because every GET re-reads
// the source.
func UploadSheetHandler(sheetPath string, dbx *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sheetPath == "" {
			writeError(w, http.StatusConflict, "sheet upload is only available for the excel source")
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxSheetSize+1))
		if err != nil || len(body) == 0 || len(body) > maxSheetSize {
			writeError(w, http.StatusBadRequest, "bad sheet payload")
			return
		}

		// проверяем, что это действительно xlsx
		f, err := excelize.OpenReader(bytes.NewReader(body))
		if err != nil {
			writeError(w, http.StatusBadRequest, "not an xlsx file")
			return
		}
		sheets := f.GetSheetList()
		_ = f.Close()

		if err := os.WriteFile(sheetPath, body, 0o644); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to store sheet")
			return
		}

		env := analytics.FromRequest(r)
		_ = analytics.Log(r.Context(), dbx, env, "sheet_uploaded", map[string]any{
			"bytes":  len(body),
			"sheets": len(sheets),
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"sheets": sheets,
		})
	}
}

// writeJSONP answers plain JSON, or <callback>(<json>); when the request
// carries a valid callback name. Invalid names fall back to plain JSON.
func writeJSONP(w http.ResponseWriter, r *http.Request, payload any) {
	b, err := json.Marshal(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode error")
		return
	}

	cb := strings.TrimSpace(r.URL.Query().Get("callback"))
	if cb != "" && callbackPattern.MatchString(cb) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		fmt.Fprintf(w, "%s(%s);", cb, b)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
