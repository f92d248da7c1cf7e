package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// LoginHandler issues an admin token for the sheet upload endpoint.
// Single shared password from config, no user accounts.
func LoginHandler(secret []byte, adminPassword string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		if adminPassword == "" ||
			subtle.ConstantTimeCompare([]byte(body.Password), []byte(adminPassword)) != 1 {
			http.Error(w, "invalid login", http.StatusUnauthorized)
			return
		}

		token, _ := GenerateToken(secret)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": token,
		})
	}
}
