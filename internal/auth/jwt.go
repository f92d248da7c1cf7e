package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNotAdmin = errors.New("not an admin token")

func GenerateToken(secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(30 * 24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return err
	}

	data := token.Claims.(jwt.MapClaims)
	role, ok := data["role"].(string)
	if !ok || role != "admin" {
		return errNotAdmin
	}
	return nil
}
