package shared

import "github.com/golang-jwt/jwt/v5"

// shared types across the application
// 1st: JWT claims carried by API access tokens
// 2nd: add more shared types as needed

type AuthClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
