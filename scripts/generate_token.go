package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Claims mirrors the token payload issued by the auth service: the subject
// identifies the user, role and tenant are informational only and reloaded
// from storage on every request.
type Claims struct {
	Email    string `json:"email"`
	Role     string `json:"papel"`
	TenantID string `json:"empresa_id,omitempty"`
	jwt.RegisteredClaims
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Define command line flags
	userID := flag.String("user", "", "User ID for the token")
	email := flag.String("email", "", "User email")
	role := flag.String("role", "ADMIN", "Role: SUPERADMIN, ADMIN or ATENDENTE")
	tenantID := flag.String("tenant", "", "Tenant ID (empty for SUPERADMIN)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}

	if *role != "SUPERADMIN" && *tenantID == "" {
		log.Fatal("Tenant ID is required for non-SUPERADMIN tokens")
	}

	// Create claims
	claims := &Claims{
		Email:    *email,
		Role:     *role,
		TenantID: *tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   *userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(*expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Create token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Get JWT secret from environment
	jwtSecret := []byte(getEnvOrDefault("JWT_SECRET_KEY", "your-default-secret-key"))

	// Sign the token
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		log.Fatalf("Error signing token: %v", err)
	}

	fmt.Printf("Generated JWT Token:\n%s\n", tokenString)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
