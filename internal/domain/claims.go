package domain

import "github.com/golang-jwt/jwt/v5"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Claims are carried by the bearer tokens accepted by the admin API.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
