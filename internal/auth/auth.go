package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

// Roles known to the catalog service.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

var (
	// ErrForbidden is returned when a caller is not allowed to touch a resource.
	ErrForbidden = errors.New("caller is not allowed to access this resource")

	// ErrInvalidToken is returned when a bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the JWT claims the identity service issues for catalog callers.
type Claims struct {
	Role   string `json:"role"`
	Tenant string `json:"tenant"`
	jwt.RegisteredClaims
}

// Caller identifies the authenticated caller of a service operation.
type Caller struct {
	Role   string
	Tenant string
}

// ParseToken validates an HMAC-signed token string and extracts its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CanModify decides whether the caller may mutate a resource owned by
// resourceTenant. Admins may touch any tenant's resources; everyone else is
// restricted to their own tenant.
func CanModify(caller Caller, resourceTenant string) error {
	if caller.Role == RoleAdmin {
		return nil
	}
	if caller.Tenant != "" && caller.Tenant == resourceTenant {
		return nil
	}
	return ErrForbidden
}
