package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/response"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
	// ContextKeyAccount is the Gin context key for the resolved account.
	ContextKeyAccount = "account"
)

// RequireRole validates a bearer token, checks it carries the expected
// role, and resolves the account against that role's roster on every
// request. Resolution makes suspension and termination take effect
// immediately instead of at token expiry.
func RequireRole(authService *service.AuthService, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndValidateClaims(c, authService)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		if claims.Role != role {
			response.AbortFail(c, http.StatusForbidden, roleErrCode(role))
			return
		}

		account, err := authService.ResolveAccount(c.Request.Context(), claims.Role, claims.AccountID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}
		if account.IsSuspended {
			response.AbortFail(c, http.StatusForbidden, response.ErrAccountSuspended)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyAccount, account)
		c.Next()
	}
}

// RequireAuth validates a bearer token for any role without resolving the
// account. Used by endpoints shared by all roles, like logout.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndValidateClaims(c, authService)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

// GetAccount retrieves the resolved account from the Gin context.
func GetAccount(c *gin.Context) *model.Account {
	val, exists := c.Get(ContextKeyAccount)
	if !exists {
		return nil
	}
	account, ok := val.(*model.Account)
	if !ok {
		return nil
	}
	return account
}

func roleErrCode(role model.Role) response.ErrCode {
	switch role {
	case model.RoleAdmin:
		return response.ErrAdminAccessOnly
	case model.RoleTeacher:
		return response.ErrTeacherAccessOnly
	case model.RoleStudent:
		return response.ErrStudentAccessOnly
	}
	return response.ErrForbidden
}

func extractAndValidateClaims(c *gin.Context, authService *service.AuthService) (*service.Claims, error) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenStr = parts[1]
		}
	}

	if tokenStr == "" {
		return nil, fmt.Errorf("authorization header required")
	}

	return authService.ValidateToken(tokenStr)
}
