package middleware

import (
	"net/http"
	"strings"

	"online-store/models"
	"online-store/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or missing token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches user claims when a valid bearer token is
// present and lets the request through either way. Cart routes use it: the
// same endpoints serve anonymous visitors and signed-in customers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := bearerClaims(c); err == nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "User role not found",
			})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerClaims(c *gin.Context) (*utils.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errMissingAuth
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, errBadAuthFormat
	}

	return utils.ValidateToken(tokenParts[1])
}

func setUserContext(c *gin.Context, claims *utils.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Set("user_role", claims.Role)
}
