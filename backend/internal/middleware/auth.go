package middleware

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/models"
	"GamifyPlanner/backend/internal/services/auth"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "user"

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		switch {
		case authHeader != "":
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Println("[AUTH MIDDLEWARE] Invalid Authorization header format")
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
				c.Abort()
				return
			}
			token = parts[1]
		case c.Query("token") != "":
			// websocket clients cannot set headers on the upgrade request
			token = c.Query("token")
		default:
			log.Println("[AUTH MIDDLEWARE] No Authorization header")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No Authorization header"})
			c.Abort()
			return
		}

		claims, err := auth.ParseClaims(token, cfg.JwtAccessSecret)
		if err != nil {
			log.Printf("[AUTH MIDDLEWARE] Invalid or expired token: %v\n", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			c.Abort()
			return
		}
		if claims.Subject != "access" {
			log.Printf("[AUTH MIDDLEWARE] Invalid token subject: %s\n", claims.Subject)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			c.Abort()
			return
		}

		log.Printf("[AUTH MIDDLEWARE] Authenticated user id=%d, role=%s, nickname=%s\n",
			claims.UserID, claims.Role, claims.Nickname)

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

func GetUserClaims(c *gin.Context) (*auth.CustomClaims, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		log.Println("[GET USER CLAIMS] No user in context")
		return nil, false
	}
	claims, ok := val.(*auth.CustomClaims)
	if !ok {
		log.Println("[GET USER CLAIMS] Context value is not *CustomClaims")
		return nil, false
	}
	return claims, ok
}

func RequireRole(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetCurrentUser(c)
		if err != nil {
			log.Println("[REQUIRE ROLE] No user in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No Authorization header"})
			c.Abort()
			return
		}

		for _, role := range requiredRoles {
			if role == user.Role {
				c.Next()
				return
			}
		}

		log.Printf("[REQUIRE ROLE] Access denied: role=%s required=%v\n", user.Role, requiredRoles)
		c.JSON(http.StatusForbidden, gin.H{"error": "Don't have enough role to do this request"})
		c.Abort()
	}
}

func GetCurrentUser(c *gin.Context) (*models.User, error) {
	claims, ok := GetUserClaims(c)
	if !ok {
		return nil, fmt.Errorf("no user claims in context")
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
