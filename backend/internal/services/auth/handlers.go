package auth

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/database"
	"GamifyPlanner/backend/internal/models"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RegisterRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=50"`
	Nickname    string `json:"nickname" binding:"required,min=1,max=17"`
	Password    string `json:"password" binding:"required,min=8"`
	Information string `json:"information" binding:"max=511"`
	ClassID     *uint  `json:"classId"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) Register(c *gin.Context) {
	log.Println("[REGISTER] Incoming request")

	var body RegisterRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[REGISTER] Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Register Request"})
		return
	}

	log.Printf("[REGISTER] Parsed body: login=%s, nickname=%s", body.Login, body.Nickname)

	if body.ClassID != nil {
		if err := database.DB.First(&models.Class{}, *body.ClassID).Error; err != nil {
			log.Printf("[REGISTER] Unknown class id=%d", *body.ClassID)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown class"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[REGISTER] Failed to hash password: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to hash password"})
		return
	}

	// New adventurers start at level 1 with the default stat block.
	user := models.User{
		Login:        body.Login,
		Nickname:     body.Nickname,
		Password:     string(hashed),
		Information:  body.Information,
		ClassID:      body.ClassID,
		Level:        1,
		Lives:        100,
		MaxLives:     100,
		Points:       0,
		MaxPoints:    100,
		Gold:         0,
		Attack:       10,
		Role:         "user",
		AuthProvider: "local",
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("[REGISTER] Failed to create user in DB: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create user"})
		return
	}

	log.Printf("[REGISTER] User created successfully: id=%d, login=%s", user.ID, user.Login)

	token, err := h.CreateAndStoreToken(c, user)
	if err != nil {
		log.Printf("[REGISTER] Error generating tokens: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{AccessToken: token.AccessToken, User: user})
}

func (h *Handler) Login(c *gin.Context) {
	log.Println("[LOGIN] Incoming login request")

	var body LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[LOGIN] Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Login Request"})
		return
	}

	var user models.User
	if err := database.DB.Where("login = ?", body.Login).First(&user).Error; err != nil {
		log.Printf("[LOGIN] User not found: login=%s, error=%v", body.Login, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		log.Printf("[LOGIN] Incorrect password for user id=%d", user.ID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password incorrect"})
		return
	}

	token, err := h.CreateAndStoreToken(c, user)
	if err != nil {
		log.Printf("[LOGIN] Failed to generate JWT tokens for user id=%d: %v", user.ID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create token"})
		return
	}

	log.Printf("[LOGIN] Responding with 200 OK for user id=%d", user.ID)
	c.JSON(http.StatusOK, AuthResponse{AccessToken: token.AccessToken, User: user})
}

func (h *Handler) OauthLogin(c *gin.Context, provider string) {
	log.Printf("[OAUTH-LOGIN] Incoming %s login request", provider)

	req := c.Request.WithContext(
		context.WithValue(c.Request.Context(), "provider", provider),
	)
	c.Request = req

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

func (h *Handler) OauthCallback(c *gin.Context, provider string) {
	redirectError := func(msg string) {
		redirectURL := fmt.Sprintf("%s/login?oauth=error&error=%s", h.cfg.FrontendUrl, msg)
		log.Printf("[OAUTH-CALLBACK] Redirecting with ERROR to %s", redirectURL)
		c.Redirect(http.StatusTemporaryRedirect, redirectURL)
	}

	log.Printf("[OAUTH-CALLBACK] Callback from provider=%s", provider)

	req := c.Request.WithContext(
		context.WithValue(c.Request.Context(), "provider", provider),
	)
	c.Request = req

	userAuth, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("[OAUTH-CALLBACK] Failed to complete auth for provider=%s: %v", provider, err)
		redirectError("Failed to complete auth for provider")
		return
	}

	if userAuth.Email == "" {
		log.Printf("[OAUTH-CALLBACK] No email provided by %s", provider)
		redirectError(fmt.Sprintf("No email provided by %s", provider))
		return
	}

	var user models.User
	if err := database.DB.Where("login = ?", userAuth.Email).First(&user).Error; err != nil {
		log.Printf("[OAUTH-CALLBACK] User not found in DB, creating one. login=%s provider=%s",
			userAuth.Email, provider)

		base := userAuth.NickName
		if base == "" {
			base = strings.Split(userAuth.Email, "@")[0]
		}

		user = models.User{
			Login:        userAuth.Email,
			Nickname:     generateUniqueNickname(base),
			Password:     "",
			Img:          userAuth.AvatarURL,
			Level:        1,
			Lives:        100,
			MaxLives:     100,
			MaxPoints:    100,
			Attack:       10,
			Role:         "user",
			AuthProvider: provider,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("[OAUTH-CALLBACK] Failed to create user in DB: %v", err)
			redirectError("Failed to create user in DB")
			return
		}
		log.Printf("[OAUTH-CALLBACK] New user created: id=%d, provider=%s", user.ID, provider)
	}

	// an email registered with one provider stays with that provider
	if user.AuthProvider != provider {
		log.Printf("[OAUTH-CALLBACK] Provider mismatch for user id=%d: existing=%s, incoming=%s",
			user.ID, user.AuthProvider, provider)
		redirectError("User already signed in with another provider")
		return
	}

	if _, err := h.CreateAndStoreToken(c, user); err != nil {
		log.Printf("[OAUTH-CALLBACK] Failed to create tokens for user id=%d: %v", user.ID, err)
		redirectError("Failed to create tokens for user")
		return
	}

	redirectURL := fmt.Sprintf("%s/login?%s",
		h.cfg.FrontendUrl,
		url.Values{"oauth": []string{provider}}.Encode(),
	)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}

func (h *Handler) CreateAndStoreToken(c *gin.Context, user models.User) (*TokenPair, error) {
	tokens, err := GenerateTokenPair(user, h.cfg)
	if err != nil {
		log.Printf("[AUTH] Failed to create tokens for user_id=%d: %v", user.ID, err)
		return nil, err
	}

	now := time.Now()
	refreshExp := now.Add(time.Hour * time.Duration(h.cfg.JwtRefreshExpires))

	tokenModel := models.Token{
		UserID:           user.ID,
		RefreshTokenHash: hashToken(tokens.RefreshToken),
		Device:           "Web",
		IpAddress:        c.ClientIP(),
		UserAgent:        c.Request.UserAgent(),
		IsRevoked:        false,
		Expires:          refreshExp,
		LastUsed:         now,
	}

	if err := database.DB.Create(&tokenModel).Error; err != nil {
		log.Printf("[AUTH] Failed to save refresh token for user_id=%d: %v", user.ID, err)
		return nil, err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refreshToken",
		Value:    tokens.RefreshToken,
		Path:     "/",
		MaxAge:   int(time.Until(refreshExp).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	return tokens, nil
}

func (h *Handler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refreshToken")
	if err != nil || refreshToken == "" {
		log.Println("[REFRESH] No refresh token found in cookie")
		var body RefreshRequest
		if bindErr := c.ShouldBindJSON(&body); bindErr != nil || body.RefreshToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No refresh token provided"})
			return
		}
		refreshToken = body.RefreshToken
	}

	claims, err := ParseClaims(refreshToken, h.cfg.JwtRefreshSecret)
	if err != nil || claims.Subject != "refresh" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid refresh token"})
		return
	}

	var storedToken models.Token
	if err := database.DB.Where("user_id = ? AND refresh_token_hash = ? AND is_revoked = ?",
		claims.UserID, hashToken(refreshToken), false).First(&storedToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[REFRESH] Refresh token not found or already used for user_id=%d", claims.UserID)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token invalid or already used"})
			return
		}
		log.Printf("[REFRESH] Failed to refresh token: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to refresh token"})
		return
	}

	if time.Now().After(storedToken.Expires) {
		log.Println("[REFRESH] Refresh token expired")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token expired"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User not found in DB"})
		return
	}

	if err := database.DB.Model(&storedToken).Update("is_revoked", true).Error; err != nil {
		log.Printf("[REFRESH] Failed to revoke token: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to revoke token"})
		return
	}

	newTokens, err := h.CreateAndStoreToken(c, user)
	if err != nil {
		log.Printf("[REFRESH] Failed to create tokens for user: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, AuthResponse{AccessToken: newTokens.AccessToken, User: user})
}

func (h *Handler) Logout(c *gin.Context) {
	deleteCookie := func() {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     "refreshToken",
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
	}
	refreshToken, err := c.Cookie("refreshToken")
	if err != nil || refreshToken == "" {
		deleteCookie()
		c.Status(http.StatusNoContent)
		return
	}
	claims, err := ParseClaims(refreshToken, h.cfg.JwtRefreshSecret)
	if err != nil || claims.Subject != "refresh" {
		log.Printf("[LOGOUT] Invalid refresh token: %v", err)
		deleteCookie()
		c.Status(http.StatusNoContent)
		return
	}
	if err := database.DB.Model(&models.Token{}).
		Where("refresh_token_hash = ? AND user_id = ?", hashToken(refreshToken), claims.UserID).
		Update("is_revoked", true).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[LOGOUT] Failed to revoke token: %v", err)
	}
	deleteCookie()
	c.Status(http.StatusNoContent)
}
