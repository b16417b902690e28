package auth

import (
	"GamifyPlanner/backend/internal/config"
	"GamifyPlanner/backend/internal/models"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type CustomClaims struct {
	UserID   uint   `json:"user_id"`
	Login    string `json:"login"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateTokenPair(user models.User, cfg *config.Config) (*TokenPair, error) {
	now := time.Now()
	accessExp := now.Add(time.Minute * time.Duration(cfg.JwtAccessExpires))
	refreshExp := now.Add(time.Hour * time.Duration(cfg.JwtRefreshExpires))

	accessClaims := CustomClaims{
		UserID:   user.ID,
		Login:    user.Login,
		Nickname: user.Nickname,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "access",
			ExpiresAt: jwt.NewNumericDate(accessExp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	refreshClaims := CustomClaims{
		UserID:   user.ID,
		Login:    user.Login,
		Nickname: user.Nickname,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "refresh",
			ExpiresAt: jwt.NewNumericDate(refreshExp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)

	access, err := accessToken.SignedString([]byte(cfg.JwtAccessSecret))
	if err != nil {
		return nil, err
	}
	refresh, err := refreshToken.SignedString([]byte(cfg.JwtRefreshSecret))
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ParseClaims validates a token against the given secret and returns its
// claims. Shared by the middleware and the refresh flow.
func ParseClaims(tokenStr, secret string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
