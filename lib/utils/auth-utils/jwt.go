package authutils

import (
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	ClaimSubject   = "sub"
	ClaimSpace     = "space"
	ClaimRole      = "role"
	ClaimApplicant = "applicant"
	ClaimName      = "name"
	ClaimRefresh   = "refresh"
)

// TokenUser - identity placed into the access token
type TokenUser struct {
	ID          string
	Name        string
	SpaceID     string
	Role        models.UserRole
	ApplicantID string // candidate accounts only
}

func GetToken(user TokenUser) (tokenString string, err error) {
	claims := jwt.MapClaims{
		ClaimName:    user.Name,
		ClaimSubject: user.ID,
		ClaimSpace:   user.SpaceID,
		ClaimRole:    string(user.Role),
		"exp":        time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":        time.Now().Unix(),
	}
	if user.ApplicantID != "" {
		claims[ClaimApplicant] = user.ApplicantID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetRefreshToken(userID, name string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		ClaimName:    name,
		ClaimSubject: userID,
		ClaimRefresh: true,
		"exp":        time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTRefreshExpireInSec)).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

// ParseRefreshToken - validates the refresh token signature and expiry and returns the user id
func ParseRefreshToken(tokenString string) (userID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.Wrap(err, "invalid refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid refresh token")
	}
	if isRefresh, _ := claims[ClaimRefresh].(bool); !isRefresh {
		return "", errors.New("not a refresh token")
	}
	userID, _ = claims[ClaimSubject].(string)
	if userID == "" {
		return "", errors.New("invalid refresh token")
	}
	return userID, nil
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetClaim(ctx *fiber.Ctx, name string) string {
	value, _ := GetClaims(ctx)[name].(string)
	return value
}
