package auth

import (
	"errors"
	"time"

	"repogenesis_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims - полезная нагрузка access/refresh токенов
type Claims struct {
	PrincipalID string                  `json:"id"`
	Variant     models.PrincipalVariant `json:"variant"`
	Role        models.Role             `json:"role,omitempty"`
	TokenType   string                  `json:"token_type"`

	jwt.RegisteredClaims
}

// TokenPair - пара access + refresh токенов
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService выпускает и проверяет подписанные токены
type TokenService interface {
	IssueTokenPair(principalID string, variant models.PrincipalVariant, role models.Role) (*TokenPair, error)
	IssueAccessToken(principalID string, variant models.PrincipalVariant, role models.Role) (string, error)
	ParseAccessToken(tokenString string) (*Claims, error)
	ParseRefreshToken(tokenString string) (*Claims, error)
}

type hmacTokenService struct {
	accessSecret  []byte
	refreshSecret []byte

	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

// NewTokenService создает HS256 TokenService
func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &hmacTokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// IssueTokenPair выпускает короткоживущий access и долгоживущий refresh токены
func (s *hmacTokenService) IssueTokenPair(principalID string, variant models.PrincipalVariant, role models.Role) (*TokenPair, error) {
	access, err := s.generate(TokenTypeAccess, principalID, variant, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(TokenTypeRefresh, principalID, variant, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccessToken выпускает только access токен (используется в refresh-ручке)
func (s *hmacTokenService) IssueAccessToken(principalID string, variant models.PrincipalVariant, role models.Role) (string, error) {
	return s.generate(TokenTypeAccess, principalID, variant, role)
}

// ParseAccessToken проверяет подпись и срок действия access токена
func (s *hmacTokenService) ParseAccessToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ParseRefreshToken проверяет подпись и срок действия refresh токена
func (s *hmacTokenService) ParseRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (s *hmacTokenService) generate(tokenType, principalID string, variant models.PrincipalVariant, role models.Role) (string, error) {
	now := s.now()

	secret := s.accessSecret
	ttl := s.accessTTL
	if tokenType == TokenTypeRefresh {
		secret = s.refreshSecret
		ttl = s.refreshTTL
	}
	if len(secret) == 0 || ttl <= 0 {
		return "", ErrTokenInvalid
	}

	claims := Claims{
		PrincipalID: principalID,
		Variant:     variant,
		Role:        role,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *hmacTokenService) parse(tokenString string, secret []byte) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if token == nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return &claims, nil
}
