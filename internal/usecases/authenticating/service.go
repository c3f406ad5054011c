package authenticating

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/config"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 12 * time.Hour

type Authenticator interface {
	Login(email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o administrador único configurado por ADMIN_EMAIL / ADMIN_PASSWORD_HASH
type Service struct {
	secret       []byte
	tokenTTL     time.Duration
	adminEmail   string
	passwordHash []byte
	now          func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	if cfg.AdminPasswordHash == "" {
		logrus.Warn("ADMIN_PASSWORD_HASH não configurado: login administrativo desabilitado")
	}

	return &Service{
		secret:       []byte(cfg.Secret),
		tokenTTL:     ttl,
		adminEmail:   handleEmail(cfg.AdminEmail),
		passwordHash: []byte(cfg.AdminPasswordHash),
		now:          time.Now,
	}
}

func handleEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (s *Service) Login(email, password string) (*domain.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if len(s.passwordHash) == 0 {
		return nil, ErrLoginDisabled
	}

	emailMatches := subtle.ConstantTimeCompare([]byte(handleEmail(email)), []byte(s.adminEmail)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !emailMatches || passwordErr != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.generateJWT(expiresAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token de autenticação: %w", err)
	}

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func (s *Service) generateJWT(expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserEmail: s.adminEmail,
		UserRole:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminEmail,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
