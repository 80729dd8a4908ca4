// Package auth проверяет учётные данные администратора и выдаёт JWT.
// Все admin-маршруты HTTP и методы gRPC проходят через Gate.Authenticate.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

const (
	issuer = "cardapio"

	// DefaultUsername и DefaultPassword, учётные данные для локального запуска.
	DefaultUsername = "admin"
	DefaultPassword = "admin123"

	defaultTokenTTL = 12 * time.Hour
)

// ErrInvalidCredentials: неверный логин или пароль.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

// Principal: аутентифицированный администратор.
type Principal struct {
	Username  string
	ExpiresAt time.Time
}

// Token: выданный токен доступа.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// HashPassword возвращает bcrypt-хеш пароля.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Credentials хранит логин и bcrypt-хеш пароля администратора.
type Credentials struct {
	username     string
	passwordHash []byte
}

// NewCredentials создаёт учётные данные. Если hash пустой, хешируется password.
func NewCredentials(username, password, hash string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, errors.New("admin username is required")
	}
	if hash == "" {
		if password == "" {
			return Credentials{}, errors.New("admin password or password hash is required")
		}
		var err error
		if hash, err = HashPassword(password); err != nil {
			return Credentials{}, err
		}
	}
	return Credentials{username: username, passwordHash: []byte(hash)}, nil
}

// Verify сверяет логин и пароль.
func (c Credentials) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(c.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type claims struct {
	jwt.RegisteredClaims
}

// TokenManager подписывает и проверяет HS256-токены.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager создаёт менеджер токенов.
func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue выдаёт токен для username.
func (m *TokenManager) Issue(username string) (Token, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

// Parse проверяет подпись и срок действия токена.
func (m *TokenManager) Parse(raw string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	p := Principal{Username: c.Subject}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p, nil
}

// Gate: единая точка проверки доступа администратора.
type Gate struct {
	credentials Credentials
	tokens      *TokenManager
	required    bool
}

// NewGate создаёт Gate. При required=false любой запрос считается запросом администратора.
func NewGate(credentials Credentials, tokens *TokenManager, required bool) *Gate {
	return &Gate{credentials: credentials, tokens: tokens, required: required}
}

// Required сообщает, включена ли проверка.
func (g *Gate) Required() bool {
	return g.required
}

// Login проверяет логин и пароль и выдаёт токен.
func (g *Gate) Login(username, password string) (Token, error) {
	if err := g.credentials.Verify(username, password); err != nil {
		return Token{}, err
	}
	return g.tokens.Issue(g.credentials.username)
}

// Authenticate проверяет bearer-токен и кладёт Principal в контекст.
func (g *Gate) Authenticate(ctx context.Context, bearer string) (context.Context, Principal, error) {
	if !g.required {
		p := Principal{Username: g.credentials.username}
		return WithPrincipal(ctx, p), p, nil
	}
	if bearer == "" {
		return ctx, Principal{}, domain.ErrUnauthorized
	}
	p, err := g.tokens.Parse(bearer)
	if err != nil {
		return ctx, Principal{}, err
	}
	return WithPrincipal(ctx, p), p, nil
}

// BearerToken извлекает токен из значения заголовка "Bearer <token>".
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

type principalKey struct{}

// WithPrincipal сохраняет администратора в контексте запроса.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom возвращает администратора из контекста.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
