package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	modeRandom = "random"
	modeDaily  = "daily"
)

// gameClaims is carried by the game token.
type gameClaims struct {
	GameID string `json:"gid"`
	Mode   string `json:"mode"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies game tokens and manages the token cookie.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	cookie string
	secure bool
}

// sign creates an HS256 token bound to one game.
func (t tokenIssuer) sign(gameID, mode string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, gameClaims{
		GameID: gameID,
		Mode:   mode,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse verifies a token string and returns its claims.
func (t tokenIssuer) parse(raw string) (*gameClaims, error) {
	claims := &gameClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.GameID == "" {
		return nil, errors.New("invalid game token")
	}
	return claims, nil
}

// setCookie writes the game token cookie with appropriate security attributes.
func (t tokenIssuer) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if t.secure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     t.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or cookie.
func (t tokenIssuer) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(t.cookie); err == nil {
		return c.Value
	}
	return ""
}

// ctxClaimsKey is the context key type for the verified game claims.
type ctxClaimsKey struct{}

// requireGameToken enforces a valid game token and injects its claims.
func (s *Server) requireGameToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := s.tokens.bearerOrCookie(r)
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "missing_token")
				return
			}
			claims, err := s.tokens.parse(raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			ctx := context.WithValue(r.Context(), ctxClaimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the claims placed by requireGameToken.
func claimsFrom(ctx context.Context) *gameClaims {
	c, _ := ctx.Value(ctxClaimsKey{}).(*gameClaims)
	return c
}
