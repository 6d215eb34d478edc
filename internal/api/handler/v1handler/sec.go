package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"timeservice/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// Sec verifies RS256 bearer tokens on v1 endpoints.
type Sec struct {
	key *rsa.PublicKey
}

// NewSec parses the PEM-encoded RSA public key used to verify tokens.
func NewSec(publicKeyPEM string) (*Sec, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Sec{key: key}, nil
}

// subjectKey is the context key under which the token subject is stored.
type subjectKey struct{}

// SubjectFromContext returns the authenticated token subject, or "" when the
// request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey{}).(string)

	return s
}

// Middleware rejects requests without a valid bearer token and stores the
// token subject in the request context.
func (s *Sec) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims,
			func(*jwt.Token) (any, error) { return s.key, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil || !parsed.Valid {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "invalid bearer token"))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, subjectKey{}, claims.Subject)))
	})
}
