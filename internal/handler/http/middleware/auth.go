package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/viniciussvasques/innexar-hr/internal/domain/user"
	"github.com/viniciussvasques/innexar-hr/internal/handler/http/response"
	"github.com/viniciussvasques/innexar-hr/internal/pkg/jwt"
)

func AuthRequired(ja *jwtauth.JWTAuth, jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			raw := jwtauth.TokenFromHeader(r)
			if raw != "" && jwtService.IsTokenRevoked(raw) {
				response.HandleError(w, user.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
