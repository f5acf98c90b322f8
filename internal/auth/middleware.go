package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Middleware resolves the bearer token into a Caller. It never aborts:
// anonymous callers continue and the service layer decides whether the
// operation needs an identity.
func Middleware(verifier *TokenVerifier) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}
		caller, err := verifier.Verify(header)
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.FullPath()).Msg("Ignoring invalid bearer token")
			ctx.Next()
			return
		}
		ctx.Set(callerKey, caller)
		ctx.Next()
	}
}
