package auth

import "github.com/gin-gonic/gin"

// Caller is the resolved identity of whoever issued a request. The zero
// value is an anonymous caller.
type Caller struct {
	UserID string
}

func (c Caller) Authenticated() bool {
	return c.UserID != ""
}

const callerKey = "auth.caller"

// CallerFrom returns the caller stored by Middleware, or an anonymous one.
func CallerFrom(ctx *gin.Context) Caller {
	if v, ok := ctx.Get(callerKey); ok {
		if caller, ok := v.(Caller); ok {
			return caller
		}
	}
	return Caller{}
}
