package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rwooga/paycore/internal/core/domain"
	"github.com/rwooga/paycore/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const authPayloadKey = "auth_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(authPayloadKey, payload)

		ctx.Next()
	}
}

// adminCheck layers on authCheck; the token must carry the admin role.
func adminCheck() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !getActor(ctx).IsAdmin() {
			handleAbort(ctx, domain.ErrForbidden)
			return
		}
		ctx.Next()
	}
}

func getActor(ctx *gin.Context) domain.Actor {
	return ctx.MustGet(authPayloadKey).(*port.TokenPayload).Actor()
}
