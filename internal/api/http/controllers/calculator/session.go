package calculator

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apihttp "keypadCalc/internal/api/http"
)

const (
	sessionCookie = "calc_session"
	sessionMaxAge = 24 * 60 * 60
)

// sessionID берёт id сессии из заголовка или cookie; если его нет — создаёт новый и отдаёт клиенту.
func sessionID(ctx *gin.Context) string {
	id := ctx.GetHeader(apihttp.SessionHeader)
	if id == "" {
		if c, err := ctx.Cookie(sessionCookie); err == nil {
			id = c
		}
	}
	if id == "" {
		id = uuid.NewString()
		ctx.SetSameSite(http.SameSiteLaxMode)
		ctx.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
	}
	ctx.Header(apihttp.SessionHeader, id)
	ctx.Set("session_id", id)
	return id
}
