package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arieldiaz/bitacora/api"
)

func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")

		c.AbortWithStatusJSON(http.StatusInternalServerError, api.Error{
			Error:   "Internal server error",
			Message: "Ocurrió un error inesperado",
		})
	}
}
