package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"etats/internal/apperrors"
	"etats/internal/models"
)

// RegisterValidators adds the custom binding tags used by request structs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// respondError writes {message} with the status of err's kind. Internal
// causes are logged and never sent to the client.
func respondError(c *gin.Context, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	log := zerolog.Ctx(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg(fallback)
	} else {
		log.Debug().Err(err).Str("path", c.FullPath()).Msg("request rejected")
	}
	c.JSON(status, gin.H{"message": apperrors.PublicMessage(err, fallback)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

// paramID parses a positive integer path parameter; anything else is 0.
func paramID(c *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func flexID(v models.FlexString) int64 {
	id, err := strconv.ParseInt(v.Trimmed(), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func flexPtr(v *models.FlexString) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
