package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/frrrancoelgori-ui/joyeria/services"
)

// RequestValidator handles input validation for admin payloads.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Struct validates a bound payload and flattens violations into one message.
func (rv *RequestValidator) Struct(v interface{}) error {
	err := rv.validate.Struct(v)
	if err == nil {
		return nil
	}

	var violations []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			violations = append(violations, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(violations, "; "))
	}
	return err
}

// respondError writes a service error as the standard JSON error shape.
func respondError(c *gin.Context, err *services.ServiceError) {
	c.JSON(err.StatusCode, gin.H{"error": err.Message})
}
