package validators

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adotapet/adota-pet-api/internal/httperr"
)

// FormatBinding turns a gin binding failure into one BadRequest listing every
// violation, not just the first.
func FormatBinding(err error) *httperr.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.BadRequest("invalid_request", "Request body could not be parsed.")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return httperr.BadRequest("validation_failed", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "latitude", "longitude":
		return fmt.Sprintf("%s must be a valid coordinate", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// IDParam parses a numeric path parameter; ids start at 1.
func IDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, httperr.BadRequest(
			"invalid_"+name,
			fmt.Sprintf("%s must be an integer greater than or equal to 1", name),
		)
	}

	return uint(id), nil
}

// AtLeastOneField rejects partial-update bodies where nothing was sent.
func AtLeastOneField(present ...bool) error {
	for _, p := range present {
		if p {
			return nil
		}
	}
	return httperr.BadRequest("empty_update", "At least one field must be provided.")
}
