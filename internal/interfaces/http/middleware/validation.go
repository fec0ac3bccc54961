package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/interfaces/http/dto"
)

var setupOnce sync.Once

// SetupValidator configures gin's validator: errors report JSON field names
// and the cpf and cnpj tags check digit counts
func SetupValidator() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("cpf", digitCount(11))
		_ = v.RegisterValidation("cnpj", digitCount(14))
	})
}

func digitCount(n int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return len(shared.OnlyDigits(fl.Field().String())) == n
	}
}

// FormatValidationErrors turns a binding error into the 400 envelope.
// Only validator failures carry per-field details; a malformed body or a
// type mismatch gets a bare message.
func FormatValidationErrors(err error, requestID string) dto.Response {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return dto.NewValidationErrorResponse("Invalid request body", requestID, nil)
	}

	details := make([]dto.ValidationDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, dto.ValidationDetail{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
			Tag:     fe.Tag(),
			Value:   fmt.Sprint(fe.Value()),
		})
	}
	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

var fixedMessages = map[string]string{
	"required": "This field is required",
	"email":    "Invalid email format",
	"cpf":      "CPF must have 11 digits",
	"cnpj":     "CNPJ must have 14 digits",
	"uuid":     "Invalid UUID format",
}

var boundMessages = map[string]string{
	"min":   "Must be at least %s",
	"max":   "Must be at most %s",
	"gte":   "Must be greater than or equal to %s",
	"gt":    "Must be greater than %s",
	"oneof": "Must be one of: %s",
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.Tag()]; ok {
		return msg
	}
	format, ok := boundMessages[fe.Tag()]
	if !ok {
		return "Invalid value"
	}
	msg := fmt.Sprintf(format, fe.Param())
	if (fe.Tag() == "min" || fe.Tag() == "max") && fe.Kind() == reflect.String {
		msg += " characters"
	}
	return msg
}
