package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/printhaus/storefront-platform/internal/utils/response"
)

// ParseAndValidate decodes the JSON body into dest and validates it,
// writing the error response itself on failure.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()), slog.String("endpoint", r.URL.Path))
		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		response.WriteJson(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid input data")))

		return false
	}

	return true
}
