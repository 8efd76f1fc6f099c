// Package service contains the business logic layer: validation, business
// rules, and orchestration between the auth utilities and the repositories.
// Services accept plain params structs and return domain errors — they know
// nothing about HTTP.
package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sakif/gamepad-api/internal/apperror"
)

// validate is the shared validator instance. validator.Validate is safe for
// concurrent use and caches struct metadata, so one instance serves every
// service.
var validate = validator.New()

// checkParams runs struct-tag validation on a params value and converts the
// first failure into the domain's MissingParameters error.
//
// All request validation in this API is presence validation — every rule is
// a `validate:"required"` tag — so the 400 message is always the same
// "Missing parameters" regardless of which field was absent. The offending
// field name still rides along on the AppError for logging.
func checkParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperror.MissingParameters(strings.ToLower(verrs[0].Field()))
	}

	// Not a field failure — a misused validator (e.g. non-struct argument).
	return err
}
