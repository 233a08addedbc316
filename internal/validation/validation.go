// Package validation normalizes and checks typed inputs before they reach a
// repository. Every function is pure: it returns either the cleaned input or a
// VALIDATION_FAILED error whose details map json field names to the failed rule.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

var (
	validate      *validator.Validate
	usernameChars = regexp.MustCompile(`^[\w.@+-]+$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameChars.MatchString(fl.Field().String())
	})
}

// Ticket trims and validates a ticket payload.
func Ticket(in domain.TicketInput) (domain.TicketInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageRef = trimOptional(in.ImageRef)
	if err := check(in); err != nil {
		return domain.TicketInput{}, err
	}
	return in, nil
}

// Review trims and validates a review payload.
func Review(in domain.ReviewInput) (domain.ReviewInput, error) {
	in.Headline = strings.TrimSpace(in.Headline)
	in.Body = strings.TrimSpace(in.Body)
	if err := check(in); err != nil {
		return domain.ReviewInput{}, err
	}
	return in, nil
}

// Credentials validates signup and login input. Passwords are not trimmed.
func Credentials(in domain.Credentials) (domain.Credentials, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := check(in); err != nil {
		return domain.Credentials{}, err
	}
	return in, nil
}

// Follow validates the follow form.
func Follow(in domain.FollowInput) (domain.FollowInput, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := check(in); err != nil {
		return domain.FollowInput{}, err
	}
	return in, nil
}

// Merge folds several validation failures into one error, keeping every field.
func Merge(errs ...error) error {
	details := map[string]any{}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var domainErr *errorutil.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != errorutil.CodeValidationFailed {
			return err
		}
		for k, v := range domainErr.Details {
			details[k] = v
		}
	}
	if len(details) == 0 {
		return nil
	}
	return errorutil.NewValidationError("validation failed", details)
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errorutil.NewValidationError("validation failed", nil)
	}
	details := make(map[string]any, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field()] = fieldMessage(fe)
	}
	return errorutil.NewValidationError("validation failed", details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "username":
		return "may contain only letters, digits and @/./+/-/_"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
