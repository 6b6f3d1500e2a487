// Package validation wires go-playground/validator with the blog's own tags.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"yatube/internal/core/apperror"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// New returns a validator that knows the `slug` tag and a `forbidden` tag
// rejecting strings that contain any of words, case-insensitively.
func New(forbidden []string) *validator.Validate {
	v := validator.New()

	words := make([]string, 0, len(forbidden))
	for _, w := range forbidden {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, strings.ToLower(w))
		}
	}

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("forbidden", func(fl validator.FieldLevel) bool {
		text := strings.ToLower(fl.Field().String())
		for _, w := range words {
			if strings.Contains(text, w) {
				return false
			}
		}
		return true
	})
	return v
}

// Translate converts validator errors into an *apperror.ValidationError keyed by
// the lower-cased field name. Other errors are returned unchanged.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &apperror.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		ve.Fields[fieldName(fe.Field())] = message(fe)
	}
	return ve
}

func fieldName(f string) string {
	switch f {
	case "GroupID":
		return "group"
	}
	return strings.ToLower(f)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "forbidden":
		return "text contains a forbidden word"
	case "slug":
		return "use only letters, numbers, underscores or hyphens"
	case "max":
		return "ensure this value has at most " + fe.Param() + " characters"
	case "uuid":
		return "select a valid choice"
	}
	return "invalid value"
}
