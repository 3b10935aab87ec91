// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/errors"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps request bodies, the largest wizard input is a 2000 char note
var MaxBody int64 = 64 << 10

// messages replace the stock english translations with short ones
// {0} is the json field name, {1} the tag parameter
var messages = map[string]string{
	"required":   "{0} is required",
	"min":        "{0} must be at least {1}",
	"max":        "{0} must be at most {1}",
	"gt":         "{0} must be greater than {1}",
	"oneof":      "{0} must be one of [{1}]",
	"numeric":    "{0} must contain digits only",
	"printascii": "{0} must be printable ASCII",
}

var (
	once  sync.Once
	valid *validator.Validate
	trans ut.Translator
)

func setup() {
	once.Do(func() {
		loc := en.New()
		trans, _ = ut.New(loc, loc).GetTranslator("en")

		valid = validator.New(validator.WithRequiredStructEnabled())
		valid.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = en_translations.RegisterDefaultTranslations(valid, trans)
		for tag, msg := range messages {
			translate(tag, msg)
		}
	})
}

func translate(tag, msg string) {
	_ = valid.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// RegisterTag adds a custom validation tag with its message
// call it before the first request is bound, eg from an init func
func RegisterTag(tag, msg string, fn func(value string) bool) error {
	setup()
	err := valid.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
	if err != nil {
		return err
	}
	translate(tag, msg)
	return nil
}

// ParseJSON decodes the body into T and validates it
// unknown fields, trailing data and an empty body are JSON errors,
// a failed rule is a validation error naming the field
func ParseJSON[T any](r *http.Request) (T, error) {
	setup()
	var zero, dst T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, perr.JSONErrf("empty body")
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := valid.Struct(dst); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) || len(ve) == 0 {
			logger.C(r.Context()).Error().Err(err).Msg("validator misuse")
			return zero, perr.JSONErrf("validation error")
		}
		return zero, perr.Validationf(ve[0].Field(), "%s", ve[0].Translate(trans))
	}
	return dst, nil
}
