// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-app-scaffold/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates API request bodies against their `validate`
// struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] that reports field
// names by their JSON tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj, which must be one of the request models, either by
// value or by pointer. When fields are given only those JSON fields are
// checked.
//
// Violations are reported as [ErrInvalidRequest] wrapping a readable list
// of failed fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.CreateUserRequest, *models.CreateUserRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateItemRequest, *models.CreateItemRequest,
		models.UpdateItemRequest, *models.UpdateItemRequest,
		models.VerifyPasswordRequest, *models.VerifyPasswordRequest:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		structFields, mapErr := structFieldNames(obj, fields)
		if mapErr != nil {
			return mapErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, structFields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

// structFieldNames maps JSON field names to Go struct field names, which is
// what StructPartial expects.
func structFieldNames(obj any, jsonFields []string) ([]string, error) {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make([]string, 0, len(jsonFields))
	for _, name := range jsonFields {
		found := false
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if strings.SplitN(f.Tag.Get("json"), ",", 2)[0] == name {
				out = append(out, f.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return out, nil
}

func describe(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}
