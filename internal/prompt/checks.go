// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package prompt

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/go-playground/validator"

	"vrooli/cli/internal/errors"
)

// emailShape is the local@domain.tld form the API accepts for sign-in.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Email accepts strings shaped like local@domain.tld.
func Email(s string) error {
	if err := validate.Var(s, "required,emailshape"); err != nil {
		return errors.New(errors.Validation, "enter a valid email address (name@domain.tld)")
	}
	return nil
}

// NonEmpty rejects blank answers. what names the value in the message.
func NonEmpty(what string) Check {
	return func(s string) error {
		if err := validate.Var(s, "required"); err != nil {
			return errors.New(errors.Validation, what+" cannot be empty")
		}
		return nil
	}
}

// MinLength rejects answers shorter than n characters.
func MinLength(n int) Check {
	tag := "required,min=" + strconv.Itoa(n)
	return func(s string) error {
		if err := validate.Var(s, tag); err != nil {
			return errors.New(errors.Validation, fmt.Sprintf("password must be at least %d characters", n))
		}
		return nil
	}
}

// Equals rejects answers that differ from other.
func Equals(other, what string) Check {
	return func(s string) error {
		if err := validate.VarWithValue(s, other, "eqfield"); err != nil {
			return errors.New(errors.Validation, what+" do not match")
		}
		return nil
	}
}
