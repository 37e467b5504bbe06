// Package registration implements the sign-up form: field validation, the submit guard
// and the submission state machine.
package registration

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Form field names.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword2 = "password2"
)

// PasswordTag is the validation tag of the password composition rule.
const PasswordTag = "passwd"

// Values holds the raw form field values.
type Values struct {
	Username  string `json:"username" validate:"required,min=2,max=20"`
	Email     string `json:"email" validate:"required,email,min=6,max=25"`
	Password  string `json:"password" validate:"required,min=6,max=12,passwd"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

// Errors maps a field name to the message of its first failed rule.
// Fields that pass have no entry.
type Errors map[string]string

func (e Errors) clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}

	return out
}

var messages = map[string]map[string]string{
	FieldUsername: {
		"required": "Required",
		"min":      "Must be at least 2 characters",
		"max":      "Must be up to 20 characters",
	},
	FieldEmail: {
		"required": "Required",
		"email":    "Invalid email address",
		"min":      "Must be at least 6 characters",
		"max":      "Must be up to 25 characters",
	},
	FieldPassword: {
		"required":  "Required",
		"min":       "Must be at least 6 characters",
		"max":       "Must be up to 12 characters",
		PasswordTag: "Password must contain at least 6 characters, one uppercase letter, one lowercase letter, one number",
	},
	FieldPassword2: {
		"required": "Confirm Password is required",
		"eqfield":  "Passwords must match",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	if err := registerRules(v); err != nil {
		panic(err)
	}

	return v
}

// registerRules adds the custom registration rules to v.
func registerRules(v *validator.Validate) error {
	return v.RegisterValidation(PasswordTag, ValidPassword)
}

// ValidPassword requires at least one digit, one lower case and one upper case ASCII letter.
var ValidPassword validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return passwordComposed(s)
}

func passwordComposed(s string) bool {
	var digit, lower, upper bool

	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		}
	}

	return digit && lower && upper
}

// Validate runs every field rule and returns the failures.
func Validate(values Values) Errors {
	errs := make(Errors)

	err := validate.Struct(values)
	if err == nil {
		return errs
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}

	for _, fe := range ve {
		field := fe.Field()
		if _, ok := errs[field]; ok {
			continue
		}

		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}

		errs[field] = msg
	}

	return errs
}
