package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

var (
	upperCaseRe   = regexp.MustCompile(`[A-Z]`)
	digitRe       = regexp.MustCompile(`\d`)
	specialCharRe = regexp.MustCompile(`[@#$%^&*!]`)
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type Response struct {
	Message string `json:"message"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validate.RegisterValidation("strongpassword", validateStrongPassword); err != nil {
		return err
	}

	return Validate.RegisterTranslation("strongpassword", trans,
		func(ut ut.Translator) error {
			return ut.Add("strongpassword",
				"{0} must be at least 8 characters with an upper case letter, a digit and one of @#$%^&*!", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("strongpassword", fe.Field())
			return t
		},
	)
}

// validateStrongPassword mirrors the sign-up form rules.
func validateStrongPassword(fl validator.FieldLevel) bool {
	pwd := fl.Field().String()

	return len(pwd) >= 8 &&
		upperCaseRe.MatchString(pwd) &&
		digitRe.MatchString(pwd) &&
		specialCharRe.MatchString(pwd)
}

func ValidateSingleError(req interface{}) error {
	if err := Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return errors.New(ve[0].Translate(trans))
		}
		return err
	}
	return nil
}
