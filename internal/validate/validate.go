// Package validate checks the closed request payloads before they reach the backend.
package validate

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/guregu/null/v6"

	apperrors "github.com/target/subscription-admin/internal/errors"
)

// InvalidInputMessage is the banner shown above a form with field errors.
const InvalidInputMessage = "Please correct the highlighted fields."

var (
	once     sync.Once
	instance *Validator
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validator wraps go-playground/validator with English translations
// and json field names in error messages.
type Validator struct {
	uni      *ut.UniversalTranslator
	validate *validator.Validate
}

// New builds a Validator.
func New() (*Validator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)

	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("register translations: %w", err)
	}

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register slug validation: %w", err)
	}
	if err := v.RegisterTranslation("slug", trans,
		func(t ut.Translator) error {
			return t.Add("slug", "{0} may only contain lowercase letters, numbers and single hyphens", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("slug", fe.Field())
			return msg
		},
	); err != nil {
		return nil, fmt.Errorf("register slug translation: %w", err)
	}

	v.RegisterCustomTypeFunc(
		ParseNullable,
		null.Bool{},
		null.Float{},
		null.Int32{},
		null.Int64{},
		null.String{},
		null.Time{},
	)

	return &Validator{uni: uni, validate: v}, nil
}

// Struct validates s and returns a validation *AppError whose Fields are keyed by json name.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Unable to validate input")
	}

	trans, _ := v.uni.GetTranslator("en")
	fields := make(map[string]string, len(valErrs))
	for _, fe := range valErrs {
		key := fieldKey(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = fe.Translate(trans)
		}
	}

	appErr := apperrors.ValidationFields(InvalidInputMessage, fields)
	if len(fields) == 1 {
		for key := range fields {
			appErr.Field = key
		}
	}
	if encoded, encErr := sonic.Marshal(fields); encErr == nil {
		appErr.Cause = errors.New(string(encoded))
	}
	return appErr
}

// Nullable is satisfied by every guregu/null type.
type Nullable interface {
	driver.Valuer
}

// nilValue is a typed nil so omitnil treats an invalid null.* as absent.
var nilValue *struct{}

// ParseNullable implements validator.CustomTypeFunc for null.* types.
func ParseNullable(field reflect.Value) any {
	if nullValue, ok := field.Interface().(Nullable); ok {
		if val, err := nullValue.Value(); err == nil {
			if val == nil {
				return nilValue
			}
			return val
		}
	}
	return nil
}

// Struct validates s with the shared Validator.
func Struct(s any) error {
	once.Do(func() {
		var err error
		instance, err = New()
		if err != nil {
			panic(fmt.Sprintf("failed to create validator: %v", err))
		}
	})
	return instance.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// fieldKey drops the struct name from the namespace so nested fields read "data.email".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
