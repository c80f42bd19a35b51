package policygen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the `validate` struct tags of the configuration types.
// Field names in errors are the YAML keys users write.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and maps failures to sentinel errors.
// All failures are reported together.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	typ := reflect.Indirect(reflect.ValueOf(v)).Type()
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(typ, fe))
	}
	return errors.Join(errs...)
}

// fieldError converts one validator failure into a wrapped sentinel.
// typ is the validated struct; it maps field names in tag parameters to
// their YAML keys.
func fieldError(typ reflect.Type, fe validator.FieldError) error {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	case "required_without", "required_without_all":
		alts := strings.Fields(fe.Param())
		for i, name := range alts {
			alts[i] = yamlKey(typ, name)
		}
		return fmt.Errorf("%w: %s (or %s)", ErrMissingField, field, strings.Join(alts, ", "))
	case "email":
		return fmt.Errorf("%w: %s = %q", ErrInvalidEmail, field, fe.Value())
	default:
		return fmt.Errorf("%w: %s (%s=%s)", ErrInvalidValue, field, fe.Tag(), fe.Param())
	}
}

// yamlKey returns the YAML key of the named field of typ, or name itself
// when typ has no such field.
func yamlKey(typ reflect.Type, name string) string {
	if typ.Kind() != reflect.Struct {
		return name
	}
	f, ok := typ.FieldByName(name)
	if !ok {
		return name
	}
	if key := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]; key != "" && key != "-" {
		return key
	}
	return name
}
