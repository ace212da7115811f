package form

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator evalúa el esquema declarativo (tags `validate`) de las entradas de formulario
// y devuelve los errores por nombre de campo del formulario (tag `form`).
type Validator struct {
	v *validator.Validate
}

var (
	once     sync.Once
	instance *validator.Validate
)

// NewValidator devuelve un Validator sobre una instancia compartida
// (validator cachea la metainformación de cada struct).
func NewValidator() *Validator {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		// decimal.Decimal se valida como número (min/max).
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		instance = v
	})
	return &Validator{v: instance}
}

// Validate devuelve nil si in es válido o el mapa campo → mensaje.
func (val *Validator) Validate(in any) map[string]string {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Must have at least %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("Select at least %s", fe.Param())
		default:
			return fmt.Sprintf("Must be at least %s", fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("Must have at most %s characters", fe.Param())
		default:
			return fmt.Sprintf("Must be at most %s", fe.Param())
		}
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "Must be a valid email address"
	case "alphanum":
		return "Only letters and numbers are allowed"
	case "datetime":
		return "Must be a date (YYYY-MM-DD)"
	case "nefield":
		return "Must be different from " + fieldLabel(fe.Param())
	case "eqfield":
		return "Must match " + fieldLabel(fe.Param())
	default:
		return "Invalid value"
	}
}

// fieldLabel convierte el nombre Go del campo referido (ej. FromStackID) en texto legible.
func fieldLabel(goName string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range goName {
		isUpper := r >= 'A' && r <= 'Z'
		if isUpper && prevLower {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevLower = !isUpper
	}
	return strings.ToLower(b.String())
}
