package form

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Reader lee valores tipados de un formulario y acumula los errores de tipo por campo.
type Reader struct {
	values url.Values
	errs   map[string]string
}

// NewReader envuelve los valores enviados.
func NewReader(values url.Values) *Reader {
	return &Reader{values: values, errs: map[string]string{}}
}

// String valor recortado.
func (r *Reader) String(name string) string {
	return strings.TrimSpace(r.values.Get(name))
}

// Int entero; vacío = 0.
func (r *Reader) Int(name string) int {
	s := r.String(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.errs[name] = "Must be a whole number"
		return 0
	}
	return n
}

// Int64 entero de 64 bits (identificadores); vacío = 0.
func (r *Reader) Int64(name string) int64 {
	s := r.String(name)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		r.errs[name] = "Must be a whole number"
		return 0
	}
	return n
}

// Int64s lista de identificadores (selección múltiple).
func (r *Reader) Int64s(name string) []int64 {
	raw := r.values[name]
	out := make([]int64, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			r.errs[name] = "Invalid selection"
			continue
		}
		out = append(out, n)
	}
	return out
}

// Decimal importe; vacío = 0.
func (r *Reader) Decimal(name string) decimal.Decimal {
	s := r.String(name)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		r.errs[name] = "Must be a number"
		return decimal.Zero
	}
	return d
}

// Errors errores de tipo acumulados.
func (r *Reader) Errors() map[string]string {
	return r.errs
}

// FormatInt64 helper para Encode: 0 se muestra vacío.
func FormatInt64(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

// FormatInt helper para Encode: 0 se muestra vacío.
func FormatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
