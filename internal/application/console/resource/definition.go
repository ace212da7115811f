// Package resource describe cada entidad de la consola (columnas, campos, filtros, codecs)
// y enlaza los controladores de listado, formulario y borrado de una sesión.
package resource

import (
	"context"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/invalidate"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
)

// FieldKind tipo de control del formulario.
type FieldKind string

const (
	Text        FieldKind = "text"
	TextArea    FieldKind = "textarea"
	Number      FieldKind = "number"
	Decimal     FieldKind = "decimal"
	Date        FieldKind = "date"
	Email       FieldKind = "email"
	Select      FieldKind = "select"
	MultiSelect FieldKind = "multiselect"
)

// InputType atributo type del input HTML para los controles simples.
func (k FieldKind) InputType() string {
	switch k {
	case Number, Decimal:
		return "number"
	case Date:
		return "date"
	case Email:
		return "email"
	default:
		return "text"
	}
}

// Option valor de un selector.
type Option struct {
	Value string
	Label string
}

// OptionSource carga las opciones de un selector desde el backend (ej. los stacks para un pallet).
type OptionSource func(ctx context.Context) ([]Option, error)

// Field definición de un campo del formulario.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool
	Options  []Option     // opciones fijas (enums)
	Source   OptionSource // opciones cargadas; tiene prioridad sobre Options
	Hint     string
}

// Column columna de la tabla.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Filters filtros que admite el listado además de la búsqueda libre.
type Filters struct {
	Statuses  []string
	DateRange bool
}

// Service operaciones del backend que usa una entidad.
type Service[T any, In any] interface {
	Search(ctx context.Context, q dto.ListQuery) (dto.Page[T], error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in In) (*T, error)
	Update(ctx context.Context, id string, in In) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Meta datos de la entidad que no dependen del tipo de registro.
type Meta struct {
	Kind      string // segmento de la ruta y clave de invalidación (ej. "sub-categories")
	Title     string // "Sub-Categories"
	Noun      string // "sub-category"
	NounTitle string // "Sub-Category"
	AdminOnly bool
	Filters   Filters
	Export    bool // admite exportación CSV
	Report    bool // admite reporte PDF
}

// Path ruta del listado en la consola.
func (m Meta) Path() string { return "/dashboard/" + m.Kind }

// Definition descriptor completo de una entidad.
type Definition[T any, In any] struct {
	Meta    Meta
	Columns []Column[T]
	Fields  []Field
	ID      func(T) string
	Label   func(T) string // identificador visible en el aviso de borrado
	ToInput func(T) In
	Codec   form.Codec[In]
	Service Service[T, In]
}

// Deps dependencias de sesión con las que se enlazan los controladores.
type Deps struct {
	Bus        *invalidate.Bus
	Notifier   *notify.Channel
	Validator  *form.Validator
	PageSize   int
	Debounce   time.Duration
	StaleAfter time.Duration
	Now        func() time.Time
}

// Binder lo implementan las definiciones: crea el Handle de una sesión.
type Binder interface {
	Describe() Meta
	Bind(deps Deps) Handle
}

// Describe implementa Binder.
func (d *Definition[T, In]) Describe() Meta { return d.Meta }

// Bind implementa Binder.
func (d *Definition[T, In]) Bind(deps Deps) Handle {
	return newBinding(d, deps)
}
