package resource

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/console/list"
	"github.com/jhoicas/assettrack-console/internal/application/console/notify"
	"github.com/jhoicas/assettrack-console/internal/application/console/remove"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/domain"
)

// maxOptionLoads consultas simultáneas de opciones al abrir un formulario.
const maxOptionLoads = 4

// Handle controladores de una entidad dentro de una sesión, sin exponer el tipo de registro.
type Handle interface {
	Meta() Meta
	Query() dto.ListQuery
	Table(ctx context.Context, q dto.ListQuery) (TableView, error)
	Search(ctx context.Context, text string) (settled bool, view TableView, err error)
	OpenCreate(ctx context.Context) (FormView, error)
	OpenEdit(ctx context.Context, id string) (FormView, error)
	Submit(ctx context.Context, id string, values url.Values) (ok bool, view FormView, err error)
	CloseForm()
	ConfirmDelete(ctx context.Context, id string) (DialogView, error)
	Delete(ctx context.Context, id string) (ok bool, view DialogView, err error)
	CancelDelete()
}

// RowView fila renderizable.
type RowView struct {
	ID    string
	Label string
	Cells []string
}

// TableView estado del listado para la plantilla.
type TableView struct {
	Meta    Meta
	Headers []string
	Rows    []RowView
	Query   dto.ListQuery
	Total   int
	Pages   int
	Loading bool
	Empty   bool
	Error   string
}

// HasPrev hay página anterior.
func (v TableView) HasPrev() bool { return v.Query.Page > 1 }

// HasNext hay página siguiente.
func (v TableView) HasNext() bool { return v.Query.Page < v.Pages }

// PageURL enlace a la página n conservando búsqueda y filtros.
func (v TableView) PageURL(n int) string {
	q := url.Values{}
	q.Set("page", fmt.Sprint(n))
	q.Set("size", fmt.Sprint(v.Query.Size))
	if v.Query.Keyword != "" {
		q.Set("q", v.Query.Keyword)
	}
	if v.Query.Status != "" {
		q.Set("status", v.Query.Status)
	}
	if v.Query.From != "" {
		q.Set("from", v.Query.From)
	}
	if v.Query.To != "" {
		q.Set("to", v.Query.To)
	}
	return v.Meta.Path() + "?" + q.Encode()
}

// FieldView campo con su valor y error actuales.
type FieldView struct {
	Field
	Value   string
	Values  []string
	Error   string
	Options []Option
}

// Selected indica si value está elegido (selectores simples y múltiples).
func (f FieldView) Selected(value string) bool {
	for _, v := range f.Values {
		if v == value {
			return true
		}
	}
	return false
}

// FormView estado del modal de alta/edición.
type FormView struct {
	Meta     Meta
	Open     bool
	Editing  bool
	RecordID string
	Fields   []FieldView
	Pending  bool
	Error    string
}

// Action ruta a la que se envía el formulario.
func (v FormView) Action() string {
	if v.Editing {
		return v.Meta.Path() + "/" + url.PathEscape(v.RecordID)
	}
	return v.Meta.Path()
}

// Heading título del modal.
func (v FormView) Heading() string {
	if v.Editing {
		return "Edit " + v.Meta.NounTitle
	}
	return "New " + v.Meta.NounTitle
}

// DialogView estado del diálogo de borrado.
type DialogView struct {
	Meta    Meta
	Open    bool
	ID      string
	Label   string
	Prompt  string
	Pending bool
}

// Action ruta de confirmación.
func (v DialogView) Action() string {
	return v.Meta.Path() + "/" + url.PathEscape(v.ID) + "/delete"
}

type binding[T any, In any] struct {
	def    *Definition[T, In]
	deps   Deps
	list   *list.Controller[T]
	form   *form.Controller[In]
	remove *remove.Controller
}

func newBinding[T any, In any](def *Definition[T, In], deps Deps) *binding[T, In] {
	b := &binding[T, In]{def: def, deps: deps}
	b.list = list.New[T](def.Service.Search, list.Options{
		Kind:       def.Meta.Kind,
		PageSize:   deps.PageSize,
		Debounce:   deps.Debounce,
		StaleAfter: deps.StaleAfter,
		Versions:   deps.Bus,
		Notifier:   notifier(deps.Notifier),
		Now:        deps.Now,
	})
	b.form = form.New[In](def.Codec,
		func(ctx context.Context, in In) error {
			_, err := def.Service.Create(ctx, in)
			return err
		},
		func(ctx context.Context, id string, in In) error {
			_, err := def.Service.Update(ctx, id, in)
			return err
		},
		form.Options{
			Kind:      def.Meta.Kind,
			Noun:      def.Meta.NounTitle,
			Bus:       deps.Bus,
			Notifier:  notifier(deps.Notifier),
			Validator: deps.Validator,
		},
	)
	b.remove = remove.New(def.Service.Delete, remove.Options{
		Kind:     def.Meta.Kind,
		Noun:     def.Meta.Noun,
		Bus:      deps.Bus,
		Notifier: notifier(deps.Notifier),
	})
	if deps.Bus != nil {
		// Una mutación de este tipo (desde cualquier modal de la sesión) vence la página en caché.
		deps.Bus.Subscribe(def.Meta.Kind, func(string, uint64) { b.list.Invalidate() })
	}
	return b
}

// notifier evita guardar un *notify.Channel nil dentro de una interfaz no nil.
func notifier(ch *notify.Channel) list.Notifier {
	if ch == nil {
		return nil
	}
	return ch
}

func (b *binding[T, In]) Meta() Meta { return b.def.Meta }

func (b *binding[T, In]) Query() dto.ListQuery { return b.list.Snapshot().Query }

func (b *binding[T, In]) Table(ctx context.Context, q dto.ListQuery) (TableView, error) {
	b.list.SetQuery(q)
	err := b.list.Load(ctx)
	return b.tableView(), err
}

func (b *binding[T, In]) Search(ctx context.Context, text string) (bool, TableView, error) {
	settled, err := b.list.Search(ctx, text)
	if !settled && err == nil {
		return false, TableView{}, nil
	}
	return settled, b.tableView(), err
}

func (b *binding[T, In]) OpenCreate(ctx context.Context) (FormView, error) {
	if err := b.form.OpenCreate(); err != nil {
		return FormView{}, err
	}
	return b.formView(ctx, true), nil
}

func (b *binding[T, In]) OpenEdit(ctx context.Context, id string) (FormView, error) {
	if err := b.openEdit(ctx, id); err != nil {
		return FormView{}, err
	}
	return b.formView(ctx, true), nil
}

func (b *binding[T, In]) Submit(ctx context.Context, id string, values url.Values) (bool, FormView, error) {
	current := b.form.View()
	switch {
	case current.Pending:
		return false, FormView{}, domain.ErrBusy
	case id == "" && current.Mode != form.Creating:
		if err := b.form.OpenCreate(); err != nil {
			return false, FormView{}, err
		}
	case id != "" && (current.Mode != form.Editing || current.RecordID != id):
		if err := b.openEdit(ctx, id); err != nil {
			return false, FormView{}, err
		}
	}
	b.form.Bind(values)
	ok, err := b.form.Submit(ctx)
	if ok {
		return true, FormView{Meta: b.def.Meta}, nil
	}
	if errors.Is(err, domain.ErrBusy) {
		return false, FormView{}, err
	}
	return false, b.formView(ctx, false), err
}

func (b *binding[T, In]) CloseForm() { b.form.Close() }

func (b *binding[T, In]) ConfirmDelete(ctx context.Context, id string) (DialogView, error) {
	if id == "" {
		return DialogView{}, domain.ErrNoSelection
	}
	if b.remove.View().Pending {
		return DialogView{}, domain.ErrBusy
	}
	label := id
	if rec, err := b.record(ctx, id); err == nil {
		label = b.def.Label(rec)
	} else if !isNotFound(err) {
		return DialogView{}, err
	}
	if err := b.remove.Target(id, label); err != nil {
		return DialogView{}, err
	}
	return b.dialogView(), nil
}

func (b *binding[T, In]) Delete(ctx context.Context, id string) (bool, DialogView, error) {
	if v := b.remove.View(); !v.Open || v.ID != id {
		if _, err := b.ConfirmDelete(ctx, id); err != nil {
			return false, DialogView{}, err
		}
	}
	ok, err := b.remove.Confirm(ctx)
	return ok, b.dialogView(), err
}

func (b *binding[T, In]) CancelDelete() { b.remove.Cancel() }

func (b *binding[T, In]) openEdit(ctx context.Context, id string) error {
	rec, err := b.record(ctx, id)
	if err != nil {
		return err
	}
	return b.form.OpenEdit(id, b.def.ToInput(rec))
}

// record busca primero en la página en caché y, si no está, lo pide al backend.
func (b *binding[T, In]) record(ctx context.Context, id string) (T, error) {
	if rec, ok := b.list.Find(func(r T) bool { return b.def.ID(r) == id }); ok {
		return rec, nil
	}
	var zero T
	rec, err := b.def.Service.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, domain.ErrNotFound
	}
	return *rec, nil
}

func (b *binding[T, In]) tableView() TableView {
	st := b.list.Snapshot()
	v := TableView{
		Meta:    b.def.Meta,
		Headers: make([]string, 0, len(b.def.Columns)),
		Rows:    make([]RowView, 0, len(st.Rows)),
		Query:   st.Query,
		Total:   st.Total,
		Pages:   st.Pages,
		Loading: st.Loading,
		Empty:   st.Empty(),
	}
	for _, c := range b.def.Columns {
		v.Headers = append(v.Headers, c.Header)
	}
	for _, r := range st.Rows {
		cells := make([]string, 0, len(b.def.Columns))
		for _, c := range b.def.Columns {
			cells = append(cells, c.Value(r))
		}
		v.Rows = append(v.Rows, RowView{ID: b.def.ID(r), Label: b.def.Label(r), Cells: cells})
	}
	if st.Err != nil {
		v.Error = domain.UserMessage(st.Err, "Could not load data.")
	}
	return v
}

// formView arma el modal. Los avisos de opciones que no cargaron solo se publican al abrirlo
// (announce): tras un envío fallido el canal tiene el error del backend.
func (b *binding[T, In]) formView(ctx context.Context, announce bool) FormView {
	fv := b.form.View()
	v := FormView{
		Meta:     b.def.Meta,
		Open:     fv.Open(),
		Editing:  fv.Mode == form.Editing,
		RecordID: fv.RecordID,
		Pending:  fv.Pending,
		Fields:   make([]FieldView, 0, len(b.def.Fields)),
	}
	if msg, ok := fv.Errors["_"]; ok {
		v.Error = msg
	}
	// Los selectores se cargan en paralelo; una fuente que falla deja su campo sin opciones.
	loaded := make([][]Option, len(b.def.Fields))
	failed := make([]bool, len(b.def.Fields))
	var g errgroup.Group
	g.SetLimit(maxOptionLoads)
	for i, f := range b.def.Fields {
		if f.Source == nil {
			continue
		}
		g.Go(func() error {
			opts, err := f.Source(ctx)
			if err != nil {
				failed[i] = true
				return nil
			}
			loaded[i] = opts
			return nil
		})
	}
	_ = g.Wait()

	for i, f := range b.def.Fields {
		field := FieldView{
			Field:   f,
			Value:   fv.Values.Get(f.Name),
			Values:  fv.Values[f.Name],
			Error:   fv.Errors[f.Name],
			Options: f.Options,
		}
		switch {
		case failed[i] && announce:
			b.notify(fmt.Sprintf("Could not load options for %s.", f.Label), notify.Warning)
		case f.Source != nil:
			field.Options = loaded[i]
		}
		v.Fields = append(v.Fields, field)
	}
	return v
}

func (b *binding[T, In]) dialogView() DialogView {
	dv := b.remove.View()
	return DialogView{
		Meta:    b.def.Meta,
		Open:    dv.Open,
		ID:      dv.ID,
		Label:   dv.Label,
		Prompt:  dv.Prompt,
		Pending: dv.Pending,
	}
}

func (b *binding[T, In]) notify(msg string, sev notify.Severity) {
	if b.deps.Notifier != nil {
		b.deps.Notifier.Show(msg, sev)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
