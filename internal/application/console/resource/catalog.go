package resource

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/assettrack-console/internal/application/console/form"
	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/application/service"
	"github.com/jhoicas/assettrack-console/internal/domain"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// Claves de cada entidad (segmento de ruta e invalidación).
const (
	KindAssets        = "assets"
	KindPallets       = "pallets"
	KindStacks        = "stacks"
	KindMovements     = "movements"
	KindUsers         = "users"
	KindRoles         = "roles"
	KindPermissions   = "permissions"
	KindCategories    = "categories"
	KindSubCategories = "sub-categories"
)

// Catalog reúne las definiciones de todas las entidades en el orden del menú.
type Catalog struct {
	binders map[string]Binder
	order   []string
}

// NewCatalog construye las definiciones sobre los servicios del backend.
func NewCatalog(svc *service.Services) *Catalog {
	c := &Catalog{binders: map[string]Binder{}}
	title := cases.Title(language.English)
	add := func(b Binder) {
		c.binders[b.Describe().Kind] = b
		c.order = append(c.order, b.Describe().Kind)
	}
	meta := func(kind, noun string) Meta {
		return Meta{Kind: kind, Title: title.String(kind), Noun: noun, NounTitle: title.String(noun)}
	}

	stackOptions := func(ctx context.Context) ([]Option, error) {
		all, err := svc.Stacks.All(ctx)
		if err != nil {
			return nil, err
		}
		return options(all, func(s entity.Stack) Option {
			return Option{Value: id64(s.ID), Label: s.Warehouse + " / " + s.Zone}
		}), nil
	}
	categoryOptions := func(ctx context.Context) ([]Option, error) {
		all, err := svc.Categories.All(ctx)
		if err != nil {
			return nil, err
		}
		return options(all, func(c entity.Category) Option { return Option{Value: id64(c.ID), Label: c.Name} }), nil
	}

	add(assetDefinition(meta(KindAssets, "asset"), svc, categoryOptions))
	add(palletDefinition(meta(KindPallets, "pallet"), svc, stackOptions))
	add(stackDefinition(meta(KindStacks, "stack"), svc))
	add(movementDefinition(meta(KindMovements, "movement"), svc, stackOptions))
	add(categoryDefinition(meta(KindCategories, "category"), svc))
	add(subCategoryDefinition(meta(KindSubCategories, "sub-category"), svc, categoryOptions))
	add(userDefinition(meta(KindUsers, "user"), svc))
	add(roleDefinition(meta(KindRoles, "role"), svc))
	add(permissionDefinition(meta(KindPermissions, "permission"), svc))
	return c
}

// Lookup devuelve la definición de kind o domain.ErrUnknownResource.
func (c *Catalog) Lookup(kind string) (Binder, error) {
	b, ok := c.binders[kind]
	if !ok {
		return nil, domain.ErrUnknownResource
	}
	return b, nil
}

// Metas datos de todas las entidades en orden de menú.
func (c *Catalog) Metas() []Meta {
	out := make([]Meta, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.binders[k].Describe())
	}
	return out
}

func assetDefinition(m Meta, svc *service.Services, categoryOptions OptionSource) *Definition[entity.Asset, dto.AssetRequest] {
	m.Filters = Filters{Statuses: entity.AssetStatuses, DateRange: true}
	m.Report = true
	return &Definition[entity.Asset, dto.AssetRequest]{
		Meta: m,
		Columns: []Column[entity.Asset]{
			{Header: "Code", Value: func(a entity.Asset) string { return a.Code }},
			{Header: "Name", Value: func(a entity.Asset) string { return a.Name }},
			{Header: "Serial", Value: func(a entity.Asset) string { return a.SerialNumber }},
			{Header: "Location", Value: func(a entity.Asset) string { return a.Location }},
			{Header: "Status", Value: func(a entity.Asset) string { return a.Status }},
			{Header: "Cost", Value: func(a entity.Asset) string { return a.PurchaseCost.StringFixed(2) }},
			{Header: "Next inspection", Value: func(a entity.Asset) string { return a.NextInspection }},
			{Header: "Compliance due", Value: func(a entity.Asset) string { return a.ComplianceDue }},
		},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "serial_number", Label: "Serial number", Kind: Text},
			{Name: "category_id", Label: "Category", Kind: Select, Required: true, Source: categoryOptions},
			{Name: "sub_category_id", Label: "Sub-category", Kind: Select, Required: true, Source: func(ctx context.Context) ([]Option, error) {
				all, err := svc.SubCategories.All(ctx)
				if err != nil {
					return nil, err
				}
				return options(all, func(s entity.SubCategory) Option {
					label := s.Name
					if s.CategoryName != "" {
						label = s.CategoryName + " / " + s.Name
					}
					return Option{Value: id64(s.ID), Label: label}
				}), nil
			}},
			{Name: "assigned_user_id", Label: "Assigned user", Kind: Select, Source: func(ctx context.Context) ([]Option, error) {
				all, err := svc.Users.All(ctx)
				if err != nil {
					return nil, err
				}
				return options(all, func(u entity.User) Option { return Option{Value: id64(u.ID), Label: u.Username} }), nil
			}},
			{Name: "location", Label: "Location", Kind: Text, Required: true},
			{Name: "status", Label: "Status", Kind: Select, Required: true, Options: enumOptions(entity.AssetStatuses)},
			{Name: "purchase_cost", Label: "Purchase cost", Kind: Decimal},
			{Name: "last_inspection", Label: "Last inspection", Kind: Date},
			{Name: "next_inspection", Label: "Next inspection", Kind: Date},
			{Name: "compliance_due", Label: "Compliance due", Kind: Date},
		},
		ID:    func(a entity.Asset) string { return a.Code },
		Label: func(a entity.Asset) string { return a.Code },
		ToInput: func(a entity.Asset) dto.AssetRequest {
			return dto.AssetRequest{
				Name: a.Name, SerialNumber: a.SerialNumber, CategoryID: a.CategoryID, SubCategoryID: a.SubCategoryID,
				AssignedUserID: a.AssignedUserID, Location: a.Location, Status: a.Status, PurchaseCost: a.PurchaseCost,
				LastInspection: a.LastInspection, NextInspection: a.NextInspection, ComplianceDue: a.ComplianceDue,
			}
		},
		Codec: form.Codec[dto.AssetRequest]{
			Decode: func(r *form.Reader) dto.AssetRequest {
				return dto.AssetRequest{
					Name:           r.String("name"),
					SerialNumber:   r.String("serial_number"),
					CategoryID:     r.Int64("category_id"),
					SubCategoryID:  r.Int64("sub_category_id"),
					AssignedUserID: r.Int64("assigned_user_id"),
					Location:       r.String("location"),
					Status:         r.String("status"),
					PurchaseCost:   r.Decimal("purchase_cost"),
					LastInspection: r.String("last_inspection"),
					NextInspection: r.String("next_inspection"),
					ComplianceDue:  r.String("compliance_due"),
				}
			},
			Encode: func(in dto.AssetRequest) url.Values {
				cost := ""
				if !in.PurchaseCost.IsZero() {
					cost = in.PurchaseCost.String()
				}
				return url.Values{
					"name":             {in.Name},
					"serial_number":    {in.SerialNumber},
					"category_id":      {form.FormatInt64(in.CategoryID)},
					"sub_category_id":  {form.FormatInt64(in.SubCategoryID)},
					"assigned_user_id": {form.FormatInt64(in.AssignedUserID)},
					"location":         {in.Location},
					"status":           {in.Status},
					"purchase_cost":    {cost},
					"last_inspection":  {in.LastInspection},
					"next_inspection":  {in.NextInspection},
					"compliance_due":   {in.ComplianceDue},
				}
			},
			Defaults: func() dto.AssetRequest { return dto.AssetRequest{Status: entity.AssetActive} },
		},
		Service: svc.Assets,
	}
}

func palletDefinition(m Meta, svc *service.Services, stackOptions OptionSource) *Definition[entity.Pallet, dto.PalletRequest] {
	m.Filters = Filters{Statuses: entity.PalletStatuses}
	return &Definition[entity.Pallet, dto.PalletRequest]{
		Meta: m,
		Columns: []Column[entity.Pallet]{
			{Header: "Code", Value: func(p entity.Pallet) string { return p.Code }},
			{Header: "Stack", Value: func(p entity.Pallet) string { return id64(p.StackID) }},
			{Header: "Location", Value: func(p entity.Pallet) string { return p.Location }},
			{Header: "Status", Value: func(p entity.Pallet) string { return p.Status }},
			{Header: "Description", Value: func(p entity.Pallet) string { return p.Description }},
		},
		Fields: []Field{
			{Name: "stack_id", Label: "Stack", Kind: Select, Required: true, Source: stackOptions},
			{Name: "location", Label: "Location", Kind: Text, Required: true},
			{Name: "status", Label: "Status", Kind: Select, Required: true, Options: enumOptions(entity.PalletStatuses)},
			{Name: "description", Label: "Description", Kind: TextArea},
		},
		ID:    func(p entity.Pallet) string { return p.Code },
		Label: func(p entity.Pallet) string { return p.Code },
		ToInput: func(p entity.Pallet) dto.PalletRequest {
			return dto.PalletRequest{StackID: p.StackID, Location: p.Location, Status: p.Status, Description: p.Description}
		},
		Codec: form.Codec[dto.PalletRequest]{
			Decode: func(r *form.Reader) dto.PalletRequest {
				return dto.PalletRequest{
					StackID:     r.Int64("stack_id"),
					Location:    r.String("location"),
					Status:      r.String("status"),
					Description: r.String("description"),
				}
			},
			Encode: func(in dto.PalletRequest) url.Values {
				return url.Values{
					"stack_id":    {form.FormatInt64(in.StackID)},
					"location":    {in.Location},
					"status":      {in.Status},
					"description": {in.Description},
				}
			},
			Defaults: func() dto.PalletRequest { return dto.PalletRequest{Status: entity.PalletAvailable} },
		},
		Service: svc.Pallets,
	}
}

func stackDefinition(m Meta, svc *service.Services) *Definition[entity.Stack, dto.StackRequest] {
	return &Definition[entity.Stack, dto.StackRequest]{
		Meta: m,
		Columns: []Column[entity.Stack]{
			{Header: "ID", Value: func(s entity.Stack) string { return id64(s.ID) }},
			{Header: "Warehouse", Value: func(s entity.Stack) string { return s.Warehouse }},
			{Header: "Zone", Value: func(s entity.Stack) string { return s.Zone }},
			{Header: "Capacity", Value: func(s entity.Stack) string { return strconv.Itoa(s.Capacity) }},
			{Header: "Description", Value: func(s entity.Stack) string { return s.Description }},
		},
		Fields: []Field{
			{Name: "warehouse", Label: "Warehouse", Kind: Text, Required: true},
			{Name: "zone", Label: "Zone", Kind: Text, Required: true},
			{Name: "capacity", Label: "Capacity", Kind: Number, Required: true},
			{Name: "description", Label: "Description", Kind: TextArea},
		},
		ID:    func(s entity.Stack) string { return id64(s.ID) },
		Label: func(s entity.Stack) string { return s.Warehouse + "/" + s.Zone },
		ToInput: func(s entity.Stack) dto.StackRequest {
			return dto.StackRequest{Warehouse: s.Warehouse, Zone: s.Zone, Capacity: s.Capacity, Description: s.Description}
		},
		Codec: form.Codec[dto.StackRequest]{
			Decode: func(r *form.Reader) dto.StackRequest {
				return dto.StackRequest{
					Warehouse:   r.String("warehouse"),
					Zone:        r.String("zone"),
					Capacity:    r.Int("capacity"),
					Description: r.String("description"),
				}
			},
			Encode: func(in dto.StackRequest) url.Values {
				return url.Values{
					"warehouse":   {in.Warehouse},
					"zone":        {in.Zone},
					"capacity":    {form.FormatInt(in.Capacity)},
					"description": {in.Description},
				}
			},
		},
		Service: svc.Stacks,
	}
}

func movementDefinition(m Meta, svc *service.Services, stackOptions OptionSource) *Definition[entity.Movement, dto.MovementRequest] {
	m.Filters = Filters{DateRange: true}
	return &Definition[entity.Movement, dto.MovementRequest]{
		Meta: m,
		Columns: []Column[entity.Movement]{
			{Header: "ID", Value: func(mv entity.Movement) string { return id64(mv.ID) }},
			{Header: "Pallet", Value: func(mv entity.Movement) string { return mv.PalletCode }},
			{Header: "From", Value: func(mv entity.Movement) string { return id64(mv.FromStackID) }},
			{Header: "To", Value: func(mv entity.Movement) string { return id64(mv.ToStackID) }},
			{Header: "Operator", Value: func(mv entity.Movement) string { return mv.Operator }},
			{Header: "Moved at", Value: func(mv entity.Movement) string { return timestamp(mv.MovedAt) }},
		},
		Fields: []Field{
			{Name: "pallet_code", Label: "Pallet", Kind: Select, Required: true, Source: func(ctx context.Context) ([]Option, error) {
				all, err := svc.Pallets.All(ctx)
				if err != nil {
					return nil, err
				}
				return options(all, func(p entity.Pallet) Option { return Option{Value: p.Code, Label: p.Code} }), nil
			}},
			{Name: "from_stack_id", Label: "From stack", Kind: Select, Required: true, Source: stackOptions},
			{Name: "to_stack_id", Label: "To stack", Kind: Select, Required: true, Source: stackOptions},
			{Name: "operator", Label: "Operator", Kind: Text, Required: true},
			{Name: "notes", Label: "Notes", Kind: TextArea},
		},
		ID:    func(mv entity.Movement) string { return id64(mv.ID) },
		Label: func(mv entity.Movement) string { return "#" + id64(mv.ID) },
		ToInput: func(mv entity.Movement) dto.MovementRequest {
			return dto.MovementRequest{PalletCode: mv.PalletCode, FromStackID: mv.FromStackID, ToStackID: mv.ToStackID, Operator: mv.Operator, Notes: mv.Notes}
		},
		Codec: form.Codec[dto.MovementRequest]{
			Decode: func(r *form.Reader) dto.MovementRequest {
				return dto.MovementRequest{
					PalletCode:  r.String("pallet_code"),
					FromStackID: r.Int64("from_stack_id"),
					ToStackID:   r.Int64("to_stack_id"),
					Operator:    r.String("operator"),
					Notes:       r.String("notes"),
				}
			},
			Encode: func(in dto.MovementRequest) url.Values {
				return url.Values{
					"pallet_code":   {in.PalletCode},
					"from_stack_id": {form.FormatInt64(in.FromStackID)},
					"to_stack_id":   {form.FormatInt64(in.ToStackID)},
					"operator":      {in.Operator},
					"notes":         {in.Notes},
				}
			},
		},
		Service: svc.Movements,
	}
}

func categoryDefinition(m Meta, svc *service.Services) *Definition[entity.Category, dto.CategoryRequest] {
	return &Definition[entity.Category, dto.CategoryRequest]{
		Meta: m,
		Columns: []Column[entity.Category]{
			{Header: "ID", Value: func(c entity.Category) string { return id64(c.ID) }},
			{Header: "Name", Value: func(c entity.Category) string { return c.Name }},
			{Header: "Description", Value: func(c entity.Category) string { return c.Description }},
		},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: TextArea},
		},
		ID:    func(c entity.Category) string { return id64(c.ID) },
		Label: func(c entity.Category) string { return c.Name },
		ToInput: func(c entity.Category) dto.CategoryRequest {
			return dto.CategoryRequest{Name: c.Name, Description: c.Description}
		},
		Codec:   nameDescriptionCodec(func(n, d string) dto.CategoryRequest { return dto.CategoryRequest{Name: n, Description: d} }, func(in dto.CategoryRequest) (string, string) { return in.Name, in.Description }),
		Service: svc.Categories,
	}
}

func subCategoryDefinition(m Meta, svc *service.Services, categoryOptions OptionSource) *Definition[entity.SubCategory, dto.SubCategoryRequest] {
	m.Export = true
	return &Definition[entity.SubCategory, dto.SubCategoryRequest]{
		Meta: m,
		Columns: []Column[entity.SubCategory]{
			{Header: "ID", Value: func(s entity.SubCategory) string { return id64(s.ID) }},
			{Header: "Category", Value: func(s entity.SubCategory) string {
				if s.CategoryName != "" {
					return s.CategoryName
				}
				return id64(s.CategoryID)
			}},
			{Header: "Name", Value: func(s entity.SubCategory) string { return s.Name }},
			{Header: "Description", Value: func(s entity.SubCategory) string { return s.Description }},
		},
		Fields: []Field{
			{Name: "category_id", Label: "Category", Kind: Select, Required: true, Source: categoryOptions},
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: TextArea},
		},
		ID:    func(s entity.SubCategory) string { return id64(s.ID) },
		Label: func(s entity.SubCategory) string { return s.Name },
		ToInput: func(s entity.SubCategory) dto.SubCategoryRequest {
			return dto.SubCategoryRequest{CategoryID: s.CategoryID, Name: s.Name, Description: s.Description}
		},
		Codec: form.Codec[dto.SubCategoryRequest]{
			Decode: func(r *form.Reader) dto.SubCategoryRequest {
				return dto.SubCategoryRequest{CategoryID: r.Int64("category_id"), Name: r.String("name"), Description: r.String("description")}
			},
			Encode: func(in dto.SubCategoryRequest) url.Values {
				return url.Values{"category_id": {form.FormatInt64(in.CategoryID)}, "name": {in.Name}, "description": {in.Description}}
			},
		},
		Service: svc.SubCategories,
	}
}

func userDefinition(m Meta, svc *service.Services) *Definition[entity.User, dto.UserRequest] {
	m.AdminOnly = true
	m.Filters = Filters{Statuses: entity.UserStatuses}
	return &Definition[entity.User, dto.UserRequest]{
		Meta: m,
		Columns: []Column[entity.User]{
			{Header: "ID", Value: func(u entity.User) string { return id64(u.ID) }},
			{Header: "Username", Value: func(u entity.User) string { return u.Username }},
			{Header: "Full name", Value: func(u entity.User) string { return u.FullName }},
			{Header: "Email", Value: func(u entity.User) string { return u.Email }},
			{Header: "Role", Value: func(u entity.User) string {
				if u.RoleName != "" {
					return u.RoleName
				}
				return id64(u.RoleID)
			}},
			{Header: "Status", Value: func(u entity.User) string { return u.Status }},
		},
		// Sin campo de contraseña: el backend emite las credenciales.
		Fields: []Field{
			{Name: "username", Label: "Username", Kind: Text, Required: true},
			{Name: "email", Label: "Email", Kind: Email, Required: true},
			{Name: "full_name", Label: "Full name", Kind: Text, Required: true},
			{Name: "role_id", Label: "Role", Kind: Select, Required: true, Source: func(ctx context.Context) ([]Option, error) {
				all, err := svc.Roles.All(ctx)
				if err != nil {
					return nil, err
				}
				return options(all, func(r entity.Role) Option { return Option{Value: id64(r.ID), Label: r.Name} }), nil
			}},
			{Name: "status", Label: "Status", Kind: Select, Required: true, Options: enumOptions(entity.UserStatuses)},
		},
		ID:    func(u entity.User) string { return id64(u.ID) },
		Label: func(u entity.User) string { return u.Username },
		ToInput: func(u entity.User) dto.UserRequest {
			return dto.UserRequest{Username: u.Username, Email: u.Email, FullName: u.FullName, RoleID: u.RoleID, Status: u.Status}
		},
		Codec: form.Codec[dto.UserRequest]{
			Decode: func(r *form.Reader) dto.UserRequest {
				return dto.UserRequest{
					Username: r.String("username"),
					Email:    r.String("email"),
					FullName: r.String("full_name"),
					RoleID:   r.Int64("role_id"),
					Status:   r.String("status"),
				}
			},
			Encode: func(in dto.UserRequest) url.Values {
				return url.Values{
					"username":  {in.Username},
					"email":     {in.Email},
					"full_name": {in.FullName},
					"role_id":   {form.FormatInt64(in.RoleID)},
					"status":    {in.Status},
				}
			},
			Defaults: func() dto.UserRequest { return dto.UserRequest{Status: entity.UserActive} },
		},
		Service: svc.Users,
	}
}

func roleDefinition(m Meta, svc *service.Services) *Definition[entity.Role, dto.RoleRequest] {
	m.AdminOnly = true
	return &Definition[entity.Role, dto.RoleRequest]{
		Meta: m,
		Columns: []Column[entity.Role]{
			{Header: "ID", Value: func(r entity.Role) string { return id64(r.ID) }},
			{Header: "Name", Value: func(r entity.Role) string { return r.Name }},
			{Header: "Description", Value: func(r entity.Role) string { return r.Description }},
			{Header: "Permissions", Value: func(r entity.Role) string { return strconv.Itoa(len(r.PermissionIDs)) }},
		},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: TextArea},
			{Name: "permission_ids", Label: "Permissions", Kind: MultiSelect, Required: true, Source: func(ctx context.Context) ([]Option, error) {
				all, err := svc.Permissions.All(ctx)
				if err != nil {
					return nil, err
				}
				return options(all, func(p entity.Permission) Option { return Option{Value: id64(p.ID), Label: p.Name} }), nil
			}},
		},
		ID:    func(r entity.Role) string { return id64(r.ID) },
		Label: func(r entity.Role) string { return r.Name },
		ToInput: func(r entity.Role) dto.RoleRequest {
			ids := append([]int64(nil), r.PermissionIDs...)
			return dto.RoleRequest{Name: r.Name, Description: r.Description, PermissionIDs: ids}
		},
		Codec: form.Codec[dto.RoleRequest]{
			Decode: func(r *form.Reader) dto.RoleRequest {
				return dto.RoleRequest{Name: r.String("name"), Description: r.String("description"), PermissionIDs: r.Int64s("permission_ids")}
			},
			Encode: func(in dto.RoleRequest) url.Values {
				ids := make([]string, 0, len(in.PermissionIDs))
				for _, id := range in.PermissionIDs {
					ids = append(ids, id64(id))
				}
				return url.Values{"name": {in.Name}, "description": {in.Description}, "permission_ids": ids}
			},
		},
		Service: svc.Roles,
	}
}

func permissionDefinition(m Meta, svc *service.Services) *Definition[entity.Permission, dto.PermissionRequest] {
	m.AdminOnly = true
	return &Definition[entity.Permission, dto.PermissionRequest]{
		Meta: m,
		Columns: []Column[entity.Permission]{
			{Header: "ID", Value: func(p entity.Permission) string { return id64(p.ID) }},
			{Header: "Name", Value: func(p entity.Permission) string { return p.Name }},
			{Header: "Description", Value: func(p entity.Permission) string { return p.Description }},
		},
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: TextArea},
		},
		ID:    func(p entity.Permission) string { return id64(p.ID) },
		Label: func(p entity.Permission) string { return p.Name },
		ToInput: func(p entity.Permission) dto.PermissionRequest {
			return dto.PermissionRequest{Name: p.Name, Description: p.Description}
		},
		Codec:   nameDescriptionCodec(func(n, d string) dto.PermissionRequest { return dto.PermissionRequest{Name: n, Description: d} }, func(in dto.PermissionRequest) (string, string) { return in.Name, in.Description }),
		Service: svc.Permissions,
	}
}

func nameDescriptionCodec[In any](build func(name, description string) In, split func(In) (string, string)) form.Codec[In] {
	return form.Codec[In]{
		Decode: func(r *form.Reader) In { return build(r.String("name"), r.String("description")) },
		Encode: func(in In) url.Values {
			name, desc := split(in)
			return url.Values{"name": {name}, "description": {desc}}
		},
	}
}

func options[T any](items []T, conv func(T) Option) []Option {
	out := make([]Option, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func enumOptions(values []string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: v})
	}
	return out
}

func id64(n int64) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(n, 10)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
