package service

import (
	"context"
	"net/http"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// Rutas base de cada entidad en el backend.
const (
	BaseAssets        = "/assets"
	BasePallets       = "/pallets"
	BaseStacks        = "/stacks"
	BaseMovements     = "/movements"
	BaseUsers         = "/users"
	BaseRoles         = "/roles"
	BasePermissions   = "/permissions"
	BaseCategories    = "/categories"
	BaseSubCategories = "/sub-categories"
)

// Blob contenido binario descargado del backend.
type Blob struct {
	ContentType string
	Data        []byte
}

// SubCategoryService agrega la exportación CSV al CRUD de subcategorías.
type SubCategoryService struct {
	*Resource[entity.SubCategory, dto.SubCategoryRequest]
}

// ExportCSV GET /sub-categories/export pidiendo text/csv.
func (s *SubCategoryService) ExportCSV(ctx context.Context) (*Blob, error) {
	resp, err := s.gw.Do(ctx, ports.Request{
		Method: http.MethodGet,
		Path:   s.base + "/export",
		Accept: "text/csv",
	})
	if err != nil {
		return nil, err
	}
	ct := resp.ContentType
	if ct == "" {
		ct = "text/csv"
	}
	return &Blob{ContentType: ct, Data: resp.Body}, nil
}

// Services reúne los servicios de todas las entidades sobre un mismo gateway.
type Services struct {
	Assets        *Resource[entity.Asset, dto.AssetRequest]
	Pallets       *Resource[entity.Pallet, dto.PalletRequest]
	Stacks        *Resource[entity.Stack, dto.StackRequest]
	Movements     *Resource[entity.Movement, dto.MovementRequest]
	Users         *Resource[entity.User, dto.UserRequest]
	Roles         *Resource[entity.Role, dto.RoleRequest]
	Permissions   *Resource[entity.Permission, dto.PermissionRequest]
	Categories    *Resource[entity.Category, dto.CategoryRequest]
	SubCategories *SubCategoryService
}

// NewServices construye todos los servicios.
func NewServices(gw ports.Gateway) *Services {
	return &Services{
		Assets:        NewResource[entity.Asset, dto.AssetRequest](gw, BaseAssets),
		Pallets:       NewResource[entity.Pallet, dto.PalletRequest](gw, BasePallets),
		Stacks:        NewResource[entity.Stack, dto.StackRequest](gw, BaseStacks),
		Movements:     NewResource[entity.Movement, dto.MovementRequest](gw, BaseMovements),
		Users:         NewResource[entity.User, dto.UserRequest](gw, BaseUsers),
		Roles:         NewResource[entity.Role, dto.RoleRequest](gw, BaseRoles),
		Permissions:   NewResource[entity.Permission, dto.PermissionRequest](gw, BasePermissions),
		Categories:    NewResource[entity.Category, dto.CategoryRequest](gw, BaseCategories),
		SubCategories: &SubCategoryService{Resource: NewResource[entity.SubCategory, dto.SubCategoryRequest](gw, BaseSubCategories)},
	}
}
