// Package report arma los archivos descargables de la consola: la exportación CSV de
// subcategorías (generada por el backend) y el informe PDF de inspección de assets.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/assettrack-console/internal/application/dto"
	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/application/service"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

// SubCategoryExporter descarga el CSV de subcategorías.
type SubCategoryExporter interface {
	ExportCSV(ctx context.Context) (*service.Blob, error)
}

// AssetSearcher consulta una página de assets.
type AssetSearcher interface {
	Search(ctx context.Context, q dto.ListQuery) (dto.Page[entity.Asset], error)
}

// File archivo listo para servir como adjunto.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ReportUseCase genera las descargas.
type ReportUseCase struct {
	subCategories SubCategoryExporter
	assets        AssetSearcher
	generator     ports.AssetReportGenerator
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(subCategories SubCategoryExporter, assets AssetSearcher, generator ports.AssetReportGenerator) *ReportUseCase {
	return &ReportUseCase{subCategories: subCategories, assets: assets, generator: generator, now: time.Now}
}

// SubCategoriesCSV devuelve el CSV del backend con nombre sub-categories-YYYY-MM-DD.csv.
func (uc *ReportUseCase) SubCategoriesCSV(ctx context.Context) (*File, error) {
	blob, err := uc.subCategories.ExportCSV(ctx)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        "sub-categories-" + uc.now().Format(entity.DateLayout) + ".csv",
		ContentType: blob.ContentType,
		Data:        blob.Data,
	}, nil
}

// AssetReport genera el PDF de la página de assets indicada por q (la misma que ve el listado).
func (uc *ReportUseCase) AssetReport(ctx context.Context, q dto.ListQuery) (*File, error) {
	page, err := uc.assets.Search(ctx, q.Normalize(dto.DefaultPageSize))
	if err != nil {
		return nil, err
	}
	now := uc.now()
	data, err := uc.generator.GenerateAssetReport(ctx, page.Items, now)
	if err != nil {
		return nil, fmt.Errorf("report: generar informe: %w", err)
	}
	return &File{
		Name:        "assets-" + now.Format(entity.DateLayout) + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
