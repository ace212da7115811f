// Package pdf implementa el informe de inspección de assets en PDF.
//
// Layout de la página A4 (apaisada):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación │ total / vencidos      │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: QR | Código | Nombre | Estado | Ubicación | fechas    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                              │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/assettrack-console/internal/application/ports"
	"github.com/jhoicas/assettrack-console/internal/domain/entity"
)

var _ ports.AssetReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa ports.AssetReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateAssetReport genera el PDF con una fila por asset y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAssetReport(_ context.Context, assets []entity.Asset, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Asset inspection report", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(assets, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	if len(assets) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No data", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}
	for _, r := range assetRows(assets, generatedAt) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Dates in red are past due at the time of generation. Scan the QR code to identify the asset.",
			props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(assets []entity.Asset, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("ASSET INSPECTION REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generated: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Assets: %d", len(assets)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Compliance overdue: %d", CountOverdue(assets, generatedAt)), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorAlert,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("QR", 1, align.Center),
		h("Code", 1, align.Left),
		h("Name", 3, align.Left),
		h("Status", 1, align.Center),
		h("Location", 2, align.Left),
		h("Next inspection", 1, align.Center),
		h("Compliance due", 2, align.Center),
		h("Cost", 1, align.Right),
	)
}

func assetRows(assets []entity.Asset, now time.Time) []core.Row {
	out := make([]core.Row, 0, len(assets))
	cell := func(s string, size int, a align.Type, color *props.Color) core.Col {
		return col.New(size).Add(text.New(nonEmpty(s, "-"), props.Text{
			Size: 8, Align: a, Top: 5, Left: 1, Right: 1, Color: color,
		}))
	}
	for _, a := range assets {
		var nextColor, dueColor *props.Color
		if pastDue(a.NextInspection, now) {
			nextColor = colorAlert
		}
		if pastDue(a.ComplianceDue, now) {
			dueColor = colorAlert
		}
		out = append(out, row.New(16).Add(
			col.New(1).Add(code.NewQr(a.Code, props.Rect{Percent: 90, Center: true})),
			cell(a.Code, 1, align.Left, nil),
			cell(a.Name, 3, align.Left, nil),
			cell(a.Status, 1, align.Center, nil),
			cell(a.Location, 2, align.Left, nil),
			cell(a.NextInspection, 1, align.Center, nextColor),
			cell(a.ComplianceDue, 2, align.Center, dueColor),
			cell(a.PurchaseCost.StringFixed(2), 1, align.Right, nil),
		))
	}
	return out
}

// CountOverdue cuenta los assets cuya fecha de cumplimiento ya pasó en now.
func CountOverdue(assets []entity.Asset, now time.Time) int {
	n := 0
	for _, a := range assets {
		if pastDue(a.ComplianceDue, now) {
			n++
		}
	}
	return n
}

// pastDue: fechas vacías o mal formadas no cuentan como vencidas.
func pastDue(date string, now time.Time) bool {
	if date == "" {
		return false
	}
	d, err := time.ParseInLocation(entity.DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(today)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
