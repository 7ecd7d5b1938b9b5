// Package pdf genera la lista de compra del hogar a partir de los items en
// stock bajo o agotados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Lista de Compra + fecha            │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Producto | Cant. | Mínimo | Estado  │
//	│  ─────────────────────────────────────────  │
//	│  PIE: total de productos                    │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appfridge "github.com/jhoicas/homer-api/internal/application/fridge"
	"github.com/jhoicas/homer-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ShoppingListGenerator implementa fridge.ShoppingListGenerator usando Maroto v2.
type ShoppingListGenerator struct{}

var _ appfridge.ShoppingListGenerator = (*ShoppingListGenerator)(nil)

// NewShoppingListGenerator construye el generador.
func NewShoppingListGenerator() *ShoppingListGenerator { return &ShoppingListGenerator{} }

// GenerateShoppingListPDF genera el PDF y devuelve sus bytes.
func (g *ShoppingListGenerator) GenerateShoppingListPDF(
	_ context.Context,
	items []entity.ItemWithRelations,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Compra", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Lista de Compra", props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generada: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cantidad", 2, align.Center),
		h("Mínimo", 2, align.Center),
		h("Estado", 2, align.Center),
	)
}

// tableItemRows: una fila por producto a reponer.
func tableItemRows(items []entity.ItemWithRelations) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		statusColor := colorGray
		if it.Status == entity.StatusOutOfStock {
			statusColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				itemLabel(it),
				props.Text{Size: 9, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				quantityLabel(it),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				minQuantityLabel(it),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(it.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor},
			)),
		))
	}
	return result
}

// footerRow: total de productos en la lista.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d producto(s) por reponer", total), props.Text{
			Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		}),
	))
}

// itemLabel incluye la primera categoría entre paréntesis si existe.
func itemLabel(it entity.ItemWithRelations) string {
	if len(it.Categories) > 0 {
		return fmt.Sprintf("%s (%s)", it.Name, it.Categories[0].Name)
	}
	return it.Name
}

func quantityLabel(it entity.ItemWithRelations) string {
	if !it.Quantity.Valid {
		return "—"
	}
	s := it.Quantity.Decimal.String()
	if it.Unit != "" {
		return s + " " + it.Unit
	}
	return s
}

func minQuantityLabel(it entity.ItemWithRelations) string {
	if !it.MinQuantity.Valid {
		return "—"
	}
	return it.MinQuantity.Decimal.String()
}

func statusLabel(status string) string {
	switch status {
	case entity.StatusOutOfStock:
		return "Agotado"
	case entity.StatusLowStock:
		return "Stock bajo"
	case entity.StatusExpired:
		return "Vencido"
	default:
		return "En stock"
	}
}
