// Package pdf renders sale receipts.
//
// A4 layout:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: назва кіоску  │  № чека + дата      │
//	│  ──────────────────────────────────────────  │
//	│  TABLE: Кількість | Товар | Ціна | Сума      │
//	│  ──────────────────────────────────────────  │
//	│  TOTAL: спосіб оплати / РАЗОМ                │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

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

	"github.com/vapetrack/kiosk-api/internal/application/sales"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

var _ sales.ReceiptGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 40, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator renders receipts with Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator builds the generator.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate renders the receipt and returns its bytes.
func (g *ReceiptGenerator) Generate(sale *entity.Sale, items []*entity.SaleItem, kioskName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Чек", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, kioskName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sale *entity.Sale, kioskName string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(kioskName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ЧЕК № "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(sale.CreatedAt.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Кількість", 2, align.Center),
		h("Товар", 5, align.Left),
		h("Ціна", 2, align.Right),
		h("Сума", 3, align.Right),
	)
}

func itemRow(it *entity.SaleItem) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			strconv.Itoa(it.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(5).Add(text.New(
			it.ProductName,
			props.Text{Size: 8, Align: align.Left, Top: 1},
		)),
		col.New(2).Add(text.New(
			it.UnitPrice.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1},
		)),
		col.New(3).Add(text.New(
			it.Subtotal.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1},
		)),
	)
}

func totalRow(sale *entity.Sale) core.Row {
	payment := "Готівка"
	if sale.PaymentMethod == entity.PaymentCard {
		payment = "Картка"
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Оплата: "+payment, props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("РАЗОМ: "+sale.Total.StringFixed(2)+" грн", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// shortID keeps the first UUID block; a full UUID does not fit the header.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
