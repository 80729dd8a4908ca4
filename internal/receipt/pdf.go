// Package receipt рендерит PDF: чек по одному заказу и отчёт о продажах.
// Документ детерминирован для одинаковых входных данных.
package receipt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/service/reporting"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	lineHeight      = 6.0
	pageMargin      = 15.0
)

// Options задаёт оформление документа.
type Options struct {
	// StoreName выводится в заголовке.
	StoreName string
	// Location: зона для вывода времени; по умолчанию UTC.
	Location *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

type document struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newDocument(title string, createdAt time.Time) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	// Фиксированные даты и порядок каталога дают одинаковый вывод.
	pdf.SetCreationDate(createdAt)
	pdf.SetModificationDate(createdAt)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	pdf.AliasNbPages("")

	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, d.tr("Página "+strconv.Itoa(pdf.PageNo())+"/{nb}"), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return d
}

func (d *document) heading(text string) {
	d.pdf.SetFont("Helvetica", "B", 16)
	d.pdf.CellFormat(0, 10, d.tr(text), "", 1, "L", false, 0, "")
	d.pdf.Ln(2)
}

func (d *document) section(text string) {
	d.pdf.Ln(3)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.CellFormat(0, 8, d.tr(text), "B", 1, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
}

func (d *document) field(label, value string) {
	d.pdf.SetFont("Helvetica", "B", 10)
	d.pdf.CellFormat(40, lineHeight, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.MultiCell(0, lineHeight, d.tr(value), "", "L", false)
}

func (d *document) row(widths []float64, cells []string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	d.pdf.SetFont("Helvetica", style, 10)
	for i, cell := range cells {
		align := "L"
		if i == len(cells)-1 {
			align = "R"
		}
		d.pdf.CellFormat(widths[i], lineHeight, d.tr(cell), "1", 0, align, false, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *document) write(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// RenderOrder пишет чек заказа в w. Длинный список позиций переносится на новые страницы.
func RenderOrder(w io.Writer, order domain.Order, opts Options) error {
	loc := opts.location()
	d := newDocument("Pedido "+order.ID, order.CreatedAt)

	title := "Comprovante de pedido"
	if opts.StoreName != "" {
		title = opts.StoreName + " - " + title
	}
	d.heading(title)

	d.field("Pedido:", order.ID)
	d.field("Cliente:", order.CustomerName)
	d.field("Endereço:", order.Address)
	d.field("Pagamento:", order.PaymentMethod.Label())
	d.field("Data:", order.CreatedAt.In(loc).Format(timestampLayout))
	d.field("Status:", order.Status.Label())
	if order.Note != "" {
		d.field("Observação:", order.Note)
	}

	d.section("Itens")
	widths := []float64{140, 40}
	if len(order.Items) > 0 {
		for _, item := range order.Items {
			d.row(widths, []string{item.Name, domain.FormatPrice(item.Price)}, false)
		}
	} else {
		for _, name := range order.ItemNames() {
			d.row(widths, []string{name, ""}, false)
		}
	}
	d.row(widths, []string{"Total", domain.FormatPrice(order.Total)}, true)

	return d.write(w)
}

// RenderReport пишет отчёт: диапазон дат, три проекции и список заказов.
func RenderReport(w io.Writer, report reporting.Report, opts Options) error {
	loc := opts.location()
	if report.Location != nil {
		loc = report.Location
	}
	d := newDocument("Relatório de vendas", report.GeneratedAt)

	title := "Relatório de vendas"
	if opts.StoreName != "" {
		title = opts.StoreName + " - " + title
	}
	d.heading(title)
	d.field("Período:", formatRange(report.Range, loc))
	d.field("Gerado em:", report.GeneratedAt.In(loc).Format(timestampLayout))
	d.field("Pedidos:", strconv.Itoa(len(report.Orders)))
	d.field("Total:", domain.FormatPrice(report.Total))

	d.section("Vendas por dia")
	for _, day := range report.SalesByDay {
		d.row([]float64{120, 60}, []string{day.Date, domain.FormatPrice(day.Total)}, false)
	}

	d.section("Produtos mais vendidos")
	for _, product := range report.TopProducts {
		d.row([]float64{150, 30}, []string{product.Name, strconv.Itoa(product.Count)}, false)
	}

	d.section("Receita por forma de pagamento")
	for _, revenue := range report.ByPayment {
		d.row([]float64{120, 60}, []string{revenue.Method.Label(), domain.FormatPrice(revenue.Total)}, false)
	}

	d.section("Pedidos")
	widths := []float64{35, 45, 40, 25, 35}
	d.row(widths, []string{"Data", "Cliente", "Pagamento", "Status", "Total"}, true)
	for _, order := range report.Orders {
		d.row(widths, []string{
			order.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			order.CustomerName,
			order.PaymentMethod.Label(),
			order.Status.Label(),
			domain.FormatPrice(order.Total),
		}, false)
	}

	return d.write(w)
}

// OrderBytes рендерит чек в память.
func OrderBytes(order domain.Order, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderOrder(&buf, order, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportBytes рендерит отчёт в память.
func ReportBytes(report reporting.Report, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, report, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatRange(r reporting.DateRange, loc *time.Location) string {
	from, to := "início", "hoje"
	if !r.From.IsZero() {
		from = r.From.In(loc).Format(reporting.DateLayout)
	}
	if !r.To.IsZero() {
		to = r.To.In(loc).Format(reporting.DateLayout)
	}
	return from + " a " + to
}
