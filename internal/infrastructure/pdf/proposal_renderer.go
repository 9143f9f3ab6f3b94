package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/ignatzorin/tecsolutions-backend/internal/domain/entity"
	"github.com/ignatzorin/tecsolutions-backend/internal/domain/valueobject"
	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

const (
	pageWidth   = 210.0
	marginLeft  = 20.0
	contentW    = 170.0
	pageBottom  = 270.0
	footerY     = 280.0
	dateLayout  = "02/01/2006"
	fontFamily  = "Helvetica"
	serviceColW = 90.0
)

// Brand: реквизиты компании в шапке и подвале документа.
type Brand struct {
	Name    string
	Tagline string
	Contact string
}

func DefaultBrand() Brand {
	return Brand{
		Name:    "TecSolutions",
		Tagline: "Soluções em Tecnologia da Informação",
		Contact: "TecSolutions - contato@tecsolutions.com.br - (11) 3333-4444",
	}
}

// ProposalRenderer строит PDF коммерческого предложения.
type ProposalRenderer struct {
	brand Brand
}

func NewProposalRenderer(brand Brand) *ProposalRenderer {
	return &ProposalRenderer{brand: brand}
}

// FileName возвращает имя файла вида Proposta_<номер>_<компания>.pdf.
func FileName(number, company string) string {
	return fmt.Sprintf("Proposta_%s_%s.pdf", number, company)
}

// Render рисует документ; строки с удалёнными услугами пропускаются.
func (r *ProposalRenderer) Render(d *entity.ProposalWithDetails) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	r.header(doc, tr)

	doc.SetTextColor(85, 95, 110)
	doc.SetFont(fontFamily, "B", 16)
	doc.Text(marginLeft, 55, tr("PROPOSTA COMERCIAL"))

	doc.SetFont(fontFamily, "", 10)
	doc.Text(marginLeft, 65, tr("Proposta: "+d.Number))
	doc.Text(marginLeft, 72, tr("Data: "+d.CreatedAt.Format(dateLayout)))
	doc.Text(marginLeft, 79, tr("Válida até: "+d.ValidUntil.Format(dateLayout)))

	doc.SetFont(fontFamily, "B", 12)
	doc.Text(marginLeft, 95, tr("CLIENTE:"))
	doc.SetFont(fontFamily, "", 10)
	doc.Text(marginLeft, 105, tr(d.Client.Company))
	doc.Text(marginLeft, 112, tr(d.Client.Name))
	doc.Text(marginLeft, 119, tr(d.Client.Email))
	doc.Text(marginLeft, 126, tr(d.Client.Phone))

	doc.SetFont(fontFamily, "B", 12)
	doc.Text(marginLeft, 145, tr("DESCRIÇÃO:"))
	doc.SetFont(fontFamily, "", 10)
	y := r.paragraph(doc, tr, d.Title, 155)
	if strings.TrimSpace(d.Description) != "" {
		y = r.paragraph(doc, tr, d.Description, maxF(y+4, 165))
	}

	y = maxF(y+15, 185)
	doc.SetFont(fontFamily, "B", 12)
	doc.Text(marginLeft, y, tr("SERVIÇOS:"))
	y += 15
	r.tableHeader(doc, tr, y)
	y += 10

	doc.SetFont(fontFamily, "", 9)
	for _, row := range d.ResolvedItems() {
		if y > pageBottom {
			doc.AddPage()
			y = 25
			r.tableHeader(doc, tr, y)
			y += 10
			doc.SetFont(fontFamily, "", 9)
		}
		name := firstLine(doc, tr(row.Service.Name), serviceColW)
		doc.Text(25, y, name)
		doc.Text(125, y, strconv.Itoa(row.Item.Quantity))
		doc.Text(140, y, tr(valueobject.FormatMoney(row.Item.UnitPrice)))
		doc.Text(165, y, tr(valueobject.FormatMoney(row.Item.Total)))
		y += 8
	}

	if y+30 > pageBottom {
		doc.AddPage()
		y = 25
	}
	y += 10
	doc.SetFont(fontFamily, "B", 9)
	doc.Text(140, y, tr("Subtotal: "+valueobject.FormatMoney(d.Subtotal)))
	if d.Discount.GreaterThan(decimal.Zero) {
		y += 8
		doc.Text(140, y, tr("Desconto: "+valueobject.FormatMoney(d.Discount)))
	}
	y += 8
	doc.SetFont(fontFamily, "B", 12)
	doc.Text(140, y, tr("TOTAL: "+valueobject.FormatMoney(d.Total)))

	doc.SetFont(fontFamily, "", 8)
	doc.SetTextColor(100, 100, 100)
	doc.Text(marginLeft, footerY, tr(r.brand.Contact))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeRenderError, "не удалось сформировать PDF")
	}
	if !filetype.Is(buf.Bytes(), "pdf") {
		return nil, apperror.New(apperror.ErrCodeRenderError, "сформированный документ не является PDF")
	}
	return buf.Bytes(), nil
}

func (r *ProposalRenderer) header(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetFillColor(0, 230, 230)
	doc.Rect(0, 0, pageWidth, 40, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont(fontFamily, "B", 24)
	doc.Text(marginLeft, 25, tr(r.brand.Name))
	doc.SetFont(fontFamily, "", 12)
	doc.Text(marginLeft, 32, tr(r.brand.Tagline))
}

func (r *ProposalRenderer) tableHeader(doc *gofpdf.Fpdf, tr func(string) string, y float64) {
	doc.SetFillColor(240, 240, 240)
	doc.Rect(marginLeft, y-5, contentW, 10, "F")

	doc.SetTextColor(85, 95, 110)
	doc.SetFont(fontFamily, "B", 9)
	doc.Text(25, y, tr("Serviço"))
	doc.Text(120, y, "Qtd")
	doc.Text(140, y, "Valor Unit.")
	doc.Text(170, y, "Total")
}

// paragraph переносит текст по ширине блока и возвращает Y последней строки.
func (r *ProposalRenderer) paragraph(doc *gofpdf.Fpdf, tr func(string) string, text string, y float64) float64 {
	lines := doc.SplitLines([]byte(tr(text)), contentW)
	last := y
	for i, line := range lines {
		last = y + float64(i)*5
		doc.Text(marginLeft, last, string(line))
	}
	return last
}

func firstLine(doc *gofpdf.Fpdf, text string, width float64) string {
	lines := doc.SplitLines([]byte(text), width)
	if len(lines) == 0 {
		return ""
	}
	return string(lines[0])
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
