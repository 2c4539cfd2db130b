package gofpdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"smart-global/quotation_backend/internal/domain/quote"
)

const fontFamily = "Helvetica"

// Page geometry in mm, A4 portrait.
const (
	marginLeft   = 15.0
	marginTop    = 10.0
	contentWidth = 180.0
	rowHeight    = 7.0
	breakLimit   = 277.0 // page height minus bottom margin
)

type rgb struct{ r, g, b int }

var (
	navy      = rgb{27, 58, 107}
	lightBlue = rgb{232, 238, 247}
	gridGrey  = rgb{176, 184, 204}
	textGrey  = rgb{128, 128, 128}
)

var itemColWidths = [6]float64{10, 75, 20, 20, 27.5, 27.5}

type Generator struct {
	issuer   quote.Issuer
	taxRate  decimal.Decimal
	logoPath string
}

func New(issuer quote.Issuer, taxRate decimal.Decimal, logoPath string) *Generator {
	return &Generator{issuer: issuer, taxRate: taxRate, logoPath: logoPath}
}

func (g *Generator) Generate(q quote.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+q.Number, false)
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	g.headerBand(pdf, tr)
	g.titleBand(pdf, tr)
	g.metaRows(pdf, tr, q)
	g.customerPanel(pdf, tr, q.Customer)
	g.itemTable(pdf, tr, q)
	g.totalsBlock(pdf, tr, q)
	if strings.TrimSpace(q.Notes) != "" {
		g.notesSection(pdf, tr, q.Notes)
	}
	g.footerBand(pdf, tr)

	if err := pdf.Error(); err != nil {
		log.Printf("quote pdf: build failed: %v", err)
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

// headerBand draws the logo (or a text mark when the asset is unusable) next
// to the issuer contact block, closed off by a heavy rule.
func (g *Generator) headerBand(pdf *gofpdf.Fpdf, tr func(string) string) {
	top := pdf.GetY()
	if g.logoUsable() {
		pdf.ImageOptions(g.logoPath, marginLeft, top+2, 55, 22, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	} else {
		pdf.SetFont(fontFamily, "B", 20)
		pdf.SetTextColor(navy.r, navy.g, navy.b)
		pdf.SetXY(marginLeft, top+8)
		pdf.CellFormat(55, 10, tr(g.textMark()), "", 0, "L", false, 0, "")
	}

	y := top
	line := func(txt, style string, size float64, c rgb) {
		pdf.SetFont(fontFamily, style, size)
		pdf.SetTextColor(c.r, c.g, c.b)
		pdf.SetXY(80, y)
		pdf.CellFormat(115, 4.2, tr(txt), "", 0, "L", false, 0, "")
		y += 4.2
	}
	black := rgb{0, 0, 0}
	line(g.issuer.Name, "B", 11, navy)
	line(g.issuer.Contact, "", 8.5, black)
	line(g.issuer.Address, "", 8, textGrey)
	line(g.issuer.POBox, "", 8, textGrey)
	line("M: "+g.issuer.Mobile, "", 8, textGrey)
	line("T: "+g.issuer.Tel, "", 8, textGrey)
	line(g.issuer.Email, "", 8, black)
	line(g.issuer.Web, "", 8, black)

	if y < top+26 {
		y = top + 26
	}
	pdf.SetY(y + 1)
	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.8)
	pdf.Line(marginLeft, pdf.GetY(), marginLeft+contentWidth, pdf.GetY())
	pdf.Ln(3)
}

// textMark is the fallback brand mark: the first word of the issuer name.
func (g *Generator) textMark() string {
	fields := strings.Fields(g.issuer.Name)
	if len(fields) == 0 {
		return "QUOTE"
	}
	return strings.ToUpper(fields[0])
}

func (g *Generator) logoUsable() bool {
	if g.logoPath == "" {
		return false
	}
	f, err := os.Open(g.logoPath)
	if err != nil {
		return false
	}
	defer f.Close()
	if _, _, err := image.DecodeConfig(f); err != nil {
		log.Printf("quote pdf: logo %s unreadable: %v", g.logoPath, err)
		return false
	}
	return true
}

func (g *Generator) titleBand(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetTextColor(navy.r, navy.g, navy.b)
	pdf.CellFormat(contentWidth, 9, tr("QUOTATION"), "", 1, "C", false, 0, "")
	pdf.Ln(1)
}

func (g *Generator) metaRows(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quotation) {
	pdf.SetTextColor(0, 0, 0)
	row := func(l1, v1, l2, v2 string) {
		pdf.SetFont(fontFamily, "B", 9)
		pdf.CellFormat(24, 5, tr(l1), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(66, 5, tr(v1), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "B", 9)
		pdf.CellFormat(24, 5, tr(l2), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(66, 5, tr(v2), "", 1, "L", false, 0, "")
	}
	row("Quote No:", q.Number, "Date:", q.IssueDate)
	row("Valid Until:", q.ValidUntil, "Currency:", q.Currency)
	pdf.Ln(3)
}

// customerPanel draws the BILL TO box. Absent optional fields produce no row.
func (g *Generator) customerPanel(pdf *gofpdf.Fpdf, tr func(string) string, c quote.Customer) {
	type panelRow struct {
		txt   string
		style string
		size  float64
	}
	rows := []panelRow{
		{"BILL TO", "B", 9},
		{c.Name, "B", 10},
	}
	for _, opt := range []string{c.Company, c.Address, c.Phone, c.Email} {
		if opt != "" {
			rows = append(rows, panelRow{opt, "", 9})
		}
	}

	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.25)
	pdf.SetFillColor(lightBlue.r, lightBlue.g, lightBlue.b)
	for i, r := range rows {
		border := "LR"
		if i == 0 {
			border = "LRT"
		}
		if i == len(rows)-1 {
			border += "B"
		}
		if i == 0 {
			pdf.SetTextColor(navy.r, navy.g, navy.b)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetFont(fontFamily, r.style, r.size)
		pdf.CellFormat(contentWidth, 6, tr(r.txt), border, 1, "L", i == 0, 0, "")
	}
	pdf.Ln(4)
}

// tableHeadRow paints the item table header. It is redrawn at the top of
// every page the table spans.
func (g *Generator) tableHeadRow(pdf *gofpdf.Fpdf, tr func(string) string, cur string) {
	heads := [6]string{"#", "Description", "Unit", "Qty",
		fmt.Sprintf("Unit Price (%s)", cur), fmt.Sprintf("Total (%s)", cur)}
	pdf.SetFont(fontFamily, "B", 8.5)
	pdf.SetFillColor(navy.r, navy.g, navy.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.25)
	for i, h := range heads {
		ln := 0
		if i == len(heads)-1 {
			ln = 1
		}
		pdf.CellFormat(itemColWidths[i], rowHeight, tr(h), "1", ln, "C", true, 0, "")
	}
}

func (g *Generator) itemTable(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quotation) {
	g.tableHeadRow(pdf, tr, q.Currency)

	pdf.SetFillColor(lightBlue.r, lightBlue.g, lightBlue.b)
	for i, l := range q.Lines {
		if pdf.GetY()+rowHeight > breakLimit {
			pdf.AddPage()
			g.tableHeadRow(pdf, tr, q.Currency)
			pdf.SetFillColor(lightBlue.r, lightBlue.g, lightBlue.b)
		}
		pdf.SetFont(fontFamily, "", 8.5)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(gridGrey.r, gridGrey.g, gridGrey.b)
		fill := i%2 == 1
		pdf.CellFormat(itemColWidths[0], rowHeight, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(itemColWidths[1], rowHeight, tr(trim(l.Name, 48)), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(itemColWidths[2], rowHeight, tr(trim(l.Unit, 12)), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(itemColWidths[3], rowHeight, l.Qty.String(), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(itemColWidths[4], rowHeight, quote.FormatAmount(l.UnitPrice), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(itemColWidths[5], rowHeight, quote.FormatAmount(l.Total()), "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(4)
}

func (g *Generator) totalsBlock(pdf *gofpdf.Fpdf, tr func(string) string, q quote.Quotation) {
	if pdf.GetY()+3*6 > breakLimit {
		pdf.AddPage()
	}
	t := q.ComputeTotals(g.taxRate)
	ratePct := g.taxRate.Mul(decimal.NewFromInt(100)).String()

	labelW, valueW := 45.0, 36.0
	x := marginLeft + contentWidth - labelW - valueW
	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.25)
	pdf.SetFillColor(lightBlue.r, lightBlue.g, lightBlue.b)

	row := func(label string, amount decimal.Decimal, emph bool) {
		size := 9.0
		if emph {
			size = 10
			pdf.SetTextColor(navy.r, navy.g, navy.b)
		} else {
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetX(x)
		pdf.SetFont(fontFamily, "B", size)
		pdf.CellFormat(labelW, 6, tr(label), "1", 0, "R", emph, 0, "")
		if !emph {
			pdf.SetFont(fontFamily, "", size)
		}
		pdf.CellFormat(valueW, 6, quote.FormatAmount(amount)+" "+q.Currency, "1", 1, "R", emph, 0, "")
	}
	row("Sub Total:", t.Subtotal, false)
	row(fmt.Sprintf("VAT (%s%%):", ratePct), t.TaxAmount, false)
	row("TOTAL:", t.GrandTotal, true)
}

// notesSection renders the free-text notes; each source line becomes its own
// paragraph.
func (g *Generator) notesSection(pdf *gofpdf.Fpdf, tr func(string) string, notes string) {
	pdf.Ln(5)
	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.2)
	pdf.Line(marginLeft, pdf.GetY(), marginLeft+contentWidth, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetTextColor(navy.r, navy.g, navy.b)
	pdf.CellFormat(contentWidth, 5, tr("Notes / Terms & Conditions:"), "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 8.5)
	pdf.SetTextColor(0, 0, 0)
	for _, para := range strings.Split(notes, "\n") {
		if strings.TrimSpace(para) == "" {
			pdf.Ln(2)
			continue
		}
		pdf.MultiCell(contentWidth, 4.2, tr(para), "", "L", false)
		pdf.Ln(1)
	}
}

func (g *Generator) footerBand(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.Ln(6)
	if pdf.GetY()+10 > breakLimit {
		pdf.AddPage()
	}
	pdf.SetDrawColor(navy.r, navy.g, navy.b)
	pdf.SetLineWidth(0.4)
	pdf.Line(marginLeft, pdf.GetY(), marginLeft+contentWidth, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 7.5)
	pdf.SetTextColor(textGrey.r, textGrey.g, textGrey.b)
	msg := fmt.Sprintf("Thank you for your business! | %s | %s", g.issuer.Email, g.issuer.Web)
	pdf.CellFormat(contentWidth, 4, tr(msg), "", 1, "C", false, 0, "")
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
