package documents

import (
	"bytes"
	"context"
	"log"
	"strconv"

	"nextops_proposals/internal/domain/document"
	"nextops_proposals/internal/domain/entities"
	"nextops_proposals/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMarginMM   = 18.0
	headerHeightMM = 34.0
)

// ProposalPDFRenderer renders a proposal document to an A4 PDF.
//
// Layout follows the commercial template: a dark header band with title,
// subtitle and reference, the prose sections, a pricing grid rebuilt from
// the proposal items, and a page footer.
type ProposalPDFRenderer struct{}

var _ interfaces.IProposalRenderer = (*ProposalPDFRenderer)(nil)

func NewProposalPDFRenderer() *ProposalPDFRenderer {
	return &ProposalPDFRenderer{}
}

func (r *ProposalPDFRenderer) RenderProposal(_ context.Context, doc entities.ProposalDocument, p entities.Proposal) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)

	// Core fonts are cp1252; translate the Portuguese text accordingly.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(0, 6, tr(doc.Header.Subtitle), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(doc.Header.RefNIF), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	r.drawHeader(pdf, tr, doc.Header)

	r.writeSection(pdf, tr, "", doc.Intro)
	r.writeSection(pdf, tr, "Contexto", doc.Context)
	r.writeSection(pdf, tr, "Solução Proposta", doc.Solution)
	r.writeSection(pdf, tr, "Investimento", doc.Pricing)
	r.drawPricingTable(pdf, tr, p)
	r.writeSection(pdf, tr, "Condições", doc.Conditions)
	r.writeSection(pdf, tr, "", doc.Closing)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[proposal][renderer] pdf output failed proposal_id=%s err=%v", p.ID, err)
		return nil, err
	}
	log.Printf("[proposal][renderer] pdf rendered proposal_id=%s bytes=%d", p.ID, buf.Len())
	return buf.Bytes(), nil
}

func (r *ProposalPDFRenderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, h entities.ProposalDocumentHeader) {
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(23, 37, 84)
	pdf.Rect(0, 0, pageW, headerHeightMM, "F")
	pdf.SetFillColor(56, 189, 248)
	pdf.Rect(0, headerHeightMM, pageW, 1.4, "F")

	pdf.SetXY(pageMarginMM, 9)
	pdf.SetFont("Helvetica", "B", 17)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 8, tr(h.Title), "", 1, "L", false, 0, "")

	pdf.SetX(pageMarginMM)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(186, 210, 235)
	pdf.CellFormat(0, 6, tr(h.Subtitle), "", 1, "L", false, 0, "")

	pdf.SetX(pageMarginMM)
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(h.Date), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(h.RefNIF), "", 1, "R", false, 0, "")

	pdf.SetY(headerHeightMM + 10)
	pdf.SetTextColor(30, 30, 30)
}

func (r *ProposalPDFRenderer) writeSection(pdf *gofpdf.Fpdf, tr func(string) string, title, body string) {
	if body == "" {
		return
	}

	if title != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(23, 37, 84)
		pdf.CellFormat(0, 7, tr(title), "", 1, "L", false, 0, "")
		pdf.SetDrawColor(56, 189, 248)
		pdf.SetLineWidth(0.5)
		pdf.Line(pageMarginMM, pdf.GetY(), pageMarginMM+28, pdf.GetY())
		pdf.Ln(2.5)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.MultiCell(0, 5.2, tr(body), "", "L", false)
	pdf.Ln(2)
}

func (r *ProposalPDFRenderer) drawPricingTable(pdf *gofpdf.Fpdf, tr func(string) string, p entities.Proposal) {
	if len(p.Items) == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	usable := pageW - 2*pageMarginMM
	descW := usable * 0.52
	qtyW := usable * 0.10
	priceW := usable * 0.19
	totalW := usable - descW - qtyW - priceW

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(23, 37, 84)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(descW, 7, tr("Descrição"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(qtyW, 7, tr("Qtd."), "1", 0, "C", true, 0, "")
	pdf.CellFormat(priceW, 7, tr("Preço Unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, 7, tr("Total"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 30, 30)
	fill := false
	for _, item := range p.Items {
		pdf.SetFillColor(240, 244, 250)
		pdf.CellFormat(descW, 6.5, tr(item.Description), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(qtyW, 6.5, strconv.Itoa(item.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(priceW, 6.5, tr(document.FormatCurrency(item.UnitPrice)), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(totalW, 6.5, tr(document.FormatCurrency(item.Total)), "1", 1, "R", fill, 0, "")
		fill = !fill
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(56, 189, 248)
	pdf.CellFormat(descW+qtyW+priceW, 7.5, tr("Total (sem IVA)"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(totalW, 7.5, tr(document.FormatCurrency(p.Total)), "1", 1, "R", true, 0, "")
	pdf.Ln(3)
}
