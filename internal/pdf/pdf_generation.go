package pdf

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"etats/internal/models"
)

// Renderer writes documents as PDF (easy to fake in handler tests).
type Renderer interface {
	RenderReport(w io.Writer, r models.Report) error
}

// ReportRenderer lays out a manager report on A4 pages.
type ReportRenderer struct {
	// FontPath points to a UTF-8 TTF, e.g. "assets/fonts/DejaVuSans.ttf".
	// Without it the core Helvetica font is used and text is transcoded to cp1252.
	FontPath string
}

func NewReportRenderer(fontPath string) *ReportRenderer {
	return &ReportRenderer{FontPath: strings.TrimSpace(fontPath)}
}

type page struct {
	*gofpdf.Fpdf
	font string
	tr   func(string) string
}

func (g *ReportRenderer) newPage() *page {
	doc := gofpdf.New("P", "mm", "A4", "")
	p := &page{Fpdf: doc, font: "Helvetica", tr: func(s string) string { return s }}
	if g.FontPath != "" {
		doc.AddUTF8Font("DejaVu", "", g.FontPath)
		doc.AddUTF8Font("DejaVu", "B", g.FontPath)
		p.font = "DejaVu"
	} else {
		p.tr = doc.UnicodeTranslatorFromDescriptor("")
	}
	return p
}

func (g *ReportRenderer) RenderReport(w io.Writer, r models.Report) error {
	p := g.newPage()
	title := fmt.Sprintf("Report #%d", r.ReportID)
	if r.ReportName != nil && *r.ReportName != "" {
		title = *r.ReportName
	}

	p.SetTitle(title, true)
	p.SetAuthor("ETATS", false)
	p.SetMargins(20, 20, 20)
	p.SetAutoPageBreak(true, 20)
	p.AliasNbPages("")
	p.SetFooterFunc(func() {
		p.SetY(-15)
		p.SetFont(p.font, "", 9)
		p.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", p.PageNo()), "", 0, "C", false, 0, "")
	})
	p.AddPage()

	p.SetFont(p.font, "B", 16)
	p.CellFormat(0, 10, p.tr(title), "", 1, "C", false, 0, "")
	p.hr()

	taskTitle := "-"
	if r.TaskTitle != nil {
		taskTitle = *r.TaskTitle
	}
	p.kvLine("Report", fmt.Sprintf("%d", r.ReportID))
	p.kvLine("Task", fmt.Sprintf("#%d %s", r.TaskID, taskTitle))
	p.kvLine("Manager", r.ManagerID)
	p.kvLine("Created", r.CreatedAt.Format("02.01.2006 15:04"))
	p.Ln(2)
	p.hr()

	p.SetFont(p.font, "", 11)
	p.MultiCell(0, 6, p.tr(r.Content), "", "L", false)

	if err := p.Output(w); err != nil {
		return fmt.Errorf("render report %d: %w", r.ReportID, err)
	}
	return nil
}

func (p *page) kvLine(key, val string) {
	p.SetFont(p.font, "B", 11)
	p.CellFormat(35, 6, p.tr(key+":"), "", 0, "L", false, 0, "")
	p.SetFont(p.font, "", 11)
	p.CellFormat(0, 6, p.tr(val), "", 1, "L", false, 0, "")
}

func (p *page) hr() {
	y := p.GetY() + 1.5
	p.SetLineWidth(0.2)
	p.Line(20, y, 190, y)
	p.SetY(y + 2)
}
