package pdf

import (
	"bytes"
	"testing"
	"time"

	"etats/internal/models"
)

func TestRenderReport(t *testing.T) {
	name := "Weekly audit"
	title := "Audit"
	rep := models.Report{
		ReportID:   3,
		TaskID:     9,
		ManagerID:  "M1",
		ReportName: &name,
		Content:    "All checks passed.\nNext review in two weeks.",
		CreatedAt:  time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		TaskTitle:  &title,
	}

	var buf bytes.Buffer
	if err := NewReportRenderer("").RenderReport(&buf, rep); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestRenderReportMissingFont(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportRenderer("does/not/exist.ttf").RenderReport(&buf, models.Report{ReportID: 1, Content: "x"})
	if err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}
