package pdfgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/report"
)

// Renderer produces the printable one-page inspection report.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(rep *report.Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Inspection Report #%d", rep.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Municipal Inspection Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, fmt.Sprintf("Report #%d — generated %s", rep.ID, time.Now().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	writeSection(pdf, "Business")
	if rep.Business != nil {
		writeField(pdf, "Name", rep.Business.BusinessName)
		writeField(pdf, "Address", rep.Business.Address)
		writeField(pdf, "Owner", rep.Business.OwnerName)
		if rep.Business.LicenseNumber != nil {
			writeField(pdf, "License number", *rep.Business.LicenseNumber)
		}
		if rep.Business.LicensingItem != nil {
			writeField(pdf, "Licensing item", fmt.Sprintf("%s — %s",
				rep.Business.LicensingItem.ItemNumber, rep.Business.LicensingItem.Name))
		}
	} else {
		writeField(pdf, "Business ID", fmt.Sprintf("%d", rep.BusinessID))
	}
	pdf.Ln(4)

	writeSection(pdf, "Inspection")
	if rep.Inspector != nil {
		writeField(pdf, "Inspector", rep.Inspector.FullName)
	}
	writeField(pdf, "Visit date", rep.VisitDate.Format("02/01/2006 15:04"))
	writeField(pdf, "Result", statusLabel(rep.Status))
	pdf.Ln(4)

	writeSection(pdf, "Findings")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, rep.Findings, "", "L", false)
	pdf.Ln(4)

	if len(rep.AIRiskAssessment) > 0 {
		var a struct {
			RiskLevel       string   `json:"riskLevel"`
			Summary         string   `json:"summary"`
			Recommendations []string `json:"recommendations"`
		}
		if err := json.Unmarshal(rep.AIRiskAssessment, &a); err == nil {
			writeSection(pdf, "Automated Risk Assessment")
			writeField(pdf, "Risk level", a.RiskLevel)
			if a.Summary != "" {
				pdf.SetFont("Helvetica", "", 11)
				pdf.MultiCell(0, 6, a.Summary, "", "L", false)
			}
			for _, rec := range a.Recommendations {
				pdf.SetFont("Helvetica", "", 11)
				pdf.MultiCell(0, 6, "- "+rec, "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, internal.NewExternalError("failed to render report pdf", internal.ErrCodePDFRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(235, 240, 248)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func statusLabel(status string) string {
	switch status {
	case report.StatusPass:
		return "Pass"
	case report.StatusFail:
		return "Fail"
	case report.StatusConditionalPass:
		return "Conditional pass"
	default:
		return status
	}
}
