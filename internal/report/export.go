package report

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cityhall-dev/licensing-management/internal"
)

const exportSheet = "Inspection Reports"

var exportHeaders = []string{
	"Report ID", "Business", "Address", "License Number",
	"Inspector", "Visit Date", "Status", "Risk Level", "Findings", "PDF",
}

// ExportExcel renders the given reports as a single-sheet workbook.
func (s *Service) ExportExcel(reports []*Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to build export style", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	for row, rep := range reports {
		values := []interface{}{
			rep.ID,
			businessName(rep),
			businessAddress(rep),
			licenseNumber(rep),
			inspectorName(rep),
			rep.VisitDate.Format("2006-01-02 15:04"),
			rep.Status,
			riskLevel(rep),
			rep.Findings,
			pdfPath(rep),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	f.SetColWidth(exportSheet, "B", "E", 24)
	f.SetColWidth(exportSheet, "I", "I", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, internal.NewInternalError("failed to write export workbook", err)
	}
	return buf.Bytes(), nil
}

func businessName(rep *Report) string {
	if rep.Business != nil {
		return rep.Business.BusinessName
	}
	return fmt.Sprintf("business #%d", rep.BusinessID)
}

func businessAddress(rep *Report) string {
	if rep.Business != nil {
		return rep.Business.Address
	}
	return ""
}

func licenseNumber(rep *Report) string {
	if rep.Business != nil && rep.Business.LicenseNumber != nil {
		return *rep.Business.LicenseNumber
	}
	return ""
}

func inspectorName(rep *Report) string {
	if rep.Inspector != nil {
		return rep.Inspector.FullName
	}
	return fmt.Sprintf("inspector #%d", rep.InspectorID)
}

func riskLevel(rep *Report) string {
	if len(rep.AIRiskAssessment) == 0 {
		return ""
	}
	var a struct {
		RiskLevel string `json:"riskLevel"`
	}
	if err := json.Unmarshal(rep.AIRiskAssessment, &a); err != nil {
		return ""
	}
	return a.RiskLevel
}

func pdfPath(rep *Report) string {
	if rep.PDFPath != nil {
		return *rep.PDFPath
	}
	return ""
}
