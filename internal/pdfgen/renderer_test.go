package pdfgen_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/datatypes"

	"github.com/cityhall-dev/licensing-management/internal/auth"
	"github.com/cityhall-dev/licensing-management/internal/business"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
	"github.com/cityhall-dev/licensing-management/internal/pdfgen"
	"github.com/cityhall-dev/licensing-management/internal/report"
)

func TestPDFRenderer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PDF Renderer Suite")
}

var _ = Describe("PDF Renderer", func() {
	var renderer *pdfgen.Renderer

	BeforeEach(func() {
		renderer = pdfgen.NewRenderer()
	})

	license := "12345-2024"

	fullReport := func() *report.Report {
		return &report.Report{
			ID:          42,
			BusinessID:  1,
			InspectorID: 7,
			VisitDate:   time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC),
			Findings:    "Blocked emergency exit, expired extinguishers",
			Status:      report.StatusFail,
			AIRiskAssessment: datatypes.JSON(`{
				"riskLevel": "High",
				"summary": "severe fire hazards",
				"recommendations": ["clear the exit", "replace extinguishers"]
			}`),
			Business: &business.Business{
				ID:            1,
				BusinessName:  "Cafe Hapina",
				Address:       "12 Herzl St",
				OwnerName:     "Noa Mizrahi",
				LicenseNumber: &license,
				LicensingItem: &licensing.Item{
					ItemNumber: "4.2a",
					Name:       "Restaurant or coffee shop",
				},
			},
			Inspector: &auth.User{ID: 7, FullName: "Dana Levi"},
		}
	}

	It("renders a PDF document", func() {
		doc, err := renderer.Render(fullReport())
		Expect(err).NotTo(HaveOccurred())
		Expect(len(doc)).To(BeNumerically(">", 500))
		Expect(string(doc[:5])).To(Equal("%PDF-"))
	})

	It("renders without the optional relations loaded", func() {
		rep := fullReport()
		rep.Business = nil
		rep.Inspector = nil
		rep.AIRiskAssessment = nil

		doc, err := renderer.Render(rep)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc[:5])).To(Equal("%PDF-"))
	})

	It("tolerates a malformed stored assessment", func() {
		rep := fullReport()
		rep.AIRiskAssessment = datatypes.JSON(`not json`)

		doc, err := renderer.Render(rep)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(doc[:5])).To(Equal("%PDF-"))
	})
})
