package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/business"
	"github.com/cityhall-dev/licensing-management/internal/report"
	"github.com/cityhall-dev/licensing-management/internal/riskai"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Service Suite")
}

type fakeReportRepo struct {
	reports map[int64]*report.Report
	nextID  int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: map[int64]*report.Report{}, nextID: 1}
}

func (r *fakeReportRepo) Create(rep *report.Report) error {
	rep.ID = r.nextID
	r.nextID++
	r.reports[rep.ID] = rep
	return nil
}

func (r *fakeReportRepo) GetAll() ([]*report.Report, error) {
	var out []*report.Report
	for _, rep := range r.reports {
		out = append(out, rep)
	}
	return out, nil
}

func (r *fakeReportRepo) GetByID(id int64) (*report.Report, error) {
	rep, ok := r.reports[id]
	if !ok {
		return nil, internal.ErrReportNotFound
	}
	return rep, nil
}

func (r *fakeReportRepo) GetByBusiness(businessID int64) ([]*report.Report, error) {
	var out []*report.Report
	for _, rep := range r.reports {
		if rep.BusinessID == businessID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) Update(rep *report.Report) error {
	r.reports[rep.ID] = rep
	return nil
}

func (r *fakeReportRepo) UpdateAssessment(id int64, assessment []byte) error {
	rep, ok := r.reports[id]
	if !ok {
		return internal.ErrReportNotFound
	}
	rep.AIRiskAssessment = assessment
	return nil
}

func (r *fakeReportRepo) UpdatePDFPath(id int64, path string) error {
	rep, ok := r.reports[id]
	if !ok {
		return internal.ErrReportNotFound
	}
	rep.PDFPath = &path
	return nil
}

type fakeDirectory struct {
	businesses map[int64]*business.Business
}

func (d *fakeDirectory) GetByID(id int64) (*business.Business, error) {
	b, ok := d.businesses[id]
	if !ok {
		return nil, internal.ErrBusinessNotFound
	}
	return b, nil
}

type fakeSummarizer struct {
	assessment *riskai.Assessment
	err        error
	calls      int
}

func (s *fakeSummarizer) AssessRisk(ctx context.Context, input riskai.Input) (*riskai.Assessment, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.assessment, nil
}

type fakeRenderer struct {
	doc []byte
	err error
}

func (r *fakeRenderer) Render(rep *report.Report) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.doc, nil
}

var _ = Describe("Report Service", func() {
	var (
		repo       *fakeReportRepo
		directory  *fakeDirectory
		summarizer *fakeSummarizer
		renderer   *fakeRenderer
		storageDir string
		service    *report.Service
	)

	newService := func() *report.Service {
		return report.NewService(repo, directory, summarizer, renderer, internal.ReportsConfig{
			StorageDir: storageDir,
			PublicPath: "/reports",
		}, logger.L())
	}

	BeforeEach(func() {
		repo = newFakeReportRepo()
		directory = &fakeDirectory{businesses: map[int64]*business.Business{
			1: {ID: 1, BusinessName: "Cafe Hapina", Address: "12 Herzl St"},
		}}
		summarizer = &fakeSummarizer{assessment: &riskai.Assessment{
			RiskLevel:       riskai.RiskHigh,
			Summary:         "severe fire hazards",
			Recommendations: []string{"clear the emergency exit"},
		}}
		renderer = &fakeRenderer{doc: []byte("%PDF-fake")}
		storageDir = GinkgoT().TempDir()
		service = newService()
	})

	dto := func() *report.CreateReportDTO {
		return &report.CreateReportDTO{
			BusinessID: 1,
			Findings:   "Blocked emergency exit, expired extinguishers",
			Status:     report.StatusFail,
		}
	}

	Describe("CreateReport", func() {
		It("persists the report and stores the assessment and the document", func() {
			rep, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.ID).NotTo(BeZero())
			Expect(rep.InspectorID).To(Equal(int64(7)))
			Expect(rep.VisitDate).NotTo(BeZero())

			var a riskai.Assessment
			Expect(json.Unmarshal(rep.AIRiskAssessment, &a)).To(Succeed())
			Expect(a.RiskLevel).To(Equal(riskai.RiskHigh))

			Expect(rep.PDFPath).NotTo(BeNil())
			Expect(*rep.PDFPath).To(HavePrefix("/reports/report_"))
			Expect(*rep.PDFPath).To(HaveSuffix(".pdf"))

			files, err := os.ReadDir(storageDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(HaveLen(1))

			written, err := os.ReadFile(filepath.Join(storageDir, files[0].Name()))
			Expect(err).NotTo(HaveOccurred())
			Expect(written).To(Equal([]byte("%PDF-fake")))
		})

		It("aborts without a row when the business does not exist", func() {
			bad := dto()
			bad.BusinessID = 404

			_, err := service.CreateReport(context.Background(), 7, bad)
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
			Expect(repo.reports).To(BeEmpty())
		})

		It("still creates the report when the summarizer fails", func() {
			summarizer.err = errors.New("model unavailable")

			rep, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.AIRiskAssessment).To(BeEmpty())
			Expect(rep.PDFPath).NotTo(BeNil())
		})

		It("still creates the report when the renderer fails", func() {
			renderer.err = errors.New("font missing")

			rep, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.PDFPath).To(BeNil())
			Expect(rep.AIRiskAssessment).NotTo(BeEmpty())
		})

		It("still creates the report when both enrichments fail", func() {
			summarizer.err = errors.New("model unavailable")
			renderer.err = errors.New("font missing")

			rep, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.AIRiskAssessment).To(BeEmpty())
			Expect(rep.PDFPath).To(BeNil())
			Expect(repo.reports).To(HaveLen(1))
		})

		It("rejects empty findings before calling the summarizer", func() {
			empty := dto()
			empty.Findings = ""
			_, err := service.CreateReport(context.Background(), 7, empty)
			Expect(err).To(HaveOccurred())
			Expect(summarizer.calls).To(BeZero())
		})

		It("works without any summarizer configured", func() {
			service = report.NewService(repo, directory, nil, renderer, internal.ReportsConfig{
				StorageDir: storageDir,
				PublicPath: "/reports",
			}, logger.L())

			rep, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.AIRiskAssessment).To(BeEmpty())
		})

		It("defaults the status to fail", func() {
			d := dto()
			d.Status = ""

			rep, err := service.CreateReport(context.Background(), 7, d)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Status).To(Equal(report.StatusFail))
		})
	})

	Describe("UpdateReport", func() {
		var created *report.Report

		BeforeEach(func() {
			var err error
			created, err = service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
		})

		It("applies a partial edit without touching the enrichments", func() {
			status := report.StatusConditionalPass
			updated, err := service.UpdateReport(created.ID, report.UpdateReportDTO{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(report.StatusConditionalPass))
			Expect(updated.Findings).To(Equal(created.Findings))
			Expect(updated.AIRiskAssessment).NotTo(BeEmpty())
		})

		It("rejects an unknown status", func() {
			status := "maybe"
			_, err := service.UpdateReport(created.ID, report.UpdateReportDTO{Status: &status})
			Expect(err).To(HaveOccurred())
		})

		It("fails for an unknown report", func() {
			status := report.StatusPass
			_, err := service.UpdateReport(404, report.UpdateReportDTO{Status: &status})
			Expect(err).To(MatchError(internal.ErrReportNotFound))
		})
	})

	Describe("GetReportsByBusiness", func() {
		It("fails for an unknown business", func() {
			_, err := service.GetReportsByBusiness(404)
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
		})

		It("returns only that business's reports", func() {
			directory.businesses[2] = &business.Business{ID: 2, BusinessName: "Garage Levi"}

			_, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())
			other := dto()
			other.BusinessID = 2
			_, err = service.CreateReport(context.Background(), 7, other)
			Expect(err).NotTo(HaveOccurred())

			reports, err := service.GetReportsByBusiness(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(reports).To(HaveLen(1))
			Expect(reports[0].BusinessID).To(Equal(int64(2)))
		})
	})

	Describe("ExportExcel", func() {
		It("produces a workbook for the current reports", func() {
			_, err := service.CreateReport(context.Background(), 7, dto())
			Expect(err).NotTo(HaveOccurred())

			reports, err := service.ListReports()
			Expect(err).NotTo(HaveOccurred())

			workbook, err := service.ExportExcel(reports)
			Expect(err).NotTo(HaveOccurred())
			// XLSX files are zip archives.
			Expect(workbook[:2]).To(Equal([]byte("PK")))
		})
	})
})
