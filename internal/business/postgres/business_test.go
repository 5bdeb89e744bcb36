package postgres_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/business"
	businessPostgres "github.com/cityhall-dev/licensing-management/internal/business/postgres"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
	licensingPostgres "github.com/cityhall-dev/licensing-management/internal/licensing/postgres"
)

func TestBusinessPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Business Postgres Suite")
}

var _ = Describe("Business Repository", func() {
	var (
		db      *gorm.DB
		repo    *businessPostgres.Repository
		catalog *licensingPostgres.Repository
		item    *licensing.Item
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&licensing.Item{}, &business.Business{})).To(Succeed())

		repo = businessPostgres.NewRepository(db)
		catalog = licensingPostgres.NewRepository(db)

		item = &licensing.Item{ItemNumber: "4.2a", Name: "Restaurant or coffee shop"}
		Expect(catalog.Create(item)).To(Succeed())
	})

	newBusiness := func(name string, license *string) *business.Business {
		return &business.Business{
			BusinessName:    name,
			Address:         "12 Herzl St",
			OwnerName:       "Noa Mizrahi",
			OwnerID:         "305112233",
			ContactPhone:    "03-5551234",
			Status:          business.StatusApplicationSubmitted,
			LicenseNumber:   license,
			LicensingItemID: item.ID,
		}
	}

	Describe("Create", func() {
		It("persists a business", func() {
			b := newBusiness("Cafe Hapina", nil)
			Expect(repo.Create(b)).To(Succeed())
			Expect(b.ID).NotTo(BeZero())
		})

		It("rejects a duplicate license number", func() {
			license := "12345-2024"
			Expect(repo.Create(newBusiness("First", &license))).To(Succeed())

			err := repo.Create(newBusiness("Second", &license))
			Expect(err).To(MatchError(internal.ErrDuplicateLicenseNumber))
		})

		It("allows many businesses without a license number", func() {
			Expect(repo.Create(newBusiness("First", nil))).To(Succeed())
			Expect(repo.Create(newBusiness("Second", nil))).To(Succeed())
		})
	})

	Describe("GetByID", func() {
		It("loads the licensing classification with the business", func() {
			b := newBusiness("Cafe Hapina", nil)
			Expect(repo.Create(b)).To(Succeed())

			got, err := repo.GetByID(b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.BusinessName).To(Equal("Cafe Hapina"))
			Expect(got.LicensingItem).NotTo(BeNil())
			Expect(got.LicensingItem.ItemNumber).To(Equal("4.2a"))
		})

		It("returns not found for a missing id", func() {
			_, err := repo.GetByID(404)
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
		})
	})

	Describe("GetAll", func() {
		It("lists businesses with their classifications", func() {
			Expect(repo.Create(newBusiness("First", nil))).To(Succeed())
			Expect(repo.Create(newBusiness("Second", nil))).To(Succeed())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].LicensingItem).NotTo(BeNil())
		})
	})

	Describe("Update", func() {
		It("persists field changes", func() {
			b := newBusiness("Cafe Hapina", nil)
			Expect(repo.Create(b)).To(Succeed())

			b.Status = business.StatusActive
			Expect(repo.Update(b)).To(Succeed())

			got, err := repo.GetByID(b.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(business.StatusActive))
		})
	})

	Describe("Delete", func() {
		It("removes the row", func() {
			b := newBusiness("Cafe Hapina", nil)
			Expect(repo.Create(b)).To(Succeed())

			Expect(repo.Delete(b.ID)).To(Succeed())
			_, err := repo.GetByID(b.ID)
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
		})
	})

	Describe("licensing catalog Exists", func() {
		It("reports known and unknown ids", func() {
			ok, err := catalog.Exists(item.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = catalog.Exists(404)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
