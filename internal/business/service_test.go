package business_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/business"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

func TestBusinessService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Business Service Suite")
}

type fakeBusinessRepo struct {
	businesses map[int64]*business.Business
	nextID     int64
}

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{businesses: map[int64]*business.Business{}, nextID: 1}
}

func (r *fakeBusinessRepo) Create(b *business.Business) error {
	b.ID = r.nextID
	r.nextID++
	r.businesses[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) GetAll() ([]*business.Business, error) {
	var out []*business.Business
	for _, b := range r.businesses {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBusinessRepo) GetByID(id int64) (*business.Business, error) {
	b, ok := r.businesses[id]
	if !ok {
		return nil, internal.ErrBusinessNotFound
	}
	return b, nil
}

func (r *fakeBusinessRepo) Update(b *business.Business) error {
	r.businesses[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) Delete(id int64) error {
	delete(r.businesses, id)
	return nil
}

type fakeCatalog struct {
	known map[int64]bool
}

func (c *fakeCatalog) Exists(id int64) (bool, error) {
	return c.known[id], nil
}

var _ = Describe("Business Service", func() {
	var (
		repo    *fakeBusinessRepo
		catalog *fakeCatalog
		service *business.Service
	)

	BeforeEach(func() {
		repo = newFakeBusinessRepo()
		catalog = &fakeCatalog{known: map[int64]bool{10: true}}
		service = business.NewService(repo, catalog, logger.L())
	})

	validDTO := func() *business.CreateBusinessDTO {
		return &business.CreateBusinessDTO{
			BusinessName:    "Cafe Hapina",
			Address:         "12 Herzl St",
			OwnerName:       "Noa Mizrahi",
			OwnerID:         "305112233",
			ContactPhone:    "03-5551234",
			Email:           "owner@cafehapina.co.il",
			LicensingItemID: 10,
		}
	}

	Describe("CreateBusiness", func() {
		It("registers a business with the default status", func() {
			b, err := service.CreateBusiness(validDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(b.ID).NotTo(BeZero())
			Expect(b.Status).To(Equal(business.StatusApplicationSubmitted))
		})

		It("rejects a classification against an unknown licensing item", func() {
			dto := validDTO()
			dto.LicensingItemID = 99

			_, err := service.CreateBusiness(dto)
			Expect(err).To(HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
			Expect(repo.businesses).To(BeEmpty())
		})

		It("rejects a missing licensing item reference", func() {
			dto := validDTO()
			dto.LicensingItemID = 0

			_, err := service.CreateBusiness(dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown status", func() {
			dto := validDTO()
			dto.Status = "pending"

			_, err := service.CreateBusiness(dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a malformed contact email", func() {
			dto := validDTO()
			dto.Email = "not-an-email"

			_, err := service.CreateBusiness(dto)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateBusiness", func() {
		var created *business.Business

		BeforeEach(func() {
			var err error
			created, err = service.CreateBusiness(validDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("applies only the provided fields", func() {
			status := business.StatusActive
			updated, err := service.UpdateBusiness(created.ID, business.UpdateBusinessDTO{
				Status: &status,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(business.StatusActive))
			Expect(updated.BusinessName).To(Equal("Cafe Hapina"))
		})

		It("re-checks the catalog when reclassifying", func() {
			unknown := int64(99)
			_, err := service.UpdateBusiness(created.ID, business.UpdateBusinessDTO{
				LicensingItemID: &unknown,
			})
			Expect(err).To(HaveOccurred())
		})

		It("fails for an unknown business", func() {
			name := "Ghost"
			_, err := service.UpdateBusiness(404, business.UpdateBusinessDTO{BusinessName: &name})
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
		})
	})

	Describe("DeleteBusiness", func() {
		It("removes an existing business", func() {
			created, err := service.CreateBusiness(validDTO())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteBusiness(created.ID)).To(Succeed())
			_, err = service.GetBusiness(created.ID)
			Expect(err).To(MatchError(internal.ErrBusinessNotFound))
		})

		It("fails for an unknown business", func() {
			Expect(service.DeleteBusiness(404)).To(MatchError(internal.ErrBusinessNotFound))
		})
	})
})
