package licensing_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/licensing"
	"github.com/cityhall-dev/licensing-management/pkg/logger"
)

func TestLicensingService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Licensing Service Suite")
}

type fakeItemRepo struct {
	items  map[int64]*licensing.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*licensing.Item{}, nextID: 1}
}

func (r *fakeItemRepo) Create(item *licensing.Item) error {
	for _, existing := range r.items {
		if existing.ItemNumber == item.ItemNumber {
			return internal.ErrDuplicateItemNumber
		}
	}
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetAll() ([]*licensing.Item, error) {
	var out []*licensing.Item
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) GetByID(id int64) (*licensing.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, internal.ErrLicensingItemNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) Update(item *licensing.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

var _ = Describe("Licensing Service", func() {
	var (
		repo    *fakeItemRepo
		service *licensing.Service
	)

	BeforeEach(func() {
		repo = newFakeItemRepo()
		service = licensing.NewService(repo, logger.L())
	})

	Describe("CreateItem", func() {
		It("applies the catalog defaults", func() {
			item, err := service.CreateItem(&licensing.CreateItemDTO{
				ItemNumber: "4.2a",
				Name:       "Restaurant or coffee shop",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(item.LicensingTrack).To(Equal(licensing.TrackRegular))
			Expect(item.NeedsFireDeptApproval).To(BeTrue())
			Expect(item.NeedsPoliceApproval).To(BeFalse())
			Expect(item.ValidityYears).To(Equal(1))
		})

		It("honors explicit approval-body flags", func() {
			off := false
			on := true
			item, err := service.CreateItem(&licensing.CreateItemDTO{
				ItemNumber:            "8.9a",
				Name:                  "Auto repair garage",
				NeedsFireDeptApproval: &off,
				NeedsPoliceApproval:   &on,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(item.NeedsFireDeptApproval).To(BeFalse())
			Expect(item.NeedsPoliceApproval).To(BeTrue())
		})

		It("rejects an unknown licensing track", func() {
			_, err := service.CreateItem(&licensing.CreateItemDTO{
				ItemNumber:     "4.2a",
				Name:           "Restaurant",
				LicensingTrack: "fast",
			})
			Expect(err).To(HaveOccurred())
		})

		It("surfaces a duplicate item number as a conflict", func() {
			_, err := service.CreateItem(&licensing.CreateItemDTO{ItemNumber: "4.2a", Name: "First"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateItem(&licensing.CreateItemDTO{ItemNumber: "4.2a", Name: "Second"})
			Expect(err).To(MatchError(internal.ErrDuplicateItemNumber))
		})
	})

	Describe("UpdateItem", func() {
		It("applies only the provided fields", func() {
			item, err := service.CreateItem(&licensing.CreateItemDTO{
				ItemNumber: "4.2a",
				Name:       "Restaurant or coffee shop",
			})
			Expect(err).NotTo(HaveOccurred())

			years := 3
			updated, err := service.UpdateItem(item.ID, licensing.UpdateItemDTO{ValidityYears: &years})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.ValidityYears).To(Equal(3))
			Expect(updated.Name).To(Equal("Restaurant or coffee shop"))
		})

		It("fails for an unknown item", func() {
			years := 3
			_, err := service.UpdateItem(404, licensing.UpdateItemDTO{ValidityYears: &years})
			Expect(err).To(MatchError(internal.ErrLicensingItemNotFound))
		})
	})

	Describe("DeleteItem", func() {
		It("fails for an unknown item", func() {
			Expect(service.DeleteItem(404)).To(MatchError(internal.ErrLicensingItemNotFound))
		})
	})
})
