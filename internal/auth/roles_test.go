package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cityhall-dev/licensing-management/internal"
	"github.com/cityhall-dev/licensing-management/internal/auth"
)

var _ = Describe("Role checks", func() {
	It("grants only the listed roles", func() {
		Expect(auth.RoleAllowed(internal.RoleAdmin, internal.RoleAdmin)).To(BeTrue())
		Expect(auth.RoleAllowed(internal.RoleManager, internal.RoleAdmin, internal.RoleManager)).To(BeTrue())
		Expect(auth.RoleAllowed(internal.RoleInspector, internal.RoleAdmin, internal.RoleManager)).To(BeFalse())
	})

	It("does not treat admin as implicitly allowed", func() {
		// There is no role hierarchy; every route names its roles.
		Expect(auth.RoleAllowed(internal.RoleAdmin, internal.RoleInspector)).To(BeFalse())
	})

	It("rejects an empty allow list", func() {
		Expect(auth.RoleAllowed(internal.RoleAdmin)).To(BeFalse())
	})
})
