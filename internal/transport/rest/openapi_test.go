package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRestTransport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Transport Suite")
}

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every mounted operation group", func() {
		for _, path := range []string{
			"/api/auth/register",
			"/api/auth/login",
			"/api/auth/me",
			"/api/admin/pending-users",
			"/api/admin/approve/{id}",
			"/api/admin/deny/{id}",
			"/api/licensing-items",
			"/api/licensing-items/{id}",
			"/api/defects",
			"/api/businesses",
			"/api/businesses/{id}",
			"/api/reports",
			"/api/reports/{id}",
			"/api/reports/export",
			"/api/reports/business/{businessId}",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("declares bearer authentication", func() {
		Expect(doc.Components.SecuritySchemes).To(HaveKey("BearerAuth"))
	})
})
