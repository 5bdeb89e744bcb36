package main_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLicensingManagement(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "LicensingManagement Suite")
}
