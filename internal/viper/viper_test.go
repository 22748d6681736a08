package viper

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Viper tests", func() {
	Context("Lazy Loading Viper", func() {
		When("the viper instance hasn't been initialized", func() {
			BeforeEach(Reset)
			It("should be initialized when calling for it", func() {
				_ = Instance()
				Expect(instance).ToNot(BeNil())
			})
		})
	})

	Context("Getting the project-specific Viper instance", func() {
		It("Should return the same instance on every call", func() {
			Instance().Set("foo", "bar")
			Expect(Instance().Get("foo")).To(Equal("bar"))
		})
	})

	Context("Resetting the instance", func() {
		It("should drop previously set values", func() {
			Instance().Set("json", "somewhere.json")
			Reset()
			Expect(Instance().IsSet("json")).To(BeFalse())
		})
	})
})
