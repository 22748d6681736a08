package version

import (
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("version package utility", func() {
	Context("When printing a VersionContext", func() {
		It("should display the version and the commit information as a string", func() {
			vc := VersionContext{Name: "example", Version: "1.2.3", Commit: "abc123"}
			Expect(vc.String()).To(Equal("1.2.3 <commit: abc123>"))
		})
	})

	Context("When no ldflags are passed", func() {
		It("should still carry the project name", func() {
			Expect(Version.Name).To(Equal(projectName))
			Expect(Version.Version).ToNot(BeEmpty())
			Expect(Version.Commit).ToNot(BeEmpty())
		})
	})

	Context("When using a VersionContext", func() {
		It("should have JSON struct tags on fields", func() {
			nf, nexists := reflect.TypeOf(&Version).Elem().FieldByName("Name")
			Expect(nexists).To(BeTrue())
			Expect(string(nf.Tag)).To(Equal(`json:"name"`))

			vf, vexists := reflect.TypeOf(&Version).Elem().FieldByName("Version")
			Expect(vexists).To(BeTrue())
			Expect(string(vf.Tag)).To(Equal(`json:"version"`))

			cf, cexists := reflect.TypeOf(&Version).Elem().FieldByName("Commit")
			Expect(cexists).To(BeTrue())
			Expect(string(cf.Tag)).To(Equal(`json:"commit"`))
		})

		It("should only have three struct keys", func() {
			Expect(reflect.TypeOf(Version).NumField()).To(Equal(3))
		})
	})
})
