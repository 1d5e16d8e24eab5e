package model

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Changes", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	It("groups appended changes by type", func() {
		changes := Changes{}
		changes.Append(Change{ChangeType: Added, TrackedFile: newFile(ctrl, "a")})
		changes.Append(Change{ChangeType: Modified, TrackedFile: newFile(ctrl, "b")})
		changes.Append(Change{ChangeType: Deleted, TrackedFile: newFile(ctrl, "c")})

		Expect(changes.Added).To(HaveLen(1))
		Expect(changes.Modified).To(HaveLen(1))
		Expect(changes.Deleted).To(HaveLen(1))
		Expect(changes.Len()).To(Equal(3))
		Expect(changes.Empty()).To(BeFalse())
	})

	It("reports empty when nothing appended", func() {
		Expect(Changes{}.Empty()).To(BeTrue())
	})

	It("counts touch-only modifications", func() {
		changes := Changes{}
		changes.Append(Change{ChangeType: Modified, TrackedFile: newFile(ctrl, "a"), ContentUnchanged: true})
		changes.Append(Change{ChangeType: Modified, TrackedFile: newFile(ctrl, "b")})
		changes.Append(Change{ChangeType: Added, TrackedFile: newFile(ctrl, "c"), ContentUnchanged: true})

		Expect(changes.TouchOnly()).To(Equal(1))
	})

	Describe("Paths", func() {
		It("lists each path once, additions first", func() {
			changes := Changes{}
			changes.Append(Change{ChangeType: Deleted, TrackedFile: newFile(ctrl, "gone")})
			changes.Append(Change{ChangeType: Added, TrackedFile: newFile(ctrl, "new")})
			changes.Append(Change{ChangeType: Modified, TrackedFile: newFile(ctrl, "new")})

			Expect(changes.Paths()).To(Equal([]string{"new", "gone"}))
		})

		It("skips changes without a file", func() {
			changes := Changes{}
			changes.Append(Change{ChangeType: Deleted})

			Expect(changes.Paths()).To(BeEmpty())
		})
	})
})
