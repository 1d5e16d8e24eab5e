package model

import (
	"fmt"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mrdunski/publication-zone/model/mock_model"
)

func newFile(ctrl *gomock.Controller, path string) *mock_model.MockTrackedFile {
	file := mock_model.NewMockTrackedFile(ctrl)
	file.EXPECT().Path().Return(path).AnyTimes()
	return file
}

var _ = Describe("Change format", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	It("renders the change type and path", func() {
		change := Change{ChangeType: Added, TrackedFile: newFile(ctrl, "pages/a.py")}
		Expect(fmt.Sprintf("%v", change)).To(Equal("{added: pages/a.py}"))

		change = Change{ChangeType: Modified, TrackedFile: newFile(ctrl, "b.json")}
		Expect(fmt.Sprintf("%v", change)).To(Equal("{modified: b.json}"))
	})

	It("renders a placeholder without a file", func() {
		Expect(fmt.Sprintf("%v", Change{ChangeType: Deleted})).To(Equal("{deleted: ?}"))
	})
})
