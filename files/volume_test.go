package files

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/mrdunski/publication-zone/model"
)

type fileMatcher struct {
	fh TreeHashedFile
}

func (f fileMatcher) Match(actual interface{}) (success bool, err error) {
	file, ok := actual.(TreeHashedFile)
	return ok && f.fh.Equal(file), nil
}

func (f fileMatcher) FailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected %v to be equal %v", actual, f.fh)
}

func (f fileMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected %v to be other than %v", actual, f.fh)
}

func fileWith(path, hash string) interface{} {
	return fileMatcher{TreeHashedFile{
		path:     path,
		treeHash: hash,
	}}
}

var _ = Describe("Volume", func() {
	var testDir string

	write := func(subPath, content string) {
		full := filepath.Join(testDir, subPath)
		Expect(os.MkdirAll(filepath.Dir(full), 0700)).To(Succeed())
		Expect(os.WriteFile(full, []byte(content), 0600)).To(Succeed())
	}

	BeforeEach(func() {
		temp, err := os.MkdirTemp(os.TempDir(), "pz-vol-*")
		Expect(err).NotTo(HaveOccurred())
		testDir = temp

		write("index.py", "index page")
		write("pages/about.py", "about page")
		write("state/memory.json", "model weights")
		write("notes.txt", "untracked")
		write(".git/config", "noise")
	})

	AfterEach(func() {
		Expect(os.RemoveAll(testDir)).To(Succeed())
	})

	Describe("LoadTree", func() {
		It("loads files matching the extension filter", func() {
			volume := NewVolume(testDir, []string{".py", ".json"}, ".git")
			tree, err := volume.LoadTree()

			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(ContainElements(
				fileWith("index.py", "3fd050da9865ce1843c89ca982ef1e0cd08769ee67dcdb1ea4edcaee014b2b86"),
				fileWith("pages/about.py", "5360cfbbf0780c3470db53d7f4e8773486a6bef6f9029955f4b94e199693cdcd"),
				fileWith("state/memory.json", "a2d42c4aa884e21216cbb8da4c7ba2fcf9b6033b2331666e666145c24caf7a38"),
			))
			Expect(tree).To(HaveLen(3))
		})

		It("normalizes extensions without a leading dot", func() {
			volume := NewVolume(testDir, []string{"py"}, ".git")
			tree, err := volume.LoadTree()

			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(2))
		})

		It("skips excluded subtrees", func() {
			volume := NewVolume(testDir, []string{".py", ".json"}, ".git", "state")
			tree, err := volume.LoadTree()

			Expect(err).NotTo(HaveOccurred())
			Expect(tree).To(HaveLen(2))
			Expect(model.AsTrackedFiles(tree).HasPath("state/memory.json")).To(BeFalse())
		})

		It("returns an error for a missing dir", func() {
			volume := NewVolume(filepath.Join(testDir, "missing"), []string{".py"})
			_, err := volume.LoadTree()

			Expect(err).To(HaveOccurred())
		})

		It("returns an error when the path is a file", func() {
			volume := NewVolume(filepath.Join(testDir, "index.py"), []string{".py"})
			_, err := volume.LoadTree()

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("LoadFile", func() {
		It("captures hash and modification time", func() {
			volume := NewVolume(testDir, []string{".py"})
			file, err := volume.LoadFile("index.py")

			Expect(err).NotTo(HaveOccurred())
			Expect(file.Hash()).To(Equal("3fd050da9865ce1843c89ca982ef1e0cd08769ee67dcdb1ea4edcaee014b2b86"))
			Expect(file.Size()).To(Equal(int64(len("index page"))))

			stat, err := os.Stat(filepath.Join(testDir, "index.py"))
			Expect(err).NotTo(HaveOccurred())
			Expect(file.ModTime()).To(BeTemporally("==", stat.ModTime()))
		})

		It("loads an empty file without a hash", func() {
			write("empty.py", "")
			volume := NewVolume(testDir, []string{".py"})
			file, err := volume.LoadFile("empty.py")

			Expect(err).NotTo(HaveOccurred())
			Expect(file.Hash()).To(BeEmpty())
		})
	})
})
