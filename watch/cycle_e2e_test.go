package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mrdunski/publication-zone/gitrepo"
	"github.com/mrdunski/publication-zone/sitevol"
)

var _ = Describe("Loop with a real repository", func() {
	var workDir, remoteDir string
	var site sitevol.Site
	var publisher *gitrepo.Publisher
	var loop *Loop

	write := func(subPath, content string) {
		full := filepath.Join(workDir, subPath)
		Expect(os.WriteFile(full, []byte(content), 0600)).To(Succeed())
	}

	touch := func(subPath string, at time.Time) {
		Expect(os.Chtimes(filepath.Join(workDir, subPath), at, at)).To(Succeed())
	}

	remoteHead := func() plumbing.Hash {
		remote, err := gogit.PlainOpen(remoteDir)
		Expect(err).NotTo(HaveOccurred())
		ref, err := remote.Reference("refs/heads/master", true)
		Expect(err).NotTo(HaveOccurred())
		return ref.Hash()
	}

	BeforeEach(func() {
		var err error
		workDir, err = os.MkdirTemp(os.TempDir(), "pz-work-*")
		Expect(err).NotTo(HaveOccurred())
		remoteDir, err = os.MkdirTemp(os.TempDir(), "pz-remote-*")
		Expect(err).NotTo(HaveOccurred())

		repo, err := gogit.PlainInit(workDir, false)
		Expect(err).NotTo(HaveOccurred())
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{remoteDir},
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = gogit.PlainInit(remoteDir, true)
		Expect(err).NotTo(HaveOccurred())

		site = sitevol.Site{
			Path:         workDir,
			ManifestFile: "manifest.txt",
			Extensions:   []string{".py", ".json"},
		}
		gitCfg := gitrepo.Config{
			Remote:      "origin",
			Branch:      "master",
			AuthorName:  "publication-zone",
			AuthorEmail: "publication-zone@localhost",
			PushTimeout: 10 * time.Second,
		}

		write("a.py", "content of a")
		_, err = site.RegenerateManifest()
		Expect(err).NotTo(HaveOccurred())

		publisher, err = gitrepo.Open(gitCfg, workDir)
		Expect(err).NotTo(HaveOccurred())
		created, err := publisher.Publish(context.Background(), []string{"manifest.txt", "a.py"}, "initial")
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())

		touch("a.py", time.Now().Add(-time.Hour))
		loop = NewLoop(Config{Interval: time.Millisecond, MaxBackoff: time.Millisecond, AlertAfter: 5}, site, publisher, site.ManifestFile)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(workDir)).To(Succeed())
		Expect(os.RemoveAll(remoteDir)).To(Succeed())
	})

	It("publishes a new file and settles back to clean", func() {
		baseline := remoteHead()

		write("b.json", "{}")
		touch("b.json", time.Now().Add(time.Hour))

		loop.runCycle()

		head := remoteHead()
		Expect(head).NotTo(Equal(baseline))

		repo, err := gogit.PlainOpen(workDir)
		Expect(err).NotTo(HaveOccurred())
		commit, err := repo.CommitObject(head)
		Expect(err).NotTo(HaveOccurred())
		Expect(commit.Message).To(HavePrefix("manifest update "))

		content, err := os.ReadFile(site.ManifestPath())
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Split(strings.TrimSpace(string(content)), "\n")).To(Equal([]string{"a.py", "b.json"}))

		loop.runCycle()
		Expect(remoteHead()).To(Equal(head))
	})

	It("commits a deletion", func() {
		Expect(os.Remove(filepath.Join(workDir, "a.py"))).To(Succeed())

		loop.runCycle()

		repo, err := gogit.PlainOpen(workDir)
		Expect(err).NotTo(HaveOccurred())
		commit, err := repo.CommitObject(remoteHead())
		Expect(err).NotTo(HaveOccurred())
		tree, err := commit.Tree()
		Expect(err).NotTo(HaveOccurred())
		_, err = tree.File("a.py")
		Expect(err).To(HaveOccurred())
	})
})
