package gitrepo

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Config is the publisher configuration, embeddable in kong commands.
type Config struct {
	Remote      string        `env:"GIT_REMOTE" help:"Remote to push to." default:"origin" group:"Git"`
	Branch      string        `env:"GIT_BRANCH" help:"Branch to push. Defaults to the currently checked out branch." optional:"" group:"Git"`
	AuthorName  string        `env:"GIT_AUTHOR_NAME" help:"Commit author name." default:"publication-zone" group:"Git"`
	AuthorEmail string        `env:"GIT_AUTHOR_EMAIL" help:"Commit author email." default:"publication-zone@localhost" group:"Git"`
	PushTimeout time.Duration `env:"GIT_PUSH_TIMEOUT" help:"Upper bound for a single push." default:"30s" group:"Git"`
	StageAll    bool          `env:"GIT_STAGE_ALL" help:"Stage the whole working tree instead of only changed paths." group:"Git"`
	Username    string        `env:"GIT_USERNAME" help:"Username for HTTPS push." optional:"" group:"Git"`
	Token       string        `env:"GIT_TOKEN" help:"Token or password for HTTPS push." optional:"" group:"Git"`
}

func (c Config) auth() transport.AuthMethod {
	if c.Token == "" {
		return nil
	}

	username := c.Username
	if username == "" {
		username = "x-access-token"
	}

	return &http.BasicAuth{
		Username: username,
		Password: c.Token,
	}
}
