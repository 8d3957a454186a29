package git

import (
	"github.com/hashicorp/go-hclog"
)

// Client reads history from local repositories. It never touches remotes.
type Client struct {
	logger hclog.Logger
}

// New creates a Client. A nil logger discards output.
func New(logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{logger: logger}
}
