package mocks

import (
	"context"
	"errors"
	"sync"

	"github.com/mardi4nfdi/fdofacade/pkg/wikibase"
)

type Client struct {
	Impl struct {
		Fetch func(ctx context.Context, id string) (*wikibase.Entity, error)
	}
	Calls struct {
		Fetch []struct{ Id string }
	}
	mu sync.Mutex
}

func NewClient() *Client {
	return &Client{}
}

var _ wikibase.Client = &Client{}

func (c *Client) Fetch(ctx context.Context, id string) (*wikibase.Entity, error) {
	c.mu.Lock()
	c.Calls.Fetch = append(c.Calls.Fetch, struct{ Id string }{Id: id})
	c.mu.Unlock()

	if c.Impl.Fetch != nil {
		return c.Impl.Fetch(ctx, id)
	}
	panic(errors.New("it should no be called"))
}
