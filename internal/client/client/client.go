package client

import (
	"context"
)

// Client is the transport contract to the backend. Methods return the raw
// response body of a 2xx reply; decoding is left to the caller.
type Client interface {
	Login(ctx context.Context, email, passwordDigest string) ([]byte, error)
	GetUser(ctx context.Context, token string) ([]byte, error)
	LoadPosts(ctx context.Context, token string) ([]byte, error)
}
