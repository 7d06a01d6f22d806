package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/noclaf/internal/client/client"
	"github.com/dmitrijs2005/noclaf/internal/client/decode"
	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"github.com/dmitrijs2005/noclaf/internal/client/session"
	"github.com/dmitrijs2005/noclaf/internal/common"
	"github.com/dmitrijs2005/noclaf/internal/logging"
)

// ResourceService reads data that requires an authenticated session.
//
// Every call fails with common.ErrUnauthenticated, without a request, when
// the session is not authenticated. A 401/403 reply clears the session
// before the error is returned, unless a newer token has replaced the one
// that was rejected; any other failure leaves it alone.
type ResourceService interface {
	FetchProfile(ctx context.Context) (models.Profile, error)
	FetchFeed(ctx context.Context) ([]models.FeedItem, error)
	// Revalidate checks a stored session against the backend. A session
	// the server no longer accepts is cleared; the resulting snapshot is
	// returned together with any error.
	Revalidate(ctx context.Context) (models.Session, error)
}

type resourceService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
}

func NewResourceService(client client.Client, store session.Store, log logging.Logger) ResourceService {
	return &resourceService{client: client, store: store, log: log}
}

type fetchFunc func(ctx context.Context, token string) ([]byte, error)

func (s *resourceService) fetch(ctx context.Context, name string, call fetchFunc) ([]byte, error) {
	sess := s.store.Get()
	if !sess.IsAuthenticated {
		return nil, fmt.Errorf("%s: %w", name, common.ErrUnauthenticated)
	}

	data, err := call(ctx, sess.Token)
	if err != nil {
		if common.IsTokenRejected(err) {
			cleared, cerr := s.store.ClearIfToken(ctx, sess.Token)
			switch {
			case cerr != nil:
				s.log.Error(ctx, "failed to clear session", "error", cerr)
			case cleared:
				s.log.Warn(ctx, "token rejected, session cleared", "resource", name)
			default:
				s.log.Info(ctx, "stale token rejected, newer session kept", "resource", name)
			}
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return data, nil
}

func (s *resourceService) FetchProfile(ctx context.Context) (models.Profile, error) {
	data, err := s.fetch(ctx, "profile", s.client.GetUser)
	if err != nil {
		return models.Profile{}, err
	}

	env, err := decode.ProfileEnvelope(data)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile: %w", err)
	}
	if !env.Succeeded || env.Payload == nil {
		return models.Profile{}, fmt.Errorf("profile: %w: %s", common.ErrServerRejected, env.Message)
	}
	return *env.Payload, nil
}

func (s *resourceService) FetchFeed(ctx context.Context) ([]models.FeedItem, error) {
	data, err := s.fetch(ctx, "feed", s.client.LoadPosts)
	if err != nil {
		return nil, err
	}

	env, err := decode.FeedEnvelope(data)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return env.Payload, nil
}

func (s *resourceService) Revalidate(ctx context.Context) (models.Session, error) {
	if !s.store.Get().IsAuthenticated {
		return s.store.Get(), nil
	}
	_, err := s.FetchProfile(ctx)
	return s.store.Get(), err
}
