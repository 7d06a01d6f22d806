package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/noclaf/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// Profile prints the profile of the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.resourceService.FetchProfile(ctx)
	if err != nil {
		a.report(ctx, "profile", err)
		return err
	}
	printProfile(a.out, p)
	return nil
}

// Feed prints the post feed.
func (a *App) Feed(ctx context.Context) error {
	items, err := a.resourceService.FetchFeed(ctx)
	if err != nil {
		a.report(ctx, "feed", err)
		return err
	}
	printFeed(a.out, items)
	return nil
}

// Home loads profile and feed concurrently, the way the app's home screen
// does, and prints both once they have arrived. Both requests run to the
// end; the first failure is the one reported.
func (a *App) Home(ctx context.Context) error {
	var (
		profile models.Profile
		feed    []models.FeedItem
		g       errgroup.Group
	)

	g.Go(func() error {
		var err error
		profile, err = a.resourceService.FetchProfile(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		feed, err = a.resourceService.FetchFeed(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		a.report(ctx, "home", err)
		return err
	}

	printProfile(a.out, profile)
	printFeed(a.out, feed)
	return nil
}

func printProfile(w io.Writer, p models.Profile) {
	fmt.Fprintf(w, "Name:     %s\n", p.DisplayName)
	fmt.Fprintf(w, "Email:    %s\n", p.Email)
	if p.Birthday != "" {
		fmt.Fprintf(w, "Birthday: %s\n", p.Birthday)
	}
	if p.ProfileImageURL != nil {
		fmt.Fprintf(w, "Image:    %s\n", *p.ProfileImageURL)
	}
	if p.LastLoginAt != "" {
		fmt.Fprintf(w, "Last login: %s\n", p.LastLoginAt)
	}
}

func printFeed(w io.Writer, items []models.FeedItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No posts")
		return
	}
	for _, it := range items {
		author := it.Author.DisplayName
		if author == "" {
			author = it.Author.Email
		}
		fmt.Fprintf(w, "#%d %s by %s\n    %s\n", it.ID, it.Title, author, it.ImageURL)
	}
}
