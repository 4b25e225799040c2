package resolve

import (
	"context"
	"errors"

	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/transform"
)

// Projects resolves the full project list as display cards. A failed fetch
// yields an empty list, not an error.
func (s *Service) Projects(ctx context.Context) []ProjectCard {
	return s.projectCards(ctx, "projects", core.QueryProjects)
}

// FeaturedProjects resolves the featured subset for the home page.
func (s *Service) FeaturedProjects(ctx context.Context) []ProjectCard {
	return s.projectCards(ctx, "home", core.QueryFeaturedProjects)
}

func (s *Service) projectCards(ctx context.Context, page, query string) []ProjectCard {
	var docs []core.Project
	if !s.fetch(ctx, page, query, nil, &docs) {
		return []ProjectCard{}
	}

	cards := make([]ProjectCard, 0, len(docs))
	for _, p := range transform.SortProjects(docs) {
		cards = append(cards, ProjectCard{
			ID:               p.ID,
			Title:            p.Title,
			Slug:             p.Slug.Current,
			ShortDescription: p.ShortDescription,
			TechStack:        orEmpty(p.TechStack),
			Tags:             orEmpty(p.Tags),
			ThumbnailURL:     s.images.Resolve(p.Thumbnail),
			Featured:         p.Featured,
		})
	}
	return cards
}

// Project resolves one project by slug, including its image gallery and
// links to the adjacent projects in display order.
//
// This is the one read path that surfaces an error: an unknown slug returns
// core.ErrNotFound so the caller can render a 404 instead of a defaulted
// page.
func (s *Service) Project(ctx context.Context, slug string) (ProjectDetail, error) {
	var doc core.Project
	err := s.source.Fetch(ctx, core.QueryProjectBySlug, core.Params{"slug": slug}, &doc)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.logger.Debug("no project for slug", "slug", slug)
		} else {
			s.logger.Warn("project fetch failed", "slug", slug, "error", err)
			s.observer.FetchFailed("project")
		}
		return ProjectDetail{}, err
	}

	detail := ProjectDetail{
		ID:               doc.ID,
		Title:            doc.Title,
		Slug:             doc.Slug.Current,
		ShortDescription: doc.ShortDescription,
		FullDescription:  orEmpty(doc.FullDescription.PlainText()),
		TechStack:        orEmpty(doc.TechStack),
		Role:             doc.Role,
		LiveURL:          doc.LiveURL,
		GithubURL:        doc.GithubURL,
		ThumbnailURL:     s.images.Resolve(doc.Thumbnail),
		CompletedDate:    doc.CompletedDate,
		Tags:             orEmpty(doc.Tags),
	}

	urls := make([]string, 0, len(doc.Images))
	for i := range doc.Images {
		urls = append(urls, s.images.Resolve(&doc.Images[i]))
	}
	detail.ImageURLs = urls

	// Adjacent projects need the resolved document's identity, so this
	// fetch is strictly ordered after the primary one. Its failure only
	// costs the prev/next links.
	detail.Prev, detail.Next = s.adjacentProjects(ctx, doc.ID)

	return detail, nil
}

func (s *Service) adjacentProjects(ctx context.Context, id string) (prev, next *ProjectLink) {
	var docs []core.Project
	if !s.fetch(ctx, "project", core.QueryProjects, nil, &docs) {
		return nil, nil
	}

	ordered := transform.SortProjects(docs)
	index := -1
	for i, p := range ordered {
		if p.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	if index > 0 {
		prev = s.projectLink(ordered[index-1])
	}
	if index < len(ordered)-1 {
		next = s.projectLink(ordered[index+1])
	}
	return prev, next
}

func (s *Service) projectLink(p core.Project) *ProjectLink {
	return &ProjectLink{
		Slug:         p.Slug.Current,
		Title:        p.Title,
		ThumbnailURL: s.images.Resolve(p.Thumbnail),
	}
}
