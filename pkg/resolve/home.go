package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/transform"
)

// Home resolves every section of the home page. The five underlying
// queries are independent and run concurrently; each one fails open on its
// own, so a single slow or broken query degrades only its section.
func (s *Service) Home(ctx context.Context) HomeView {
	var (
		view   HomeView
		skills []transform.SkillGroup
		exp    []ExperienceView
		areas  []FocusAreaView
		cards  []ProjectCard
		hero   HeroView
		stats  []core.Statistic
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hero, stats = s.hero(gctx)
		return nil
	})
	g.Go(func() error {
		cards = s.FeaturedProjects(gctx)
		return nil
	})
	g.Go(func() error {
		skills = s.SkillGroups(gctx)
		return nil
	})
	g.Go(func() error {
		exp = s.Experience(gctx)
		return nil
	})
	g.Go(func() error {
		areas = s.FocusAreas(gctx)
		return nil
	})
	// Sub-resolutions absorb their own failures; Wait only orders the
	// assembly after every section is in.
	_ = g.Wait()

	view.Hero = hero
	view.Statistics = stats
	view.FeaturedProjects = cards
	view.SkillGroups = skills
	view.Experience = exp
	view.FocusAreas = areas
	return view
}

// hero resolves the hero block and statistics from the about document.
func (s *Service) hero(ctx context.Context) (HeroView, []core.Statistic) {
	const page = "home"

	var doc core.About
	s.fetch(ctx, page, core.QueryAbout, nil, &doc)

	available := true
	if doc.AvailableForWork != nil {
		available = *doc.AvailableForWork
	}

	return HeroView{
		HeadingPrefix:    s.str(page, "heroHeadingPrefix", doc.HeroHeadingPrefix, DefaultHeroHeadingPrefix),
		HeadingHighlight: s.str(page, "heroHeadingHighlight", doc.HeroHeadingHighlight, DefaultHeroHeadingHighlight),
		HeadingSuffix:    s.str(page, "heroHeadingSuffix", doc.HeroHeadingSuffix, DefaultHeroHeadingSuffix),
		Description:      s.str(page, "heroDescription", doc.HeroDescription, DefaultHeroDescription),
		AvailableForWork: available,
	}, statisticsOrDefault(doc.Statistics)
}

// SkillGroups resolves the skill list grouped and ordered for display.
func (s *Service) SkillGroups(ctx context.Context) []transform.SkillGroup {
	var docs []core.Skill
	if !s.fetch(ctx, "skills", core.QuerySkills, nil, &docs) {
		return []transform.SkillGroup{}
	}
	return transform.GroupSkills(docs)
}

// Experience resolves the work-history timeline.
func (s *Service) Experience(ctx context.Context) []ExperienceView {
	var docs []core.Experience
	if !s.fetch(ctx, "experience", core.QueryExperience, nil, &docs) {
		return []ExperienceView{}
	}

	out := make([]ExperienceView, 0, len(docs))
	for _, e := range docs {
		out = append(out, ExperienceView{
			Dates:       transform.FormatDateRange(e.StartDate, e.EndDate, e.Current),
			Title:       e.Role,
			Company:     e.Company,
			Location:    e.Location,
			Description: orEmpty(e.Description.PlainText()),
			Skills:      orEmpty(e.Technologies),
			Icon:        transform.RoleIcon(e.Role),
		})
	}
	return out
}

// FocusAreas resolves the focus-area cards.
func (s *Service) FocusAreas(ctx context.Context) []FocusAreaView {
	var docs []core.FocusArea
	if !s.fetch(ctx, "focusAreas", core.QueryFocusAreas, nil, &docs) {
		return []FocusAreaView{}
	}

	out := make([]FocusAreaView, 0, len(docs))
	for _, a := range docs {
		view := FocusAreaView{
			Title:       a.Title,
			Description: a.Description,
			Icon:        transform.FocusIcon(a.Icon),
			VisualType:  a.VisualType,
		}
		if view.VisualType == "" {
			view.VisualType = "gradient"
		}
		if a.GradientColors != nil {
			view.GradientFrom = transform.GradientColor(a.GradientColors.From)
			view.GradientTo = transform.GradientColor(a.GradientColors.To)
		}
		out = append(out, view)
	}
	return out
}
