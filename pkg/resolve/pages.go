package resolve

import (
	"context"

	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/images"
	"github.com/bmelese/portfolio/pkg/transform"
)

// About resolves the about-page view-model. Always usable: any field the
// CMS left blank carries its documented default.
func (s *Service) About(ctx context.Context) AboutView {
	const page = "about"

	var doc core.About
	s.fetch(ctx, page, core.QueryAbout, nil, &doc)

	bio := doc.BioParagraphs
	if len(bio) == 0 {
		bio = doc.Bio.PlainText()
	}
	if bio == nil {
		bio = []string{}
	}

	available := true
	if doc.AvailableForWork != nil {
		available = *doc.AvailableForWork
	} else {
		s.observer.FallbackApplied(page, "availableForWork")
	}

	return AboutView{
		Name:             s.str(page, "name", doc.Name, DefaultName),
		Title:            s.str(page, "title", doc.Title, DefaultTitle),
		BioParagraphs:    bio,
		Location:         doc.Location,
		ProfileImageURL:  s.images.Resolve(doc.ProfileImage, images.WithWidth(800), images.WithHeight(800), images.WithFit("crop")),
		ResumeURL:        s.str(page, "resumeUrl", doc.ResumeURL, DefaultResumeURL),
		LinkedinURL:      s.str(page, "linkedinUrl", doc.LinkedinURL, DefaultLinkedinURL),
		WorkPrinciples:   completePrinciples(doc.WorkPrinciples),
		TechCategories:   completeCategories(doc.TechCategories),
		AvailableForWork: available,
		Statistics:       statisticsOrDefault(doc.Statistics),
		SocialLinks:      orEmpty(doc.SocialLinks),
	}
}

// Contact resolves the contact-page view-model.
func (s *Service) Contact(ctx context.Context) ContactView {
	const page = "contact"

	var doc core.ContactInfo
	s.fetch(ctx, page, core.QueryContact, nil, &doc)

	return ContactView{
		Email:       s.str(page, "email", doc.Email, DefaultContactEmail),
		Linkedin:    s.str(page, "linkedin", doc.Linkedin, DefaultContactLinkedin),
		Github:      s.str(page, "github", doc.Github, DefaultContactGithub),
		Heading:     s.str(page, "heading", doc.Heading, DefaultContactHeading),
		Description: s.str(page, "description", doc.Description, DefaultContactDescription),
	}
}

// Services resolves the services-page view-model.
func (s *Service) Services(ctx context.Context) ServicesView {
	const page = "services"

	var doc core.ServicesPage
	s.fetch(ctx, page, core.QueryServices, nil, &doc)

	items := doc.ServicesList
	if len(items) == 0 {
		s.observer.FallbackApplied(page, "servicesList")
		items = defaultServices()
	}
	services := make([]ServiceView, 0, len(items))
	for _, item := range items {
		services = append(services, ServiceView{
			Icon:        transform.ServiceIcon(item.Icon),
			Title:       item.Title,
			Description: item.Description,
			Items:       orEmpty(item.Items),
		})
	}

	why := doc.WhyPoints
	if len(why) == 0 {
		s.observer.FallbackApplied(page, "whyPoints")
		why = defaultWhyPoints()
	}

	steps := doc.ProcessSteps
	if len(steps) == 0 {
		s.observer.FallbackApplied(page, "processSteps")
		steps = defaultProcessSteps()
	}

	return ServicesView{
		HeroTitlePrefix:      s.str(page, "heroTitlePrefix", doc.HeroTitlePrefix, DefaultServicesHeroPrefix),
		HeroTitleHighlight:   s.str(page, "heroTitleHighlight", doc.HeroTitleHighlight, DefaultServicesHeroHighlight),
		HeroSubtitle:         s.str(page, "heroSubtitle", doc.HeroSubtitle, DefaultServicesHeroSubtitle),
		Services:             services,
		WhySectionTitle:      s.str(page, "whySectionTitle", doc.WhySectionTitle, DefaultWhySectionTitle),
		WhyPoints:            why,
		ExperienceBadgeValue: s.str(page, "experienceBadgeValue", doc.ExperienceBadgeValue, DefaultExperienceBadgeValue),
		ExperienceBadgeLabel: s.str(page, "experienceBadgeLabel", doc.ExperienceBadgeLabel, DefaultExperienceBadgeLabel),
		ProcessTitle:         s.str(page, "processTitle", doc.ProcessTitle, DefaultProcessTitle),
		ProcessSubtitle:      s.str(page, "processSubtitle", doc.ProcessSubtitle, DefaultProcessSubtitle),
		ProcessSteps:         steps,
		CtaHeadingMain:       s.str(page, "ctaHeadingMain", doc.CtaHeadingMain, DefaultCtaHeadingMain),
		CtaHeadingHighlight:  s.str(page, "ctaHeadingHighlight", doc.CtaHeadingHighlight, DefaultCtaHeadingHighlight),
		CtaSubtitle:          s.str(page, "ctaSubtitle", doc.CtaSubtitle, DefaultCtaSubtitle),
		CtaPrimaryText:       s.str(page, "ctaPrimaryText", doc.CtaPrimaryText, DefaultCtaPrimaryText),
		CtaPrimaryLink:       s.str(page, "ctaPrimaryLink", doc.CtaPrimaryLink, DefaultCtaPrimaryLink),
		CtaSecondaryText:     s.str(page, "ctaSecondaryText", doc.CtaSecondaryText, DefaultCtaSecondaryText),
		CtaSecondaryLink:     s.str(page, "ctaSecondaryLink", doc.CtaSecondaryLink, DefaultCtaSecondaryLink),
	}
}

// completePrinciples drops entries missing a title or description; editors
// save drafts with holes and the page should not render them.
func completePrinciples(in []core.WorkPrinciple) []core.WorkPrinciple {
	out := make([]core.WorkPrinciple, 0, len(in))
	for _, p := range in {
		if p.Title != "" && p.Description != "" {
			out = append(out, p)
		}
	}
	return out
}

// completeCategories drops entries missing a title or items.
func completeCategories(in []core.TechCategory) []core.TechCategory {
	out := make([]core.TechCategory, 0, len(in))
	for _, c := range in {
		if c.Title != "" && c.Items != nil {
			out = append(out, c)
		}
	}
	return out
}

func statisticsOrDefault(in []core.Statistic) []core.Statistic {
	if len(in) > 0 {
		return in
	}
	return defaultStatistics()
}

// orEmpty normalizes a nil slice to an empty one so view-models always
// serialize as arrays.
func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
