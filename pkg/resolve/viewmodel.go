package resolve

import (
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/transform"
)

// View-models are the flat, default-applied records handed to the
// presentation layer. They are built wholesale per request and never
// mutated afterwards.

// AboutView is the about-page view-model.
type AboutView struct {
	Name             string               `json:"name"`
	Title            string               `json:"title"`
	BioParagraphs    []string             `json:"bioParagraphs"`
	Location         string               `json:"location"`
	ProfileImageURL  string               `json:"profileImageUrl"`
	ResumeURL        string               `json:"resumeUrl"`
	LinkedinURL      string               `json:"linkedinUrl"`
	WorkPrinciples   []core.WorkPrinciple `json:"workPrinciples"`
	TechCategories   []core.TechCategory  `json:"techCategories"`
	AvailableForWork bool                 `json:"availableForWork"`
	Statistics       []core.Statistic     `json:"statistics"`
	SocialLinks      []core.SocialLink    `json:"socialLinks"`
}

// ContactView is the contact-page view-model.
type ContactView struct {
	Email       string `json:"email"`
	Linkedin    string `json:"linkedin"`
	Github      string `json:"github"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

// ServiceView is one resolved offering on the services page.
type ServiceView struct {
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

// ServicesView is the services-page view-model.
type ServicesView struct {
	HeroTitlePrefix      string             `json:"heroTitlePrefix"`
	HeroTitleHighlight   string             `json:"heroTitleHighlight"`
	HeroSubtitle         string             `json:"heroSubtitle"`
	Services             []ServiceView      `json:"services"`
	WhySectionTitle      string             `json:"whySectionTitle"`
	WhyPoints            []core.WhyPoint    `json:"whyPoints"`
	ExperienceBadgeValue string             `json:"experienceBadgeValue"`
	ExperienceBadgeLabel string             `json:"experienceBadgeLabel"`
	ProcessTitle         string             `json:"processTitle"`
	ProcessSubtitle      string             `json:"processSubtitle"`
	ProcessSteps         []core.ProcessStep `json:"processSteps"`
	CtaHeadingMain       string             `json:"ctaHeadingMain"`
	CtaHeadingHighlight  string             `json:"ctaHeadingHighlight"`
	CtaSubtitle          string             `json:"ctaSubtitle"`
	CtaPrimaryText       string             `json:"ctaPrimaryText"`
	CtaPrimaryLink       string             `json:"ctaPrimaryLink"`
	CtaSecondaryText     string             `json:"ctaSecondaryText"`
	CtaSecondaryLink     string             `json:"ctaSecondaryLink"`
}

// HeroView is the home-page hero block.
type HeroView struct {
	HeadingPrefix    string `json:"headingPrefix"`
	HeadingHighlight string `json:"headingHighlight"`
	HeadingSuffix    string `json:"headingSuffix"`
	Description      string `json:"description"`
	AvailableForWork bool   `json:"availableForWork"`
}

// ProjectCard is a project in list or teaser form.
type ProjectCard struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"shortDescription"`
	TechStack        []string `json:"techStack"`
	Tags             []string `json:"tags"`
	ThumbnailURL     string   `json:"thumbnailUrl"`
	Featured         bool     `json:"featured"`
}

// ProjectLink points at an adjacent project from a detail page.
type ProjectLink struct {
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// ProjectDetail is the full project-page view-model.
type ProjectDetail struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	ShortDescription string       `json:"shortDescription"`
	FullDescription  []string     `json:"fullDescription"`
	TechStack        []string     `json:"techStack"`
	Role             string       `json:"role"`
	LiveURL          string       `json:"liveUrl"`
	GithubURL        string       `json:"githubUrl"`
	ThumbnailURL     string       `json:"thumbnailUrl"`
	ImageURLs        []string     `json:"imageUrls"`
	CompletedDate    string       `json:"completedDate"`
	Tags             []string     `json:"tags"`
	Next             *ProjectLink `json:"next,omitempty"`
	Prev             *ProjectLink `json:"prev,omitempty"`
}

// ExperienceView is one resolved work-history entry.
type ExperienceView struct {
	Dates       string   `json:"dates"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
	Skills      []string `json:"skills"`
	Icon        string   `json:"icon"`
}

// FocusAreaView is one resolved focus-area card.
type FocusAreaView struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	VisualType   string `json:"visualType"`
	GradientFrom string `json:"gradientFrom,omitempty"`
	GradientTo   string `json:"gradientTo,omitempty"`
}

// HomeView aggregates every section of the home page.
type HomeView struct {
	Hero             HeroView               `json:"hero"`
	Statistics       []core.Statistic       `json:"statistics"`
	FeaturedProjects []ProjectCard          `json:"featuredProjects"`
	SkillGroups      []transform.SkillGroup `json:"skillGroups"`
	Experience       []ExperienceView       `json:"experience"`
	FocusAreas       []FocusAreaView        `json:"focusAreas"`
}
