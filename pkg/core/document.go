// Package core defines the content domain: the typed document records served
// by the headless CMS, the Source boundary used to fetch them, and the pure
// rich-text helpers shared by the resolution layer.
package core

// Slug is the URL-safe identifier wrapper used by the CMS.
type Slug struct {
	Current string `json:"current" yaml:"current"`
}

// ImageAsset is the dereferenced binary asset behind an image reference.
type ImageAsset struct {
	ID  string `json:"_id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// ImageRef points at an image asset. The asset may be absent when the editor
// never uploaded one; resolution degrades to a default URL in that case.
type ImageRef struct {
	Asset *ImageAsset `json:"asset,omitempty" yaml:"asset,omitempty"`
	Alt   string      `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// SocialLink is a labelled profile URL on the about document.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// WorkPrinciple is a titled blurb on the about page.
type WorkPrinciple struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// TechCategory groups technology names under a heading on the about page.
type TechCategory struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// Statistic is a headline number with a label (e.g. "7+" / "Years Exp.").
type Statistic struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// About is the single about/hero document. Every field is optional; the
// resolution layer substitutes a named default for anything missing.
type About struct {
	ID                   string          `json:"_id" yaml:"id"`
	Name                 string          `json:"name,omitempty" yaml:"name,omitempty"`
	Title                string          `json:"title,omitempty" yaml:"title,omitempty"`
	Bio                  RichText        `json:"bio,omitempty" yaml:"bio,omitempty"`
	BioParagraphs        []string        `json:"bioParagraphs,omitempty" yaml:"bioParagraphs,omitempty"`
	ProfileImage         *ImageRef       `json:"profileImage,omitempty" yaml:"profileImage,omitempty"`
	Location             string          `json:"location,omitempty" yaml:"location,omitempty"`
	HeroHeadingPrefix    string          `json:"heroHeadingPrefix,omitempty" yaml:"heroHeadingPrefix,omitempty"`
	HeroHeadingHighlight string          `json:"heroHeadingHighlight,omitempty" yaml:"heroHeadingHighlight,omitempty"`
	HeroHeadingSuffix    string          `json:"heroHeadingSuffix,omitempty" yaml:"heroHeadingSuffix,omitempty"`
	HeroDescription      string          `json:"heroDescription,omitempty" yaml:"heroDescription,omitempty"`
	ResumeURL            string          `json:"resumeUrl,omitempty" yaml:"resumeUrl,omitempty"`
	LinkedinURL          string          `json:"linkedinUrl,omitempty" yaml:"linkedinUrl,omitempty"`
	WorkPrinciples       []WorkPrinciple `json:"workPrinciples,omitempty" yaml:"workPrinciples,omitempty"`
	TechCategories       []TechCategory  `json:"techCategories,omitempty" yaml:"techCategories,omitempty"`
	AvailableForWork     *bool           `json:"availableForWork,omitempty" yaml:"availableForWork,omitempty"`
	Statistics           []Statistic     `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	SocialLinks          []SocialLink    `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
}

// Project is a portfolio project document.
type Project struct {
	ID               string     `json:"_id" yaml:"id"`
	Title            string     `json:"title,omitempty" yaml:"title,omitempty"`
	Slug             Slug       `json:"slug" yaml:"slug"`
	ShortDescription string     `json:"shortDescription,omitempty" yaml:"shortDescription,omitempty"`
	FullDescription  RichText   `json:"fullDescription,omitempty" yaml:"fullDescription,omitempty"`
	TechStack        []string   `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	Role             string     `json:"role,omitempty" yaml:"role,omitempty"`
	LiveURL          string     `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty"`
	GithubURL        string     `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty"`
	Thumbnail        *ImageRef  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Images           []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
	Featured         bool       `json:"featured,omitempty" yaml:"featured,omitempty"`
	Order            int        `json:"order,omitempty" yaml:"order,omitempty"`
	CompletedDate    string     `json:"completedDate,omitempty" yaml:"completedDate,omitempty"`
	Tags             []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Skill is a single skill entry, grouped by category for display.
type Skill struct {
	ID       string    `json:"_id" yaml:"id"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Category string    `json:"category,omitempty" yaml:"category,omitempty"`
	Order    int       `json:"order,omitempty" yaml:"order,omitempty"`
	Icon     *ImageRef `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Experience is a work-history entry.
type Experience struct {
	ID           string   `json:"_id" yaml:"id"`
	Role         string   `json:"role,omitempty" yaml:"role,omitempty"`
	Company      string   `json:"company,omitempty" yaml:"company,omitempty"`
	StartDate    string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty" yaml:"current,omitempty"`
	Location     string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description  RichText `json:"description,omitempty" yaml:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Order        int      `json:"order,omitempty" yaml:"order,omitempty"`
}

// GradientColors is the optional pair of colors behind a focus-area visual.
type GradientColors struct {
	From string `json:"from,omitempty" yaml:"from,omitempty"`
	To   string `json:"to,omitempty" yaml:"to,omitempty"`
}

// FocusArea is a highlighted capability card shown next to the experience
// timeline.
type FocusArea struct {
	ID             string          `json:"_id" yaml:"id"`
	Title          string          `json:"title,omitempty" yaml:"title,omitempty"`
	Description    string          `json:"description,omitempty" yaml:"description,omitempty"`
	Icon           string          `json:"icon,omitempty" yaml:"icon,omitempty"`
	VisualType     string          `json:"visualType,omitempty" yaml:"visualType,omitempty"`
	GradientColors *GradientColors `json:"gradientColors,omitempty" yaml:"gradientColors,omitempty"`
	Order          int             `json:"order,omitempty" yaml:"order,omitempty"`
}

// ServiceItem is one offering on the services page.
type ServiceItem struct {
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Items       []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// WhyPoint is a selling point on the services page.
type WhyPoint struct {
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ProcessStep is a numbered step of the working process.
type ProcessStep struct {
	Number      string `json:"number,omitempty" yaml:"number,omitempty"`
	Title       string `json:"title,omitempty" yaml:"title,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ServicesPage is the single services-page document.
type ServicesPage struct {
	ID                   string        `json:"_id" yaml:"id"`
	HeroTitlePrefix      string        `json:"heroTitlePrefix,omitempty" yaml:"heroTitlePrefix,omitempty"`
	HeroTitleHighlight   string        `json:"heroTitleHighlight,omitempty" yaml:"heroTitleHighlight,omitempty"`
	HeroSubtitle         string        `json:"heroSubtitle,omitempty" yaml:"heroSubtitle,omitempty"`
	ServicesList         []ServiceItem `json:"servicesList,omitempty" yaml:"servicesList,omitempty"`
	WhySectionTitle      string        `json:"whySectionTitle,omitempty" yaml:"whySectionTitle,omitempty"`
	WhyPoints            []WhyPoint    `json:"whyPoints,omitempty" yaml:"whyPoints,omitempty"`
	ExperienceBadgeValue string        `json:"experienceBadgeValue,omitempty" yaml:"experienceBadgeValue,omitempty"`
	ExperienceBadgeLabel string        `json:"experienceBadgeLabel,omitempty" yaml:"experienceBadgeLabel,omitempty"`
	ProcessTitle         string        `json:"processTitle,omitempty" yaml:"processTitle,omitempty"`
	ProcessSubtitle      string        `json:"processSubtitle,omitempty" yaml:"processSubtitle,omitempty"`
	ProcessSteps         []ProcessStep `json:"processSteps,omitempty" yaml:"processSteps,omitempty"`
	CtaHeadingMain       string        `json:"ctaHeadingMain,omitempty" yaml:"ctaHeadingMain,omitempty"`
	CtaHeadingHighlight  string        `json:"ctaHeadingHighlight,omitempty" yaml:"ctaHeadingHighlight,omitempty"`
	CtaSubtitle          string        `json:"ctaSubtitle,omitempty" yaml:"ctaSubtitle,omitempty"`
	CtaPrimaryText       string        `json:"ctaPrimaryText,omitempty" yaml:"ctaPrimaryText,omitempty"`
	CtaPrimaryLink       string        `json:"ctaPrimaryLink,omitempty" yaml:"ctaPrimaryLink,omitempty"`
	CtaSecondaryText     string        `json:"ctaSecondaryText,omitempty" yaml:"ctaSecondaryText,omitempty"`
	CtaSecondaryLink     string        `json:"ctaSecondaryLink,omitempty" yaml:"ctaSecondaryLink,omitempty"`
}

// ContactInfo is the single contact document. Its email doubles as the
// recipient address for contact-form submissions.
type ContactInfo struct {
	ID          string `json:"_id" yaml:"id"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Linkedin    string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Github      string `json:"github,omitempty" yaml:"github,omitempty"`
	Heading     string `json:"heading,omitempty" yaml:"heading,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
