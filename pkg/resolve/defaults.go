package resolve

import "github.com/bmelese/portfolio/pkg/core"

// Named default constants, one per view-model field with a documented
// fallback. Resolution is per-field: a partially populated document keeps
// its CMS values and falls back here for the rest.

// About page defaults.
const (
	DefaultName        = "Your Name"
	DefaultTitle       = "Your Title"
	DefaultResumeURL   = "#"
	DefaultLinkedinURL = "#"
)

// Hero defaults shown on the home page.
const (
	DefaultHeroHeadingPrefix    = "Crafting"
	DefaultHeroHeadingHighlight = "Intuitive"
	DefaultHeroHeadingSuffix    = "Digital Future."
	DefaultHeroDescription      = "I'm Betisha, a Software Designer based in San Francisco. I blend aesthetic elegance with functional depth to build design systems and digital experiences that scale."
)

// Contact page defaults. DefaultContactEmail doubles as the recipient
// fallback for form submissions.
const (
	DefaultContactEmail       = "melesebety2673@gmail.com"
	DefaultContactLinkedin    = "/in/betty-melese"
	DefaultContactGithub      = "BethelemMelese"
	DefaultContactHeading     = "Let's create something unique."
	DefaultContactDescription = "I'm currently looking for new opportunities in Product Design and UX Strategy. Whether you have a project in mind or just want to say hello, feel free to reach out."
)

// Services page defaults.
const (
	DefaultServicesHeroPrefix    = "Expertise &"
	DefaultServicesHeroHighlight = "Services"
	DefaultServicesHeroSubtitle  = "Bridging the gap between high-fidelity design and high-performance engineering to build digital products that move the needle."
	DefaultWhySectionTitle       = "Why Work With Me?"
	DefaultExperienceBadgeValue  = "10+"
	DefaultExperienceBadgeLabel  = "YEARS INDUSTRY EXP"
	DefaultProcessTitle          = "The Process"
	DefaultProcessSubtitle       = "A structured path from initial spark to final launch."
	DefaultCtaHeadingMain        = "Ready to build something"
	DefaultCtaHeadingHighlight   = "exceptional?"
	DefaultCtaSubtitle           = "Whether you have a fully-formed idea or just the start of a concept, let's chat about how we can make it a reality."
	DefaultCtaPrimaryText        = "Let's Work Together"
	DefaultCtaPrimaryLink        = "/contact"
	DefaultCtaSecondaryText      = "View My Portfolio"
	DefaultCtaSecondaryLink      = "/projects"
)

// defaultStatistics are the headline numbers shown when the about document
// declares none.
func defaultStatistics() []core.Statistic {
	return []core.Statistic{
		{Value: "7+", Label: "Years Exp."},
		{Value: "50+", Label: "Projects"},
		{Value: "12", Label: "Awards"},
	}
}

// defaultServices is the services grid shown when the CMS list is empty.
func defaultServices() []core.ServiceItem {
	return []core.ServiceItem{
		{
			Icon:        "Code2",
			Title:       "Full-Stack Web Development",
			Description: "Building scalable, robust, and lightning-fast web applications from architecture to deployment.",
			Items:       []string{"Scalable React & Next.js Architectures", "Node.js & Python Backend API Systems", "Modern Database Design & Integration"},
		},
		{
			Icon:        "MousePointer2",
			Title:       "UI/UX & System Design",
			Description: "Creating consistent visual languages that improve user engagement and development speed.",
			Items:       []string{"Comprehensive Design Systems in Figma", "User Journey Mapping & Prototyping", "Accessibility-First Visual Design"},
		},
		{
			Icon:        "Building2",
			Title:       "Business & Enterprise",
			Description: "Simplifying complex data workflows and internal tools for high-efficiency operations.",
			Items:       []string{"Custom ERP & CRM Dashboards", "Internal Tooling & Workflow Automation", "Data Visualization & Reporting"},
		},
		{
			Icon:        "Gauge",
			Title:       "Performance & Code Quality",
			Description: "Optimizing existing applications for speed, security, and maintainability.",
			Items:       []string{"Web Vitals Optimization & SEO", "Codebase Refactoring & Security Audits", "CI/CD Pipelines & DevOps Setup"},
		},
		{
			Icon:        "Users",
			Title:       "Consulting & Leadership",
			Description: "Guiding engineering teams and founders through technical hurdles and product strategy.",
			Items:       []string{"Product Roadmap & Technical Strategy", "Tech-Stack Selection & Architecture Advice", "Dev-Team Mentorship & Process Design"},
		},
	}
}

// defaultWhyPoints backs the "why work with me" section.
func defaultWhyPoints() []core.WhyPoint {
	return []core.WhyPoint{
		{Title: "Design-to-Code Efficiency", Description: "Zero communication loss. I translate designs into pixel-perfect code myself, reducing overhead."},
		{Title: "Product-First Thinking", Description: "I don't just build features; I focus on your business goals and user needs from day one."},
		{Title: "Modern Tech Stack", Description: "Leveraging the latest stable technologies to ensure your product is future-proof and performant."},
	}
}

// defaultProcessSteps backs the process timeline.
func defaultProcessSteps() []core.ProcessStep {
	return []core.ProcessStep{
		{Number: "01", Title: "Discovery", Description: "In-depth research and goal alignment to define project scope."},
		{Number: "02", Title: "Strategy", Description: "Architecting solutions and mapping out the user journey."},
		{Number: "03", Title: "Development", Description: "Design execution and high-performance coding phase."},
		{Number: "04", Title: "Iteration", Description: "Continuous feedback loops and post-launch refinement."},
	}
}
