package core

// Content queries, one per read operation. The strings are GROQ, executed
// verbatim by the hosted-CMS adapter; the filesystem adapter matches on the
// constants themselves and answers from local documents.

// QueryProjectBySlug expects Params{"slug": string} and yields one Project.
const QueryProjectBySlug = `*[_type == "project" && slug.current == $slug][0]{
  _id, _type, title, slug, shortDescription, fullDescription, techStack, role,
  liveUrl, githubUrl,
  thumbnail{asset->{_id, url}, alt},
  images[]{asset->{_id, url}, alt},
  featured, order, completedDate, tags
}`

// QueryProjects yields every Project, ordered for display.
const QueryProjects = `*[_type == "project"] | order(order asc, completedDate desc){
  _id, _type, title, slug, shortDescription, techStack, role, liveUrl, githubUrl,
  thumbnail{asset->{_id, url}, alt},
  featured, order, completedDate, tags
}`

// QueryFeaturedProjects yields the featured subset of QueryProjects.
const QueryFeaturedProjects = `*[_type == "project" && featured == true] | order(order asc, completedDate desc){
  _id, _type, title, slug, shortDescription, techStack, role, liveUrl, githubUrl,
  thumbnail{asset->{_id, url}, alt},
  featured, order, completedDate, tags
}`

// QuerySkills yields every Skill, pre-sorted by category then order.
const QuerySkills = `*[_type == "skill"] | order(category asc, order asc){
  _id, _type, name, category, order,
  icon{asset->{_id, url}}
}`

// QueryExperience yields every Experience, newest first.
const QueryExperience = `*[_type == "experience"] | order(startDate desc, order asc){
  _id, _type, role, company, startDate, endDate, current, location, description,
  technologies, order
}`

// QueryFocusAreas yields every FocusArea in display order.
const QueryFocusAreas = `*[_type == "focusArea"] | order(order asc){
  _id, _type, title, description, icon, visualType, gradientColors, order
}`

// QueryAbout yields the single About document.
const QueryAbout = `*[_type == "about"][0]{
  _id, _type, name, title, bio, bioParagraphs,
  profileImage{asset->{_id, url}, alt},
  location, heroHeadingPrefix, heroHeadingHighlight, heroHeadingSuffix,
  heroDescription, resumeUrl, linkedinUrl,
  workPrinciples[]{title, description, icon},
  techCategories[]{title, items},
  availableForWork,
  statistics[]{value, label},
  socialLinks[]{platform, url}
}`

// QueryServices yields the single ServicesPage document.
const QueryServices = `*[_type == "services"][0]{
  _id, _type, heroTitlePrefix, heroTitleHighlight, heroSubtitle,
  servicesList[]{icon, title, description, items},
  whySectionTitle, whyPoints[]{title, description},
  experienceBadgeValue, experienceBadgeLabel,
  processTitle, processSubtitle, processSteps[]{number, title, description},
  ctaHeadingMain, ctaHeadingHighlight, ctaSubtitle,
  ctaPrimaryText, ctaPrimaryLink, ctaSecondaryText, ctaSecondaryLink
}`

// QueryContact yields the single ContactInfo document.
const QueryContact = `*[_type == "contact"][0]{
  _id, _type, email, linkedin, github, heading, description
}`
