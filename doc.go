// Package portfolio is the Composition Root for the portfolio content service.
//
// It connects the core content model (Domain Layer) with the infrastructure
// adapters (Source Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// The service treats a headless CMS as an unreliable upstream. Every page
// read resolves to a complete, ready-to-render model no matter what the
// source returns: missing documents, missing fields, and broken image
// references all degrade to sensible defaults instead of errors. The one
// deliberate exception is the contact form, where a failure must reach the
// visitor rather than vanish into a default.
//
// Features:
//
//   - **Hexagonal Architecture**: Content resolution is isolated from the storage backend.
//   - **Per-Field Fallbacks**: Pages render from whatever content exists, field by field.
//   - **Image Degrade Chain**: CDN crop URL, then raw asset URL, then a bundled default.
//   - **Default Adapter (Sanity)**: Out-of-the-box support for the Sanity Content Lake.
//   - **Local Content Mode**: A directory of YAML/JSON documents replaces the hosted store.
//   - **Extensible**: Designed to support other backends via `core.Source`.
//
// Usage:
//
//	// Assemble the application from the environment
//	cfg, err := portfolio.FromEnv()
//	app, err := portfolio.New(cfg,
//		portfolio.WithLogger(logger),
//	)
//
//	// Resolve a page
//	home := app.Resolver.Home(ctx)
package portfolio
