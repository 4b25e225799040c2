package portfolio_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bmelese/portfolio"
)

// Example_localContent demonstrates resolving pages from a local content
// directory instead of the hosted CMS.
func Example_localContent() {
	// Create a temporary content directory for the example
	tmpDir, err := os.MkdirTemp("", "portfolio-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	about := "_id: about\nname: Ada Lovelace\ntitle: Software Engineer\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "about.yaml"), []byte(about), 0o644); err != nil {
		log.Fatal(err)
	}

	// Assemble the application against the local directory.
	app, err := portfolio.New(portfolio.Config{ContentDir: tmpDir})
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Resolve the about page. Fields absent from the content directory
	// come back as defaults rather than errors.
	page := app.Resolver.About(ctx)

	fmt.Printf("Name: %s\n", page.Name)
	fmt.Printf("Title: %s\n", page.Title)
	// Output:
	// Name: Ada Lovelace
	// Title: Software Engineer
}

// Example_defaults shows that resolution succeeds even with no content at all.
func Example_defaults() {
	tmpDir, err := os.MkdirTemp("", "portfolio-empty-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	app, err := portfolio.New(portfolio.Config{ContentDir: tmpDir})
	if err != nil {
		log.Fatal(err)
	}

	page := app.Resolver.About(context.Background())

	fmt.Printf("Name: %s\n", page.Name)
	// Output:
	// Name: Your Name
}
