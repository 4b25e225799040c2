// Bench generates a synthetic content directory and measures page
// resolution throughput against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bmelese/portfolio"
)

func main() {
	count := flag.Int("count", 200, "Number of projects to generate")
	rounds := flag.Int("rounds", 100, "Number of home page resolutions to time")
	keep := flag.Bool("keep", false, "Keep the generated content directory after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "portfolio_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping content dir: %s\n", benchDir)
		}
	}()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := generate(benchDir, *count); err != nil {
		panic(err)
	}

	app, err := portfolio.New(portfolio.Config{ContentDir: benchDir}, portfolio.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	ctx := context.Background()

	// Warm up once so file-system cache effects do not dominate.
	_ = app.Resolver.Home(ctx)

	start := time.Now()
	for i := 0; i < *rounds; i++ {
		home := app.Resolver.Home(ctx)
		if len(home.FeaturedProjects) == 0 {
			panic("resolution returned no featured projects")
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("Resolved home page %d times over %d projects\n", *rounds, *count)
	fmt.Printf("Total: %s, per resolution: %s\n", elapsed, elapsed/time.Duration(*rounds))
}

func generate(dir string, count int) error {
	if err := os.MkdirAll(filepath.Join(dir, "projects"), 0o755); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		doc := fmt.Sprintf(
			"_id: p%d\ntitle: Project %d\nslug: {current: project-%d}\norder: %d\nfeatured: %v\ncompletedDate: \"2024-01-01\"\n",
			i, i, i, i%10, i%5 == 0,
		)
		path := filepath.Join(dir, "projects", fmt.Sprintf("project-%d.yaml", i))
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return err
		}
	}
	about := "_id: about\nname: Bench Author\ntitle: Engineer\n"
	return os.WriteFile(filepath.Join(dir, "about.yaml"), []byte(about), 0o644)
}
