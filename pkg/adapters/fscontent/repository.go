// Package fscontent implements core.Source against a directory of plain
// YAML or JSON documents. It exists for development and tests: the site
// runs against local content with no hosted CMS, and edits show up on the
// next request.
//
// Layout mirrors the document types: single documents live at the root
// (about.yaml, contact.yaml, services.yaml), collections in subdirectories
// (projects/, skills/, experience/, focus-areas/). Field names follow the
// CMS wire names (_id, slug.current, completedDate, ...).
package fscontent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"log/slog"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/bmelese/portfolio/pkg/core"
)

// Collection directory names.
const (
	dirProjects   = "projects"
	dirSkills     = "skills"
	dirExperience = "experience"
	dirFocusAreas = "focus-areas"
)

const docPattern = "*.{yaml,yml,json}"

// Repository serves content from a local directory.
type Repository struct {
	root   string
	logger *slog.Logger
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Root   string
	Logger *slog.Logger
}

// NewRepository creates a repository rooted at config.Root. The directory
// must exist.
func NewRepository(config Config) (*Repository, error) {
	info, err := os.Stat(config.Root)
	if err != nil {
		return nil, fmt.Errorf("fscontent: content path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fscontent: content path is not a directory: %s", config.Root)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{root: config.Root, logger: logger}, nil
}

// Fetch implements core.Source by mapping the known query constants onto
// file lookups. Collection ordering mirrors what the hosted store would
// return for the same query.
func (r *Repository) Fetch(ctx context.Context, query string, params core.Params, result any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch query {
	case core.QueryAbout:
		return r.single("about", result)
	case core.QueryContact:
		return r.single("contact", result)
	case core.QueryServices:
		return r.single("services", result)
	case core.QuerySkills:
		docs, err := r.collection(dirSkills)
		if err != nil {
			return err
		}
		sortDocs(docs, byString("category"), byNumber("order"))
		return assign(docs, result)
	case core.QueryExperience:
		docs, err := r.collection(dirExperience)
		if err != nil {
			return err
		}
		sortDocs(docs, byStringDesc("startDate"), byNumber("order"))
		return assign(docs, result)
	case core.QueryFocusAreas:
		docs, err := r.collection(dirFocusAreas)
		if err != nil {
			return err
		}
		sortDocs(docs, byNumber("order"))
		return assign(docs, result)
	case core.QueryProjects, core.QueryFeaturedProjects:
		docs, err := r.collection(dirProjects)
		if err != nil {
			return err
		}
		if query == core.QueryFeaturedProjects {
			docs = filterDocs(docs, func(doc map[string]any) bool {
				featured, _ := doc["featured"].(bool)
				return featured
			})
		}
		sortDocs(docs, byNumber("order"), byStringDesc("completedDate"))
		return assign(docs, result)
	case core.QueryProjectBySlug:
		docs, err := r.collection(dirProjects)
		if err != nil {
			return err
		}
		slug, _ := params["slug"].(string)
		for _, doc := range docs {
			if slugOf(doc) == slug {
				return assign(doc, result)
			}
		}
		return core.ErrNotFound
	default:
		return fmt.Errorf("fscontent: unsupported query: %.40q", query)
	}
}

// single reads the one document named name at the repository root.
func (r *Repository) single(name string, result any) error {
	matches, err := doublestar.FilepathGlob(filepath.Join(r.root, name+".{yaml,yml,json}"))
	if err != nil {
		return fmt.Errorf("fscontent: globbing %s: %w", name, err)
	}
	if len(matches) == 0 {
		return core.ErrNotFound
	}
	doc, err := readDoc(matches[0])
	if err != nil {
		return err
	}
	return assign(doc, result)
}

// collection reads every document under dir, in file-name order.
func (r *Repository) collection(dir string) ([]map[string]any, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(r.root, dir, "**", docPattern))
	if err != nil {
		return nil, fmt.Errorf("fscontent: globbing %s: %w", dir, err)
	}
	sort.Strings(matches)

	docs := make([]map[string]any, 0, len(matches))
	for _, path := range matches {
		doc, err := readDoc(path)
		if err != nil {
			r.logger.Warn("skipping unreadable document", "path", path, "error", err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// readDoc parses one file into a generic document.
func readDoc(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fscontent: reading %s: %w", path, err)
	}

	var doc map[string]any
	if strings.HasSuffix(path, ".json") {
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("fscontent: parsing %s: %w", path, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fscontent: parsing %s: %w", path, err)
	}
	return doc, nil
}

// assign converts a generic document (or list) into the caller's typed
// result via a JSON round trip, the same decode path the hosted adapter
// uses.
func assign(doc any, result any) error {
	data, err := sonic.Marshal(doc)
	if err != nil {
		return fmt.Errorf("fscontent: encoding document: %w", err)
	}
	if err := sonic.Unmarshal(data, result); err != nil {
		return fmt.Errorf("fscontent: decoding document: %w", err)
	}
	return nil
}

func slugOf(doc map[string]any) string {
	slug, ok := doc["slug"].(map[string]any)
	if !ok {
		return ""
	}
	current, _ := slug["current"].(string)
	return current
}

func filterDocs(docs []map[string]any, keep func(map[string]any) bool) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		if keep(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// lessFunc compares two documents; 0 means equal under this key.
type lessFunc func(a, b map[string]any) int

func sortDocs(docs []map[string]any, keys ...lessFunc) {
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range keys {
			switch c := key(docs[i], docs[j]); {
			case c < 0:
				return true
			case c > 0:
				return false
			}
		}
		return false
	})
}

func byNumber(field string) lessFunc {
	return func(a, b map[string]any) int {
		av, bv := numField(a, field), numField(b, field)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

func byString(field string) lessFunc {
	return func(a, b map[string]any) int {
		return strings.Compare(strField(a, field), strField(b, field))
	}
}

func byStringDesc(field string) lessFunc {
	return func(a, b map[string]any) int {
		return strings.Compare(strField(b, field), strField(a, field))
	}
}

func numField(doc map[string]any, field string) float64 {
	switch v := doc[field].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	default:
		return 0
	}
}

func strField(doc map[string]any, field string) string {
	s, _ := doc[field].(string)
	return s
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fscontent"
}

var _ core.Source = (*Repository)(nil)
