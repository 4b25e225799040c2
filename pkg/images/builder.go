// Package images turns CMS image references into display URLs. Resolution
// never fails past the caller: every path through Resolve ends in a usable,
// non-empty URL string.
package images

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bmelese/portfolio/pkg/core"
)

const cdnBase = "https://cdn.sanity.io/images"

// Builder assembles a CDN URL for one image reference. It is a value type:
// each chained call returns a copy, so a Builder may be reused safely.
type Builder struct {
	projectID string
	dataset   string
	ref       *core.ImageRef
	width     int
	height    int
	fit       string
}

// NewBuilder creates a builder for ref bound to a project and dataset.
func NewBuilder(projectID, dataset string, ref *core.ImageRef) Builder {
	return Builder{projectID: projectID, dataset: dataset, ref: ref}
}

// Width sets the requested pixel width.
func (b Builder) Width(n int) Builder {
	b.width = n
	return b
}

// Height sets the requested pixel height.
func (b Builder) Height(n int) Builder {
	b.height = n
	return b
}

// Fit sets the crop/fit mode (e.g. "crop", "max").
func (b Builder) Fit(mode string) Builder {
	b.fit = mode
	return b
}

// URL terminates the chain. It errors when the builder is unconfigured or
// the reference does not carry a well-formed asset ID; callers degrade to
// the raw asset URL in that case.
func (b Builder) URL() (string, error) {
	if b.projectID == "" || b.dataset == "" {
		return "", fmt.Errorf("image builder: missing project id or dataset")
	}
	if b.ref == nil || b.ref.Asset == nil {
		return "", fmt.Errorf("image builder: reference has no asset")
	}

	// Asset IDs follow the grammar image-<hash>-<WxH>-<format>.
	parts := strings.Split(b.ref.Asset.ID, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return "", fmt.Errorf("image builder: malformed asset id %q", b.ref.Asset.ID)
	}
	hash, dims, format := parts[1], parts[2], parts[3]
	if hash == "" || !strings.Contains(dims, "x") || format == "" {
		return "", fmt.Errorf("image builder: malformed asset id %q", b.ref.Asset.ID)
	}

	base := fmt.Sprintf("%s/%s/%s/%s-%s.%s", cdnBase, b.projectID, b.dataset, hash, dims, format)

	q := url.Values{}
	if b.width > 0 {
		q.Set("w", strconv.Itoa(b.width))
	}
	if b.height > 0 {
		q.Set("h", strconv.Itoa(b.height))
	}
	if b.fit != "" {
		q.Set("fit", b.fit)
	}
	if len(q) == 0 {
		return base, nil
	}
	return base + "?" + q.Encode(), nil
}
