package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmelese/portfolio/pkg/core"
)

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "production")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotConfigured))

	_, err = NewClient("projid", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotConfigured))
}

func TestFetchSingleDocument(t *testing.T) {
	var gotQuery, gotSlug string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": map[string]any{
				"_id":   "p1",
				"title": "Alpha",
				"slug":  map[string]string{"current": "alpha"},
			},
		})
	}))
	defer server.Close()

	c, err := NewClient("projid", "production", WithBaseURL(server.URL))
	require.NoError(t, err)

	var project core.Project
	err = c.Fetch(context.Background(), core.QueryProjectBySlug, core.Params{"slug": "alpha"}, &project)
	require.NoError(t, err)

	assert.Equal(t, "Alpha", project.Title)
	assert.Equal(t, "alpha", project.Slug.Current)
	assert.Equal(t, core.QueryProjectBySlug, gotQuery)
	// Param values travel JSON-encoded.
	assert.Equal(t, `"alpha"`, gotSlug)
}

func TestFetchList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{"_id": "s1", "name": "Go", "category": "backend"},
				{"_id": "s2", "name": "Figma", "category": "design"},
			},
		})
	}))
	defer server.Close()

	c, err := NewClient("projid", "production", WithBaseURL(server.URL))
	require.NoError(t, err)

	var skills []core.Skill
	require.NoError(t, c.Fetch(context.Background(), core.QuerySkills, nil, &skills))

	require.Len(t, skills, 2)
	assert.Equal(t, "Go", skills[0].Name)
}

func TestFetchNullResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	c, err := NewClient("projid", "production", WithBaseURL(server.URL))
	require.NoError(t, err)

	var about core.About
	err = c.Fetch(context.Background(), core.QueryAbout, nil, &about)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query parse error", http.StatusBadRequest)
	}))
	defer server.Close()

	c, err := NewClient("projid", "production", WithBaseURL(server.URL))
	require.NoError(t, err)

	var about core.About
	err = c.Fetch(context.Background(), core.QueryAbout, nil, &about)
	require.Error(t, err)
	assert.False(t, errors.Is(err, core.ErrNotFound))
}
