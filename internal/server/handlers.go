package server

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/bmelese/portfolio/pkg/contact"
	"github.com/bmelese/portfolio/pkg/core"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.app.Resolver.Home(r.Context()))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.app.Resolver.About(r.Context()))
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.app.Resolver.Services(r.Context()))
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.app.Resolver.Contact(r.Context()))
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("featured") == "true" {
		s.writeJSON(w, r, http.StatusOK, s.app.Resolver.FeaturedProjects(r.Context()))
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.app.Resolver.Projects(r.Context()))
}

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	detail, err := s.app.Resolver.Project(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			s.writeError(w, r, http.StatusNotFound, "project not found")
			return
		}
		s.logger.Error("project lookup failed", "slug", r.PathValue("slug"), "error", err)
		s.writeError(w, r, http.StatusBadGateway, "content source unavailable")
		return
	}
	s.writeJSON(w, r, http.StatusOK, detail)
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var sub contact.Submission
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.app.Contact.Submit(r.Context(), sub)
	if result.OK {
		s.writeJSON(w, r, http.StatusOK, map[string]string{
			"message": result.Message,
			"id":      result.ID,
		})
		return
	}

	body := map[string]string{"error": result.Detail, "kind": string(result.Kind)}
	s.writeJSON(w, r, statusForKind(result.Kind), body)
}

func statusForKind(kind contact.Kind) int {
	switch kind {
	case contact.KindMissingField, contact.KindInvalidEmail:
		return http.StatusBadRequest
	case contact.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	data, err := sonic.Marshal(payload)
	if err != nil {
		s.logger.Error("response encoding failed", "path", r.URL.Path, "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, map[string]string{"error": message})
}
