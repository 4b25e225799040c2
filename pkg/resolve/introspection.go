package resolve

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	SourceType string `json:"source_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	sourceType := "unknown"
	if s.source != nil {
		sourceType = "source"
		if comp, ok := s.source.(introspection.Component); ok {
			sourceType = comp.ComponentType()
		}
	}

	return ServiceState{
		SourceType: sourceType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "resolver"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
