package context

import (
	"context"

	"github.com/dtroode/socialfeed-server/internal/model"
)

type viewerKey struct{}

// Manager stores the authenticated viewer in request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetViewerToContext returns a copy of ctx carrying viewer.
func (m *Manager) SetViewerToContext(ctx context.Context, viewer model.Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, viewer)
}

// GetViewerFromContext retrieves the viewer stored by SetViewerToContext.
//
// Returns the viewer and a boolean indicating if a viewer was found.
func (m *Manager) GetViewerFromContext(ctx context.Context) (model.Viewer, bool) {
	viewer, ok := ctx.Value(viewerKey{}).(model.Viewer)
	return viewer, ok
}
