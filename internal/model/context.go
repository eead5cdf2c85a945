package model

import (
	"context"
)

// ContextManager stores and loads the authenticated viewer in a request context.
type ContextManager interface {
	SetViewerToContext(ctx context.Context, viewer Viewer) context.Context
	GetViewerFromContext(ctx context.Context) (Viewer, bool)
}
