package middleware

import (
	"context"

	"github.com/dtroode/socialfeed-server/internal/model"
)

type viewerHolderKey struct{}

type viewerHolder struct {
	viewer model.Viewer
	set    bool
}

func withViewerHolder(ctx context.Context, h *viewerHolder) context.Context {
	return context.WithValue(ctx, viewerHolderKey{}, h)
}

// recordViewer fills the holder installed by Logging, if any.
func recordViewer(ctx context.Context, viewer model.Viewer) {
	if h, ok := ctx.Value(viewerHolderKey{}).(*viewerHolder); ok {
		h.viewer = viewer
		h.set = true
	}
}
