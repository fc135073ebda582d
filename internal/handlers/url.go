package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/coolurl/coolurl/internal/analytics"
	"github.com/coolurl/coolurl/internal/messaging"
	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"
)

// URLHandler exposes the shortened-URL registry over HTTP.
type URLHandler struct {
	registry       *shortener.Service
	development    bool
	publishCreated messaging.Publish[analytics.URLCreatedEvent]
	publishClicked messaging.Publish[analytics.URLClickedEvent]
	publishDeleted messaging.Publish[analytics.URLDeletedEvent]
	logger         *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(
	registry *shortener.Service,
	development bool,
	publishCreated messaging.Publish[analytics.URLCreatedEvent],
	publishClicked messaging.Publish[analytics.URLClickedEvent],
	publishDeleted messaging.Publish[analytics.URLDeletedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		registry:       registry,
		development:    development,
		publishCreated: publishCreated,
		publishClicked: publishClicked,
		publishDeleted: publishDeleted,
		logger:         logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds per-request metadata extracted by the middleware.
type RequestMeta struct {
	RequestID string
	ClientIP  string
	UserAgent string
	Referrer  string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

// Status answers the index route in non-development mode.
func (h *URLHandler) Status(_ context.Context, _ *struct{}) (*StatusResponse, error) {
	resp := &StatusResponse{}
	resp.Body.Message = "OK"

	return resp, nil
}

// ListURLs answers the index route in development mode with every
// slug/URL pair, deleted records included.
func (h *URLHandler) ListURLs(ctx context.Context, _ *struct{}) (*ListURLsResponse, error) {
	views, err := h.registry.List(ctx)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	resp := &ListURLsResponse{Body: make([]URLListItem, 0, len(views))}
	for _, view := range views {
		resp.Body = append(resp.Body, URLListItem{Slug: string(view.Slug), URL: view.URL})
	}

	return resp, nil
}

// CreateURL shortens a URL and returns its slug and one-time key.
func (h *URLHandler) CreateURL(ctx context.Context, req *CreateURLRequest) (*CreateURLResponse, error) {
	slug, key, err := h.registry.Create(ctx, req.Body.URL)
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	h.publish(ctx, "url created", string(slug), func() error {
		return h.publishCreated(&analytics.URLCreatedEvent{
			Slug:      string(slug),
			URL:       req.Body.URL,
			CreatedAt: time.Now().UnixMilli(),
		})
	})

	resp := &CreateURLResponse{}
	resp.Body.Slug = string(slug)
	resp.Body.Key = string(key)

	return resp, nil
}

// ResolveURL returns the public view for a slug.
func (h *URLHandler) ResolveURL(ctx context.Context, req *SlugRequest) (*PublicURLResponse, error) {
	view, err := h.registry.ResolvePublic(ctx, shortener.Slug(req.Slug))
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	resp := &PublicURLResponse{}
	resp.Body.Slug = string(view.Slug)
	resp.Body.URL = view.URL

	return resp, nil
}

// ResolveURLPrivileged returns the full record, access logs included, after
// key validation.
func (h *URLHandler) ResolveURLPrivileged(ctx context.Context, req *PrivilegedRequest) (*RecordResponse, error) {
	record, err := h.registry.ResolvePrivileged(ctx, shortener.Slug(req.Slug), shortener.Key(req.Body.Key))
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	resp := &RecordResponse{}
	resp.Body.Slug = string(record.Slug)
	resp.Body.URL = record.URL
	resp.Body.Key = string(record.Key)
	resp.Body.Clicks = record.Clicks
	resp.Body.Accesses = record.Accesses
	resp.Body.CreatedAt = record.CreatedAt
	resp.Body.DeletedAt = record.DeletedAt

	return resp, nil
}

// ClickURL records a click against a slug and returns the public view.
func (h *URLHandler) ClickURL(ctx context.Context, req *SlugRequest) (*PublicURLResponse, error) {
	view, err := h.registry.RecordClick(ctx, shortener.Slug(req.Slug))
	if err != nil {
		return nil, h.mapError(ctx, err)
	}

	h.publish(ctx, "url clicked", string(view.Slug), func() error {
		return h.publishClicked(&analytics.URLClickedEvent{
			Slug:      string(view.Slug),
			ClickedAt: time.Now().UnixMilli(),
		})
	})

	resp := &PublicURLResponse{}
	resp.Body.Slug = string(view.Slug)
	resp.Body.URL = view.URL

	return resp, nil
}

// DeleteURL soft deletes a slug after key validation.
func (h *URLHandler) DeleteURL(ctx context.Context, req *PrivilegedRequest) (*StatusResponse, error) {
	if err := h.registry.SoftDelete(ctx, shortener.Slug(req.Slug), shortener.Key(req.Body.Key)); err != nil {
		return nil, h.mapError(ctx, err)
	}

	h.publish(ctx, "url deleted", req.Slug, func() error {
		return h.publishDeleted(&analytics.URLDeletedEvent{
			Slug:      req.Slug,
			DeletedAt: time.Now().UnixMilli(),
		})
	})

	resp := &StatusResponse{}
	resp.Body.Message = "OK"

	return resp, nil
}

// publish runs a publish function; failures are logged, never surfaced.
func (h *URLHandler) publish(ctx context.Context, what, slug string, fn func() error) {
	if err := fn(); err != nil {
		h.logger.Error("failed to publish event",
			zap.String("event", what),
			zap.String("slug", slug),
			zap.String("requestId", RequestMetaFromContext(ctx).RequestID),
			zap.Error(err),
		)
	}
}

// mapError translates registry errors to HTTP errors. Unexpected failures
// are normalized to an opaque internal error; in development mode the
// underlying cause is attached as a diagnostic detail.
func (h *URLHandler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, shortener.ErrInvalidURL):
		return huma.Error400BadRequest("Invalid URL")
	case errors.Is(err, shortener.ErrInvalidSlug):
		return huma.Error400BadRequest("Invalid slug")
	case errors.Is(err, shortener.ErrInvalidKey):
		return huma.Error400BadRequest("Invalid slug or key")
	case errors.Is(err, shortener.ErrNotFound):
		return huma.Error404NotFound("Slug not found")
	case errors.Is(err, shortener.ErrAccessDenied):
		return huma.Error403Forbidden("Access denied")
	case errors.Is(err, shortener.ErrDuplicate):
		return huma.Error422UnprocessableEntity("Duplicate key error")
	}

	h.logger.Error("request failed",
		zap.String("requestId", RequestMetaFromContext(ctx).RequestID),
		zap.Error(err),
	)

	if h.development {
		return huma.Error500InternalServerError("Internal service error", err)
	}

	return huma.Error500InternalServerError("Internal service error")
}
