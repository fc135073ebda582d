package handlers

import (
	"net/http"

	"github.com/coolurl/coolurl/internal/ratelimit"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the URL shortener API under /api.
//
// Every route sits behind the rate limit middleware except the click path,
// which is explicitly exempted: redirect traffic must not burn a visitor's
// quota for the management endpoints.
func RegisterRoutes(api huma.API, urlHandler *URLHandler, development bool) {
	if development {
		huma.Register(api, huma.Operation{
			OperationID: "list-urls",
			Method:      http.MethodGet,
			Path:        "/api",
			Summary:     "List all shortened URLs",
			Description: "Development-only listing of every slug/URL pair.",
			Tags:        []string{"URLs"},
		}, urlHandler.ListURLs)
	} else {
		huma.Register(api, huma.Operation{
			OperationID: "status",
			Method:      http.MethodGet,
			Path:        "/api",
			Summary:     "Service status",
			Tags:        []string{"URLs"},
		}, urlHandler.Status)
	}

	huma.Register(api, huma.Operation{
		OperationID: "create-url",
		Method:      http.MethodPost,
		Path:        "/api/create",
		Summary:     "Shorten a URL",
		Description: "Allocates a unique slug and a one-time management key for the given URL.",
		Tags:        []string{"URLs"},
	}, urlHandler.CreateURL)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-url",
		Method:      http.MethodGet,
		Path:        "/api/get/{slug}",
		Summary:     "Resolve a slug",
		Tags:        []string{"URLs"},
	}, urlHandler.ResolveURL)

	huma.Register(api, huma.Operation{
		OperationID: "resolve-url-privileged",
		Method:      http.MethodPost,
		Path:        "/api/get/{slug}",
		Summary:     "Read the full record for a slug",
		Description: "Requires the slug's management key. Records a redacted access entry.",
		Tags:        []string{"URLs"},
	}, urlHandler.ResolveURLPrivileged)

	huma.Register(api, huma.Operation{
		OperationID: "click-url",
		Method:      http.MethodGet,
		Path:        "/api/click/{slug}",
		Summary:     "Resolve a slug and record a click",
		Tags:        []string{"URLs"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Disabled: true},
		},
	}, urlHandler.ClickURL)

	huma.Register(api, huma.Operation{
		OperationID: "delete-url",
		Method:      http.MethodPost,
		Path:        "/api/delete/{slug}",
		Summary:     "Soft delete a slug",
		Description: "Requires the slug's management key. Deleted slugs become invisible and cannot be restored.",
		Tags:        []string{"URLs"},
	}, urlHandler.DeleteURL)
}
