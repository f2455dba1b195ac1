package adapterout

import (
	"context"

	"pathora/internal/modules/resources/domain"
	portout "pathora/internal/modules/resources/port/out"
	"pathora/internal/platform/rest"
)

// HTTPCatalogAPI implements the catalog port over /resources.
type HTTPCatalogAPI struct {
	client *rest.Client
}

var _ portout.CatalogAPI = (*HTTPCatalogAPI)(nil)

func NewHTTPCatalogAPI(client *rest.Client) *HTTPCatalogAPI {
	return &HTTPCatalogAPI{client: client}
}

type resourcePayload struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Type        string `json:"type"`
}

func (a *HTTPCatalogAPI) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var payload []resourcePayload
	if err := a.client.Get(ctx, "/resources", &payload); err != nil {
		return nil, err
	}
	resources := make([]domain.Resource, 0, len(payload))
	for _, r := range payload {
		resources = append(resources, domain.Resource{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			URL:         r.URL,
			Kind:        r.Type,
		})
	}
	return resources, nil
}
