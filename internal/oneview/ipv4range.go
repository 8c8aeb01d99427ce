package oneview

import (
	"context"
)

const ipv4RangesPath = "/rest/id-pools/ipv4/ranges"

// IPv4RangesClient manages IPv4 range resources inside the ipv4 pool.
// Ranges are addressed by URI; create assigns one.
type IPv4RangesClient struct {
	c *Client
}

// GetByURI fetches a range resource.
func (r *IPv4RangesClient) GetByURI(ctx context.Context, uri string) (map[string]any, error) {
	var resource map[string]any
	if err := r.c.get(ctx, uri, nil, &resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Create adds a new range and returns the resulting resource.
func (r *IPv4RangesClient) Create(ctx context.Context, data map[string]any) (map[string]any, error) {
	var created map[string]any
	if err := r.c.post(ctx, ipv4RangesPath, data, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update replaces an existing range resource.
func (r *IPv4RangesClient) Update(ctx context.Context, uri string, data map[string]any) (map[string]any, error) {
	var updated map[string]any
	if err := r.c.put(ctx, uri, data, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a range resource.
func (r *IPv4RangesClient) Delete(ctx context.Context, uri string) error {
	return r.c.delete(ctx, uri)
}

// Enable flips the enabled flag of a range via its dedicated endpoint and
// returns the resulting resource.
func (r *IPv4RangesClient) Enable(ctx context.Context, uri string, enabled bool) (map[string]any, error) {
	body := map[string]any{"enabled": enabled, "type": "Range"}
	var updated map[string]any
	if err := r.c.put(ctx, uri, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// IPv4SubnetsClient reads IPv4 subnet resources; ranges are discovered by
// walking a subnet's rangeUris.
type IPv4SubnetsClient struct {
	c *Client
}

// GetByURI fetches a subnet resource.
func (s *IPv4SubnetsClient) GetByURI(ctx context.Context, uri string) (map[string]any, error) {
	var resource map[string]any
	if err := s.c.get(ctx, uri, nil, &resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// RangeURIs returns the range URIs referenced by a subnet resource.
func RangeURIs(subnet map[string]any) []string {
	raw, ok := subnet["rangeUris"].([]any)
	if !ok {
		return nil
	}
	uris := make([]string, 0, len(raw))
	for _, item := range raw {
		if uri, ok := item.(string); ok {
			uris = append(uris, uri)
		}
	}
	return uris
}
