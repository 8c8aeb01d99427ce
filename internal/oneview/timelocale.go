package oneview

import (
	"context"
)

const timeLocalePath = "/rest/appliance/configuration/time-locale"

// TimeLocaleClient manages the appliance time and locale configuration, a
// singleton resource that is overwritten rather than patched.
type TimeLocaleClient struct {
	c *Client
}

// GetAll fetches the current configuration. The resource is a singleton,
// so the read-all accessor returns the one instance.
func (t *TimeLocaleClient) GetAll(ctx context.Context) (map[string]any, error) {
	var current map[string]any
	if err := t.c.get(ctx, timeLocalePath, nil, &current); err != nil {
		return nil, err
	}
	return current, nil
}

// Create overwrites the configuration with the supplied properties and
// returns the resulting resource.
func (t *TimeLocaleClient) Create(ctx context.Context, data map[string]any) (map[string]any, error) {
	var created map[string]any
	if err := t.c.post(ctx, timeLocalePath, data, &created); err != nil {
		return nil, err
	}
	return created, nil
}
