package oneview

import (
	"context"
	"fmt"
	"net/url"
)

const idPoolsPath = "/rest/id-pools"

// IDPoolsClient manages identifier pools. Every operation is keyed by a
// pool type discriminator selecting the identifier namespace.
type IDPoolsClient struct {
	c *Client
}

// GetSchema fetches the JSON schema of the ID pool resource.
func (p *IDPoolsClient) GetSchema(ctx context.Context) (map[string]any, error) {
	var schema map[string]any
	if err := p.c.get(ctx, idPoolsPath+"/schema", nil, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// GetPoolType fetches the pool record for the given pool type.
func (p *IDPoolsClient) GetPoolType(ctx context.Context, poolType string) (*IDPool, error) {
	var pool IDPool
	if err := p.c.get(ctx, p.poolPath(poolType), nil, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// UpdatePoolType updates the enabled flag and associated ranges of a pool
// and returns the resulting record.
func (p *IDPoolsClient) UpdatePoolType(ctx context.Context, poolType string, data map[string]any) (*IDPool, error) {
	var pool IDPool
	if err := p.c.put(ctx, p.poolPath(poolType), data, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

// Allocate reserves count identifiers from the pool.
func (p *IDPoolsClient) Allocate(ctx context.Context, poolType string, count int) (*IDPoolAllocation, error) {
	body := map[string]int{"count": count}
	var allocation IDPoolAllocation
	if err := p.c.put(ctx, p.poolPath(poolType)+"/allocator", body, &allocation); err != nil {
		return nil, err
	}
	return &allocation, nil
}

// Collect returns identifiers to the pool.
func (p *IDPoolsClient) Collect(ctx context.Context, poolType string, idList []string) (*IDPoolCollection, error) {
	body := map[string][]string{"idList": idList}
	var collection IDPoolCollection
	if err := p.c.put(ctx, p.poolPath(poolType)+"/collector", body, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

// Generate produces a new random identifier range from the pool.
func (p *IDPoolsClient) Generate(ctx context.Context, poolType string) (*IDPoolRange, error) {
	var generated IDPoolRange
	if err := p.c.get(ctx, p.poolPath(poolType)+"/generate", nil, &generated); err != nil {
		return nil, err
	}
	return &generated, nil
}

// Validate checks whether the listed identifiers are assignable from the
// pool. The response is deserialized into a typed record.
func (p *IDPoolsClient) Validate(ctx context.Context, poolType string, idList []string) (*IDPoolValidation, error) {
	body := map[string][]string{"idList": idList}
	var validation IDPoolValidation
	if err := p.c.put(ctx, p.poolPath(poolType)+"/validate", body, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}

// ValidateIDPool validates literal pool members, for example IPv4
// addresses, against the pool.
func (p *IDPoolsClient) ValidateIDPool(ctx context.Context, poolType string, idList []string) (*IDPoolValidation, error) {
	query := url.Values{"idList": idList}
	var validation IDPoolValidation
	if err := p.c.get(ctx, p.poolPath(poolType)+"/validate", query, &validation); err != nil {
		return nil, err
	}
	return &validation, nil
}

// CheckRangeAvailability verifies that a range of identifiers is free.
func (p *IDPoolsClient) CheckRangeAvailability(ctx context.Context, poolType string, idList []string) (*IDPoolRangeAvailability, error) {
	query := url.Values{"idList": idList}
	var availability IDPoolRangeAvailability
	if err := p.c.get(ctx, p.poolPath(poolType)+"/checkrangeavailability", query, &availability); err != nil {
		return nil, err
	}
	return &availability, nil
}

func (p *IDPoolsClient) poolPath(poolType string) string {
	return fmt.Sprintf("%s/%s", idPoolsPath, url.PathEscape(poolType))
}
