package oneview

import (
	"github.com/HewlettPackard/oneview-golang/utils"
)

// IDPool is a pool-type record under /rest/id-pools. One pool exists per
// identifier namespace (ipv4, vmac, vsn, vwwn).
type IDPool struct {
	Category       string          `json:"category,omitempty"`
	Name           string          `json:"name,omitempty"`
	PoolType       string          `json:"poolType,omitempty"`
	Enabled        bool            `json:"enabled"`
	RangeUris      []utils.Nstring `json:"rangeUris,omitempty"`
	URI            utils.Nstring   `json:"uri,omitempty"`
	Type           string          `json:"type,omitempty"`
	TotalCount     int64           `json:"totalCount,omitempty"`
	FreeCount      int64           `json:"freeCount,omitempty"`
	AllocatedCount int64           `json:"allocatedCount,omitempty"`
	ETag           string          `json:"eTag,omitempty"`
	Created        string          `json:"created,omitempty"`
	Modified       string          `json:"modified,omitempty"`
}

// IDPoolAllocation is the allocator response: the identifiers reserved by
// one allocate call.
type IDPoolAllocation struct {
	Count  int           `json:"count,omitempty"`
	IDList []string      `json:"idList,omitempty"`
	URI    utils.Nstring `json:"uri,omitempty"`
}

// IDPoolCollection is the collector response: the identifiers returned to
// the pool.
type IDPoolCollection struct {
	IDList []string `json:"idList,omitempty"`
}

// IDPoolValidation is the structured validate response. The appliance
// reports the echoed identifier list and a single valid flag.
type IDPoolValidation struct {
	IDList []string `json:"idList,omitempty"`
	Valid  bool     `json:"valid"`
}

// IDPoolRange is a generated identifier range.
type IDPoolRange struct {
	StartAddress string `json:"startAddress,omitempty"`
	EndAddress   string `json:"endAddress,omitempty"`
	FragmentType string `json:"fragmentType,omitempty"`
}

// IDPoolRangeAvailability is the checkrangeavailability response.
type IDPoolRangeAvailability struct {
	IDList []string `json:"idList,omitempty"`
}
