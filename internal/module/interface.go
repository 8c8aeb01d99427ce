// Package module defines the contract reconciliation modules satisfy and
// the registry the CLI resolves them from.
package module

import (
	"context"

	"github.com/oneview-community/ovapply/internal/config"
	"github.com/oneview-community/ovapply/internal/model"
	"github.com/oneview-community/ovapply/internal/oneview"
)

// Metadata describes a module's identity.
type Metadata struct {
	// Name is the module identifier tasks reference.
	Name string
	// Description is a one-line summary for help output.
	Description string
	// FactsKey names the key under which the module reports its result
	// payload in Result.Facts.
	FactsKey string
}

// Module is the unified contract all reconciliation modules satisfy.
//
// Every invocation is single-shot: read current state where applicable,
// decide, act, report. Modules hold no state between invocations; the
// appliance client they were constructed with is their only collaborator.
type Module interface {
	// Metadata returns the module's identity.
	Metadata() Metadata

	// States lists the task states this module accepts.
	States() []string

	// Run executes the operation the task describes and reports whether
	// appliance state changed, a message, and the facts payload.
	//
	// Errors follow a strict taxonomy: invalid input surfaces as a
	// ValidationError before any remote call, domain rejections as a
	// ValueError with a fixed message, and transport failures propagate
	// unmodified from the client.
	Run(ctx context.Context, task *config.Task) (*model.Result, error)

	// DryRun previews the operation. Read-only states execute normally;
	// mutating states report the change they would make without issuing
	// a write.
	DryRun(ctx context.Context, task *config.Task) (*model.Result, error)
}

// Factory builds a module bound to an appliance client. Modules receive
// their resource clients explicitly at construction time.
type Factory func(client *oneview.Client) Module
