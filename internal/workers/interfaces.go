// Package workers runs the background jobs of the VOY server.
//
// A Worker blocks in Run until its context is cancelled. Workers groups
// several of them so the server starts and stops them together.
package workers

import (
	"context"

	"github.com/MKhiriev/voy/models"
)

// Worker is a background job bound to the lifetime of ctx.
type Worker interface {
	Run(ctx context.Context)
}

// Notifier delivers a due note reminder to its owner.
type Notifier interface {
	Notify(ctx context.Context, note models.Note) error
}
