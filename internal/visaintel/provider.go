package visaintel

import (
	"context"

	"sponsor-scout/internal/domain/job"
	"sponsor-scout/internal/domain/visa"
)

// Provider gathers sponsorship intelligence for one posting. The scoring
// engine never calls out itself; a Provider is resolved before scoring
// and its Signal passed in.
type Provider interface {
	Signal(ctx context.Context, p job.Posting) (visa.Signal, error)
}
