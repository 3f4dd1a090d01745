package mock

import (
	"context"

	"github.com/fwojciec/crawlkit"
)

var _ crawlkit.VisitedTracker = (*VisitedTracker)(nil)

// VisitedTracker is a mock implementation of crawlkit.VisitedTracker.
type VisitedTracker struct {
	ClaimFn func(id string) bool
}

func (t *VisitedTracker) Claim(id string) bool {
	return t.ClaimFn(id)
}

var _ crawlkit.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of crawlkit.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
