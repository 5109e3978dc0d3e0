package application

import (
	"context"
	"fmt"

	"github.com/bnema/together-notify/internal/domain"
)

// Status is what the engine last notified for, read back from the snapshot
// store without fetching.
type Status struct {
	Profile     domain.Profile
	Configured  bool
	HasSnapshot bool
	Raw         string
	State       domain.PartnerState
	BucketCount int
}

func (e *Engine) Status(ctx context.Context) (Status, error) {
	status := Status{BucketCount: domain.NoBucketCount}

	profile, ok, err := e.profiles.Get(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("load profile: %w", err)
	}
	if !ok || !profile.HasPartner() {
		status.Profile = profile
		return status, nil
	}
	status.Profile = profile
	status.Configured = true

	raw, ok, err := e.store.Get(ctx, domain.PartnerStateKey(profile.Partner))
	if err != nil {
		return Status{}, fmt.Errorf("read partner snapshot: %w", err)
	}
	if ok {
		status.HasSnapshot = true
		status.Raw = raw
		status.State = domain.ParsePartnerState(raw)
	}

	count, err := e.store.GetInt(ctx, domain.BucketCountKey(profile.Partner))
	if err != nil {
		return Status{}, fmt.Errorf("read bucket list count: %w", err)
	}
	status.BucketCount = count

	return status, nil
}
