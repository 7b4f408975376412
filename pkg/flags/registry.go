package flags

import (
	"context"
	"errors"

	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

// Registry is the single source of truth for feature gating. One instance is
// constructed per process and handed to every consumer; all reads reconcile
// persisted state against the compiled default table so the effective set
// always covers exactly the known ids, in the compiled ordering.
type Registry struct {
	store Store
	log   *logger.Logger
}

func NewRegistry(store Store, log *logger.Logger) (*Registry, error) {
	if store == nil {
		return nil, errors.New("flags: store is required")
	}
	if log == nil {
		return nil, errors.New("flags: logger is required")
	}
	return &Registry{store: store, log: log}, nil
}

// List returns the reconciled flag set. It never fails: a storage read or
// decode error degrades to the compiled defaults.
func (r *Registry) List(ctx context.Context) []FeatureFlag {
	persisted, err := r.store.Load(ctx)
	if err != nil {
		r.log.Error(ctx, "feature flag storage unavailable, serving compiled defaults", err)
		return DefaultFlags()
	}
	return reconcile(persisted)
}

// reconcile merges persisted overrides onto the default table. The default
// table provides membership, ordering, and every field except Enabled, which
// is taken from persisted state when the id is present there. Persisted
// records with unknown ids are dropped.
func reconcile(persisted []FeatureFlag) []FeatureFlag {
	overrides := make(map[string]bool, len(persisted))
	for _, flag := range persisted {
		overrides[flag.ID] = flag.Enabled
	}
	out := DefaultFlags()
	for i := range out {
		if enabled, ok := overrides[out[i].ID]; ok {
			out[i].Enabled = enabled
		}
	}
	return out
}

// IsEnabled reports the effective state of one flag. Unknown ids are not an
// error; a feature that does not exist is off.
func (r *Registry) IsEnabled(ctx context.Context, id string) bool {
	for _, flag := range r.List(ctx) {
		if flag.ID == id {
			return flag.Enabled
		}
	}
	return false
}

// ByCategory filters the reconciled set down to one category, preserving the
// compiled ordering.
func (r *Registry) ByCategory(ctx context.Context, category string) []FeatureFlag {
	var out []FeatureFlag
	for _, flag := range r.List(ctx) {
		if flag.Category.String() == category {
			out = append(out, flag)
		}
	}
	return out
}

// Toggle flips one flag and persists the full set. An unknown id still
// rewrites the reconciled set unchanged.
func (r *Registry) Toggle(ctx context.Context, id string) ([]FeatureFlag, error) {
	return r.mutate(ctx, id, func(enabled bool) bool { return !enabled })
}

// Enable turns one flag on and persists the full set.
func (r *Registry) Enable(ctx context.Context, id string) ([]FeatureFlag, error) {
	return r.mutate(ctx, id, func(bool) bool { return true })
}

// Disable turns one flag off and persists the full set.
func (r *Registry) Disable(ctx context.Context, id string) ([]FeatureFlag, error) {
	return r.mutate(ctx, id, func(bool) bool { return false })
}

func (r *Registry) mutate(ctx context.Context, id string, apply func(bool) bool) ([]FeatureFlag, error) {
	list := r.List(ctx)
	for i := range list {
		if list[i].ID == id {
			list[i].Enabled = apply(list[i].Enabled)
			break
		}
	}
	if err := r.Save(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Save persists the supplied list verbatim. Callers get the failure back so
// an admin surface can report it instead of losing the change silently.
func (r *Registry) Save(ctx context.Context, list []FeatureFlag) error {
	if err := r.store.Save(ctx, list); err != nil {
		r.log.Error(ctx, "persisting feature flags failed", err)
		return err
	}
	return nil
}

// Reset discards every override and persists the compiled default table.
func (r *Registry) Reset(ctx context.Context) ([]FeatureFlag, error) {
	defaults := DefaultFlags()
	if err := r.Save(ctx, defaults); err != nil {
		return nil, err
	}
	return defaults, nil
}
