package flags

import (
	"context"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/enums"
	"github.com/farmshop-si/farmshop-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newTestRegistry(t *testing.T, store Store) *Registry {
	t.Helper()
	reg, err := NewRegistry(store, testLogger())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

type failingStore struct{}

func (failingStore) Load(context.Context) ([]FeatureFlag, error) {
	return nil, errors.New("storage down")
}

func (failingStore) Save(context.Context, []FeatureFlag) error {
	return errors.New("storage down")
}

func TestNewRegistryValidatesDeps(t *testing.T) {
	if _, err := NewRegistry(nil, testLogger()); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewRegistry(NewMemoryStore(), nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}

func TestListReturnsDefaultsWhenNothingPersisted(t *testing.T) {
	reg := newTestRegistry(t, NewMemoryStore())

	got := reg.List(context.Background())
	if !reflect.DeepEqual(got, DefaultFlags()) {
		t.Fatal("expected compiled defaults for an empty store")
	}
}

func TestListReconcilesPersistedOverrides(t *testing.T) {
	store := NewMemoryStore()
	reg := newTestRegistry(t, store)
	ctx := context.Background()

	persisted := []FeatureFlag{
		{ID: FlagCardPayments, Enabled: true},
		{ID: FlagGiftPackages, Enabled: false},
		{ID: "retired_flag", Enabled: true},
	}
	if err := store.Save(ctx, persisted); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	got := reg.List(ctx)
	defaults := DefaultFlags()
	if len(got) != len(defaults) {
		t.Fatalf("expected %d flags, got %d", len(defaults), len(got))
	}
	for i, flag := range got {
		if flag.ID != defaults[i].ID {
			t.Fatalf("position %d: expected id %q, got %q", i, defaults[i].ID, flag.ID)
		}
		if flag.ID == "retired_flag" {
			t.Fatal("unknown persisted id survived reconciliation")
		}
	}

	byID := flagsByID(got)
	if !byID[FlagCardPayments].Enabled {
		t.Fatal("persisted enabled=true should win for card_payments")
	}
	if byID[FlagGiftPackages].Enabled {
		t.Fatal("persisted enabled=false should win for gift_packages")
	}
	if byID[FlagGuestCheckout].Enabled != byID[FlagGuestCheckout].DefaultEnabled {
		t.Fatal("flags absent from storage should keep their default value")
	}
}

func TestListFallsBackToDefaultsOnStorageFailure(t *testing.T) {
	reg := newTestRegistry(t, failingStore{})

	got := reg.List(context.Background())
	if !reflect.DeepEqual(got, DefaultFlags()) {
		t.Fatal("storage failure should degrade to compiled defaults")
	}
}

func TestIsEnabled(t *testing.T) {
	reg := newTestRegistry(t, NewMemoryStore())
	ctx := context.Background()

	t.Run("known id follows reconciled state", func(t *testing.T) {
		if reg.IsEnabled(ctx, FlagCardPayments) {
			t.Fatal("card_payments defaults to disabled")
		}
		if _, err := reg.Enable(ctx, FlagCardPayments); err != nil {
			t.Fatalf("Enable: %v", err)
		}
		if !reg.IsEnabled(ctx, FlagCardPayments) {
			t.Fatal("expected card_payments enabled after Enable")
		}
	})

	t.Run("unknown id is disabled, not an error", func(t *testing.T) {
		if reg.IsEnabled(ctx, "no_such_flag") {
			t.Fatal("unknown flag id must resolve to false")
		}
	})
}

func TestToggleIsAnInvolution(t *testing.T) {
	reg := newTestRegistry(t, NewMemoryStore())
	ctx := context.Background()

	for _, flag := range DefaultFlags() {
		before := reg.IsEnabled(ctx, flag.ID)
		if _, err := reg.Toggle(ctx, flag.ID); err != nil {
			t.Fatalf("Toggle(%q): %v", flag.ID, err)
		}
		if reg.IsEnabled(ctx, flag.ID) == before {
			t.Fatalf("Toggle(%q) did not flip the value", flag.ID)
		}
		if _, err := reg.Toggle(ctx, flag.ID); err != nil {
			t.Fatalf("Toggle(%q): %v", flag.ID, err)
		}
		if reg.IsEnabled(ctx, flag.ID) != before {
			t.Fatalf("double Toggle(%q) did not restore the value", flag.ID)
		}
	}
}

func TestMutateUnknownIDStillRewrites(t *testing.T) {
	store := NewMemoryStore()
	reg := newTestRegistry(t, store)
	ctx := context.Background()

	list, err := reg.Toggle(ctx, "no_such_flag")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !reflect.DeepEqual(list, DefaultFlags()) {
		t.Fatal("unknown id toggle should leave the set unchanged")
	}
	persisted, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if persisted == nil {
		t.Fatal("unknown id toggle should still persist the full set")
	}
}

func TestMutateSurfacesStorageFailure(t *testing.T) {
	reg := newTestRegistry(t, failingStore{})

	if _, err := reg.Enable(context.Background(), FlagCardPayments); err == nil {
		t.Fatal("expected persistence failure to be returned")
	}
}

func TestResetRestoresCompiledDefaults(t *testing.T) {
	reg := newTestRegistry(t, NewMemoryStore())
	ctx := context.Background()

	if _, err := reg.Toggle(ctx, FlagGiftPackages); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := reg.Toggle(ctx, FlagCardPayments); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	reset, err := reg.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !reflect.DeepEqual(reset, DefaultFlags()) {
		t.Fatal("Reset result should equal the compiled default table field for field")
	}
	if !reflect.DeepEqual(reg.List(ctx), DefaultFlags()) {
		t.Fatal("List after Reset should equal the compiled default table")
	}
}

func TestByCategory(t *testing.T) {
	reg := newTestRegistry(t, NewMemoryStore())
	ctx := context.Background()

	payments := reg.ByCategory(ctx, enums.FlagCategoryPayment.String())
	if len(payments) == 0 {
		t.Fatal("expected payment flags")
	}
	for _, flag := range payments {
		if flag.Category != enums.FlagCategoryPayment {
			t.Fatalf("flag %q has category %q", flag.ID, flag.Category)
		}
	}

	if got := reg.ByCategory(ctx, "nonexistent"); len(got) != 0 {
		t.Fatalf("expected no flags for an unknown category, got %d", len(got))
	}
}

func TestDefaultFlagsReturnsACopy(t *testing.T) {
	first := DefaultFlags()
	first[0].Enabled = !first[0].Enabled
	second := DefaultFlags()
	if second[0].Enabled == first[0].Enabled {
		t.Fatal("DefaultFlags must not expose the shared backing table")
	}
}

func flagsByID(list []FeatureFlag) map[string]FeatureFlag {
	out := make(map[string]FeatureFlag, len(list))
	for _, flag := range list {
		out[flag.ID] = flag
	}
	return out
}
