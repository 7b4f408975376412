package gifts

import (
	"reflect"
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strptr(s string) *string { return &s }

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("parsing decimal %q: %v", value, err)
	}
	return d
}

func testCatalog(t *testing.T) []models.Product {
	t.Helper()
	return []models.Product{
		{
			ID:     uuid.New(),
			Name:   "Bučno olje",
			NameEN: strptr("Pumpkin seed oil"),
			Options: []models.PackageOption{
				{ID: uuid.New(), Weight: strptr("0,25"), Unit: strptr("l"), Price: dec(t, "7.50")},
				{ID: uuid.New(), Weight: strptr("0,5"), Unit: strptr("l"), Price: dec(t, "12.00")},
				{ID: uuid.New(), Weight: strptr("1"), Unit: strptr("l"), Price: dec(t, "20.00")},
			},
		},
		{
			ID:     uuid.New(),
			Name:   "Bučna semena",
			NameEN: strptr("Pumpkin seeds"),
			Options: []models.PackageOption{
				{ID: uuid.New(), Weight: strptr("100"), Unit: strptr("g"), Price: dec(t, "3.50")},
				{ID: uuid.New(), Weight: strptr("200"), Unit: strptr("g"), Price: dec(t, "6.00")},
			},
		},
		{
			ID:   uuid.New(),
			Name: "Med",
			Options: []models.PackageOption{
				{ID: uuid.New(), Description: "kozarec", Weight: strptr("450"), Unit: strptr("g"), Price: dec(t, "8.00")},
				{ID: uuid.New(), Description: "kozarec", Weight: strptr("900"), Unit: strptr("g"), Price: dec(t, "14.00")},
			},
		},
	}
}

func TestResolveFullCatalog(t *testing.T) {
	catalog := testCatalog(t)

	lines := Resolve(4, catalog)
	if len(lines) != 2 {
		t.Fatalf("expected 2 resolved lines, got %d", len(lines))
	}
	if lines[0].Product.Name != "Bučno olje" || lines[1].Product.Name != "Bučna semena" {
		t.Fatalf("resolved order must follow the preset table, got %q then %q",
			lines[0].Product.Name, lines[1].Product.Name)
	}
	if lines[0].Quantity != 1 || lines[1].Quantity != 1 {
		t.Fatalf("expected quantity 1 for both lines, got %d and %d",
			lines[0].Quantity, lines[1].Quantity)
	}
	if got := *lines[0].Option.Weight; got != "0,5" {
		t.Fatalf("oil line should pick the 0,5 option, got weight %q", got)
	}
	if got := *lines[1].Option.Weight; got != "200" {
		t.Fatalf("seeds line should pick the 200 option, got weight %q", got)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	catalog := testCatalog(t)

	first := Resolve(4, catalog)
	second := Resolve(4, catalog)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("resolving the same catalog twice must yield identical output")
	}
}

func TestResolveDropsUnmatchedLines(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("missing product drops its line entirely", func(t *testing.T) {
		withoutSeeds := make([]models.Product, 0, len(catalog))
		for _, product := range catalog {
			if product.Name != "Bučna semena" {
				withoutSeeds = append(withoutSeeds, product)
			}
		}
		lines := Resolve(4, withoutSeeds)
		if len(lines) != 1 {
			t.Fatalf("expected exactly 1 line, got %d", len(lines))
		}
		if lines[0].Product.Name != "Bučno olje" {
			t.Fatalf("surviving line should be the oil, got %q", lines[0].Product.Name)
		}
	})

	t.Run("missing option drops its line entirely", func(t *testing.T) {
		modified := testCatalog(t)
		modified[0].Options = modified[0].Options[:1]
		lines := Resolve(4, modified)
		if len(lines) != 1 {
			t.Fatalf("expected exactly 1 line, got %d", len(lines))
		}
		if lines[0].Product.Name != "Bučna semena" {
			t.Fatalf("surviving line should be the seeds, got %q", lines[0].Product.Name)
		}
	})

	t.Run("empty catalog resolves to an empty list", func(t *testing.T) {
		if lines := Resolve(4, nil); len(lines) != 0 {
			t.Fatalf("expected no lines, got %d", len(lines))
		}
	})

	t.Run("unknown package id resolves to an empty list", func(t *testing.T) {
		if lines := Resolve(999, catalog); len(lines) != 0 {
			t.Fatalf("expected no lines, got %d", len(lines))
		}
	})
}

func TestProductMatchIsCaseInsensitiveAcrossLocales(t *testing.T) {
	catalog := []models.Product{
		{
			ID:     uuid.New(),
			Name:   "Olje iz bučnih semen",
			NameEN: strptr("PUMPKIN SEED OIL - Bučno Olje"),
			Options: []models.PackageOption{
				{ID: uuid.New(), Weight: strptr("0,5"), Unit: strptr("l"), Price: dec(t, "12.00")},
			},
		},
	}
	product, ok := matchProduct(catalog, "bučno olje")
	if !ok {
		t.Fatal("expected a match through the English name variant")
	}
	if product.Name != "Olje iz bučnih semen" {
		t.Fatalf("unexpected product %q", product.Name)
	}
}

func TestOptionMatching(t *testing.T) {
	t.Run("substring matches the space-joined weight and unit", func(t *testing.T) {
		options := []models.PackageOption{
			{ID: uuid.New(), Weight: strptr("0,5"), Unit: strptr("l")},
		}
		if _, ok := matchOption(options, "0,5"); !ok {
			t.Fatal(`needle "0,5" must match text "0,5 l"`)
		}
	})

	t.Run("case-mixed needle matches stored description", func(t *testing.T) {
		options := []models.PackageOption{
			{ID: uuid.New(), Description: "0,5l"},
		}
		if _, ok := matchOption(options, "0,5L"); !ok {
			t.Fatal(`needle "0,5L" must match stored "0,5l"`)
		}
	})

	t.Run("substring is not exact equality", func(t *testing.T) {
		options := []models.PackageOption{
			{ID: uuid.New(), Description: "0,55l"},
		}
		if _, ok := matchOption(options, "0,5"); !ok {
			t.Fatal(`needle "0,5" also matches "0,55l"; that ambiguity is accepted`)
		}
	})

	t.Run("decimal commas are matched verbatim", func(t *testing.T) {
		options := []models.PackageOption{
			{ID: uuid.New(), Weight: strptr("0,5"), Unit: strptr("l")},
		}
		if _, ok := matchOption(options, "0.5"); ok {
			t.Fatal("a period needle must not match comma-separated stored text")
		}
	})

	t.Run("first option in stored order wins", func(t *testing.T) {
		first := uuid.New()
		options := []models.PackageOption{
			{ID: first, Weight: strptr("0,5"), Unit: strptr("l")},
			{ID: uuid.New(), Weight: strptr("0,55"), Unit: strptr("l")},
		}
		option, ok := matchOption(options, "0,5")
		if !ok || option.ID != first {
			t.Fatal("expected the first matching option")
		}
	})
}

func TestOptionTextSkipsAbsentFields(t *testing.T) {
	option := models.PackageOption{Description: "steklenica", Unit: strptr("l")}
	if got := optionText(option); got != "steklenica l" {
		t.Fatalf("expected %q, got %q", "steklenica l", got)
	}
	empty := models.PackageOption{}
	if got := optionText(empty); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestChargedTotal(t *testing.T) {
	base := dec(t, "16.00")

	cases := []struct {
		name    string
		message string
		want    string
	}{
		{name: "no message", message: "", want: "16"},
		{name: "whitespace-only message", message: "   \t\n", want: "16"},
		{name: "personal message adds the fee", message: "Vse najboljše!", want: "19"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ChargedTotal(base, tc.message)
			if !got.Equal(dec(t, tc.want)) {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestBuildCartComponents(t *testing.T) {
	catalog := testCatalog(t)
	lines := Resolve(4, catalog)

	t.Run("default locale uses the base name", func(t *testing.T) {
		components := BuildCartComponents(lines, "sl")
		if len(components) != 2 {
			t.Fatalf("expected 2 components, got %d", len(components))
		}
		if components[0].Name != "Bučno olje" {
			t.Fatalf("unexpected name %q", components[0].Name)
		}
		if components[0].OptionID != lines[0].Option.ID.String() {
			t.Fatal("component must carry the resolved option id")
		}
		if components[0].ProductID != lines[0].Product.ID.String() {
			t.Fatal("component must carry the stringified product id")
		}
		if !components[0].Price.Equal(dec(t, "12.00")) {
			t.Fatalf("component price should mirror the option price, got %s", components[0].Price)
		}
	})

	t.Run("locale variant wins when present", func(t *testing.T) {
		components := BuildCartComponents(lines, "en")
		if components[0].Name != "Pumpkin seed oil" {
			t.Fatalf("expected the English variant, got %q", components[0].Name)
		}
	})

	t.Run("locale variant falls back to the base name", func(t *testing.T) {
		components := BuildCartComponents(lines, "de")
		if components[0].Name != "Bučno olje" {
			t.Fatalf("expected fallback to the base name, got %q", components[0].Name)
		}
	})
}
