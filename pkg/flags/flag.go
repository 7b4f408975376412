package flags

import "github.com/farmshop-si/farmshop-backend/pkg/enums"

// FeatureFlag is a named boolean switch gating an optional storefront module.
// ID is the stable lookup key and never changes once shipped; Enabled is the
// only field that moves after deployment.
type FeatureFlag struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Category       enums.FlagCategory `json:"category"`
	Enabled        bool               `json:"enabled"`
	DefaultEnabled bool               `json:"default_enabled"`
}
