package tools

import (
	"errors"

	"toolup/internal/registry"
)

var errNoCompatibleAsset = errors.New("no compatible release asset")

// selectAsset picks the first release asset the predicate accepts, preserving
// the registry-provided order so selection stays deterministic when several
// names could match.
func selectAsset(assets []registry.Asset, matches func(name string) bool) (registry.Asset, error) {
	for _, asset := range assets {
		if matches(asset.Name) {
			return asset, nil
		}
	}
	return registry.Asset{}, errNoCompatibleAsset
}
