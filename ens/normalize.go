package ens

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"golang.org/x/net/idna"
)

// Names must be valid UTS-46 with transitional=false and
// useSTD3AsciiRules=true.
var profile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(true),
)

// Normalize maps name to its normalized form. The root and names that are
// already normalized are returned unchanged.
func Normalize(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if err := checkLabels(name, name); err != nil {
		return "", err
	}
	normalized, err := profile.ToUnicode(name)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidName, "normalize %q: %s", name, err)
	}
	// The mapping turns full-width stops into '.', so the mapped name is
	// checked again.
	if err := checkLabels(name, normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

func checkLabels(name, mapped string) error {
	for _, label := range Labels(mapped) {
		if label == "" {
			return errors.Wrapf(ErrEmptyLabel, "name %q", name)
		}
	}
	return nil
}

// NormalizedNameHash normalizes name and returns its namehash.
func NormalizedNameHash(name string) (common.Hash, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return RootNode, err
	}
	return NameHash(normalized)
}
