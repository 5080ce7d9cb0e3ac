// Package ens implements the ENS name hashing primitives: namehash,
// labelhash, subnode composition and a few helpers built on them.
package ens

import (
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidName is the kind shared by every name validation error.
	ErrInvalidName = errors.New("invalid ENS name")

	ErrEmptyLabel   = errors.WithMessage(ErrInvalidName, "empty label")
	ErrInvalidUTF8  = errors.WithMessage(ErrInvalidName, "label is not valid UTF-8")
	ErrLabelTooLong = errors.WithMessage(ErrInvalidName, "label exceeds 63 bytes")
)

// RootNode is the namehash of the empty name.
var RootNode common.Hash

// Well-known nodes.
var (
	LitNode         = MustNameHash("lit")
	ReverseNode     = MustNameHash("reverse")
	AddrReverseNode = MustNameHash("addr.reverse")
)

// NameHash returns the ENS namehash of name. Labels are hashed as given; use
// NormalizedNameHash to apply UTS-46 mapping first.
func NameHash(name string) (common.Hash, error) {
	// strings.Split("", ".") yields one empty label, so the root is handled
	// before splitting.
	if name == "" {
		return RootNode, nil
	}

	labels := strings.Split(name, ".")
	node := RootNode
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash, err := LabelHash(labels[i])
		if err != nil {
			return RootNode, errors.Wrapf(err, "name %q, label %d", name, i)
		}
		node = Subnode(node, labelHash)
	}
	return node, nil
}

// MustNameHash is like NameHash but panics if name is invalid.
func MustNameHash(name string) common.Hash {
	node, err := NameHash(name)
	if err != nil {
		panic(err)
	}
	return node
}

// LabelHash returns keccak256 of a single label.
func LabelHash(label string) (common.Hash, error) {
	switch {
	case label == "":
		return common.Hash{}, ErrEmptyLabel
	case strings.Contains(label, "."):
		return common.Hash{}, errors.Wrapf(ErrInvalidName, "label %q contains a period", label)
	case !utf8.ValidString(label):
		return common.Hash{}, ErrInvalidUTF8
	}
	return crypto.Keccak256Hash([]byte(label)), nil
}

// Subnode returns the node of the child identified by labelHash under parent.
func Subnode(parent, labelHash common.Hash) common.Hash {
	return crypto.Keccak256Hash(parent[:], labelHash[:])
}

// Labels splits name into its labels, most specific first. The root has no
// labels.
func Labels(name string) []string {
	if name == "" {
		return nil
	}
	return strings.Split(name, ".")
}

// Parent returns name with its first label removed. The parent of a single
// label is the root.
func Parent(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// IsValidName reports whether name can be hashed.
func IsValidName(name string) bool {
	_, err := NameHash(name)
	return err == nil
}
