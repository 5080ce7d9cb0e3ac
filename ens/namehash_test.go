package ens

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNameHash(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
		{"vitalik.eth", "0xee6c4522aab0003e8d14cd40a6af439055fd2577951148c14b6cea9a53475835"},
		{"lit", "0xf1e6ab3132ba6ec0b062a81cc736e9da53d117fdb64c7e18265a9686e597ceec"},
		{"reverse", "0xa097f6721ce401e757d1223a763fef49b8b5f90bb18567ddb86fd205dff71d34"},
		{"addr.reverse", "0x91d1777781884d03a6757a803996e38de2a42967fb37eeaca72729271025a9e2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NameHash(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Hex())
			require.Len(t, got.Hex(), 66)
		})
	}
}

func TestWellKnownNodes(t *testing.T) {
	require.Equal(t, common.Hash{}, RootNode)
	require.Equal(t, MustNameHash("lit"), LitNode)
	require.Equal(t, MustNameHash("reverse"), ReverseNode)
	require.Equal(t, MustNameHash("addr.reverse"), AddrReverseNode)
}

func TestNameHashDeterministic(t *testing.T) {
	a, err := NameHash("addr.reverse")
	require.NoError(t, err)
	b, err := NameHash("addr.reverse")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestNameHashLabelOrder(t *testing.T) {
	ab := MustNameHash("a.b")
	ba := MustNameHash("b.a")
	require.NotEqual(t, ab, ba)
	require.Equal(t, "0xa57dcb7e802753630ec035bae538ca332465791509b1375525fe8b3b0bada7ef", ab.Hex())
	require.Equal(t, "0x74d38d8fd760fa0c7f9331740912657f67b01c89bb76a6a60e5be2e2c20b4267", ba.Hex())
}

func TestNameHashComposition(t *testing.T) {
	for _, pair := range [][2]string{{"a", "b"}, {"addr", "reverse"}, {"vitalik", "eth"}, {"x", "y.z"}} {
		child, parent := pair[0], pair[1]
		parentNode := MustNameHash(parent)
		want := crypto.Keccak256Hash(parentNode[:], crypto.Keccak256([]byte(child)))
		require.Equal(t, want, MustNameHash(child+"."+parent), "%s.%s", child, parent)

		labelHash, err := LabelHash(child)
		require.NoError(t, err)
		require.Equal(t, want, Subnode(parentNode, labelHash))
	}
}

func TestNameHashEmptyLabel(t *testing.T) {
	for _, name := range []string{"a..b", ".eth", "eth.", ".", "a.b."} {
		t.Run(name, func(t *testing.T) {
			_, err := NameHash(name)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrEmptyLabel))
			require.True(t, errors.Is(err, ErrInvalidName))
			require.False(t, IsValidName(name))
		})
	}
}

func TestNameHashInvalidUTF8(t *testing.T) {
	_, err := NameHash("a\xff.eth")
	require.True(t, errors.Is(err, ErrInvalidUTF8))
	require.True(t, errors.Is(err, ErrInvalidName))
}

func TestMustNameHashPanics(t *testing.T) {
	require.Panics(t, func() { MustNameHash("a..b") })
}

func TestLabelHash(t *testing.T) {
	h, err := LabelHash("eth")
	require.NoError(t, err)
	require.Equal(t, "0x4f5b812789fc606be1b3b16908db13fc7a9adf7ca72641f84d75b47069d3d7f0", h.Hex())

	_, err = LabelHash("")
	require.True(t, errors.Is(err, ErrEmptyLabel))

	_, err = LabelHash("a.b")
	require.True(t, errors.Is(err, ErrInvalidName))
}

func TestLabelsAndParent(t *testing.T) {
	require.Nil(t, Labels(""))
	require.Equal(t, []string{"addr", "reverse"}, Labels("addr.reverse"))

	require.Equal(t, "reverse", Parent("addr.reverse"))
	require.Equal(t, "b.c", Parent("a.b.c"))
	require.Equal(t, "", Parent("eth"))
	require.Equal(t, "", Parent(""))
}
