package ens

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const reverseSuffix = ".addr.reverse"

// ReverseName returns the reverse record name of addr, the lowercase hex
// address without prefix under addr.reverse.
func ReverseName(addr common.Address) string {
	return hex.EncodeToString(addr[:]) + reverseSuffix
}

// ReverseNodeOf returns the namehash of the reverse record name of addr.
func ReverseNodeOf(addr common.Address) common.Hash {
	labelHash := crypto.Keccak256Hash([]byte(hex.EncodeToString(addr[:])))
	return Subnode(AddrReverseNode, labelHash)
}
