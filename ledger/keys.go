// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"

	"github.com/ledgerware/tokencore/token"
)

// The ledger projects all of its state onto a flat key/value store of
// 32-byte words. Two global slots live at reserved, statically fixed keys;
// balances and allowances are stored under derived keys. The byte layout of
// every key is part of the storage format and must not change.
var (
	totalSupplyKey = token.Key{0x02}
	ownerKey       = token.Key{0x03}
)

// balanceNamespace marks balance keys, keeping them disjoint from the
// reserved global keys and from allowance keys.
const balanceNamespace = 0x01

// allowanceTag is the Keccak domain separator for allowance keys.
const allowanceTag = "allowance_key"

// balanceKey derives the storage key of an address's balance slot. The
// address occupies the low 20 bytes of the key; the first byte carries the
// namespace marker. The mapping is injective over the address domain.
func balanceKey(address token.Address) (key token.Key) {
	copy(key[12:], address[:])
	key[0] = balanceNamespace
	return key
}

// allowanceKeyCache memoizes derived allowance keys. Key derivation is pure,
// so a cached entry never goes stale; the cache merely avoids re-hashing the
// same (owner, spender) pair on every access.
var allowanceKeyCache = func() *lru.Cache[[40]byte, token.Key] {
	cache, _ := lru.New[[40]byte, token.Key](4096) // can only fail for non-positive size
	return cache
}()

// allowanceKey derives the storage key of the allowance slot for the given
// (owner, spender) pair as the Keccak-256 hash of a fixed tag followed by
// both addresses. The pair is ordered; swapping owner and spender yields a
// different key.
func allowanceKey(owner, spender token.Address) token.Key {
	var pair [40]byte
	copy(pair[:20], owner[:])
	copy(pair[20:], spender[:])
	if key, found := allowanceKeyCache.Get(pair); found {
		return key
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(allowanceTag))
	hasher.Write(owner[:])
	hasher.Write(spender[:])
	var key token.Key
	hasher.Sum(key[0:0])

	allowanceKeyCache.Add(pair, key)
	return key
}

// addressWord encodes an address as a storage word, left-padded with zeros.
func addressWord(address token.Address) (word token.Word) {
	copy(word[12:], address[:])
	return word
}

// wordAddress extracts the address from the low 20 bytes of a storage word.
func wordAddress(word token.Word) (address token.Address) {
	copy(address[:], word[12:])
	return address
}
