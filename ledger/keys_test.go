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
	"testing"

	"golang.org/x/crypto/sha3"

	"github.com/ledgerware/tokencore/token"
)

func TestReservedKeys_MatchStorageFormat(t *testing.T) {
	if want, got := (token.Key{0x02}), totalSupplyKey; want != got {
		t.Errorf("unexpected total supply key, wanted %v, got %v", want, got)
	}
	if want, got := (token.Key{0x03}), ownerKey; want != got {
		t.Errorf("unexpected owner key, wanted %v, got %v", want, got)
	}
}

func TestBalanceKey_MatchesStorageLayout(t *testing.T) {
	address := token.Address{
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
	}
	want := token.Key{
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
		31, 31, 31, 31, 31, 31, 31, 31, 31, 31,
	}
	if got := balanceKey(address); want != got {
		t.Errorf("unexpected balance key, wanted %v, got %v", want, got)
	}
}

func TestBalanceKey_IsInjective(t *testing.T) {
	addresses := []token.Address{
		{}, {1}, {2}, {0, 1}, {19: 1}, {19: 2},
	}
	seen := map[token.Key]token.Address{}
	for _, address := range addresses {
		key := balanceKey(address)
		if prior, found := seen[key]; found {
			t.Errorf("key collision between %v and %v", prior, address)
		}
		seen[key] = address
	}
}

func TestBalanceKey_AvoidsReservedKeys(t *testing.T) {
	addresses := []token.Address{
		{}, {2}, {3}, {0xFF}, {19: 0xFF},
	}
	for _, address := range addresses {
		key := balanceKey(address)
		if key == totalSupplyKey || key == ownerKey {
			t.Errorf("balance key of %v collides with a reserved key", address)
		}
	}
}

func TestAllowanceKey_MatchesTaggedKeccak(t *testing.T) {
	owner := token.Address{0xAA, 1, 2}
	spender := token.Address{0xBB, 3, 4}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte("allowance_key"))
	hasher.Write(owner[:])
	hasher.Write(spender[:])
	var want token.Key
	hasher.Sum(want[0:0])

	if got := allowanceKey(owner, spender); want != got {
		t.Errorf("unexpected allowance key, wanted %v, got %v", want, got)
	}
}

func TestAllowanceKey_IsOrderSensitive(t *testing.T) {
	a := token.Address{1}
	b := token.Address{2}
	if allowanceKey(a, b) == allowanceKey(b, a) {
		t.Errorf("allowance key must depend on the order of the address pair")
	}
}

func TestAllowanceKey_AvoidsReservedAndBalanceKeys(t *testing.T) {
	pairs := []struct{ owner, spender token.Address }{
		{token.Address{}, token.Address{}},
		{token.Address{1}, token.Address{2}},
		{token.Address{19: 0xFF}, token.Address{}},
	}
	for _, pair := range pairs {
		key := allowanceKey(pair.owner, pair.spender)
		if key == totalSupplyKey || key == ownerKey {
			t.Errorf("allowance key of %v/%v collides with a reserved key", pair.owner, pair.spender)
		}
		if key == balanceKey(pair.owner) || key == balanceKey(pair.spender) {
			t.Errorf("allowance key of %v/%v collides with a balance key", pair.owner, pair.spender)
		}
	}
}

func TestAllowanceKey_CachedDerivationIsStable(t *testing.T) {
	owner := token.Address{7}
	spender := token.Address{8}

	first := allowanceKey(owner, spender)
	second := allowanceKey(owner, spender)
	if first != second {
		t.Errorf("repeated derivation produced different keys, %v and %v", first, second)
	}
}

func TestAddressWord_RoundTrip(t *testing.T) {
	address := token.Address{0xEA, 1, 2, 3, 19: 0xC8}
	word := addressWord(address)
	for _, b := range word[:12] {
		if b != 0 {
			t.Fatalf("address word not left-padded with zeros: %v", word)
		}
	}
	if got := wordAddress(word); address != got {
		t.Errorf("unexpected round-trip result, wanted %v, got %v", address, got)
	}
}
