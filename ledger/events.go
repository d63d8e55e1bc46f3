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
	"golang.org/x/crypto/sha3"

	"github.com/ledgerware/tokencore/token"
)

// Event topic identifiers are the Keccak-256 hashes of the canonical event
// signatures. Indexed address fields become separately matchable topics; the
// amount is serialized big-endian into the payload.
var (
	transferEventTopic = eventTopic("Transfer(address,address,uint256)")
	approvalEventTopic = eventTopic("Approval(address,address,uint256)")
)

func eventTopic(signature string) token.Hash {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(signature))
	var hash token.Hash
	hasher.Sum(hash[0:0])
	return hash
}

// addressTopic encodes an indexed address field as a topic, left-padded
// with zeros.
func addressTopic(address token.Address) (topic token.Hash) {
	copy(topic[12:], address[:])
	return topic
}

func emitTransfer(host token.HostContext, from, to token.Address, amount token.Value) {
	host.EmitLog(token.Log{
		Topics: []token.Hash{transferEventTopic, addressTopic(from), addressTopic(to)},
		Data:   amount[:],
	})
}

func emitApproval(host token.HostContext, owner, spender token.Address, value token.Value) {
	host.EmitLog(token.Log{
		Topics: []token.Hash{approvalEventTopic, addressTopic(owner), addressTopic(spender)},
		Data:   value[:],
	})
}
