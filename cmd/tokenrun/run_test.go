// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ledgerware/tokencore/token"
)

func TestRunScenario_ExecutesOperationsAndReportsConservation(t *testing.T) {
	s := scenario{
		Owner:       token.Address{1},
		TotalSupply: token.NewValue(10000),
		Operations: []operation{
			{Kind: "transfer", Sender: token.Address{1}, To: token.Address{2}, Amount: token.NewValue(1000)},
			{Kind: "approve", Sender: token.Address{1}, Spender: token.Address{3}, Amount: token.NewValue(500)},
			{Kind: "transferFrom", Sender: token.Address{3}, From: token.Address{1}, To: token.Address{2}, Amount: token.NewValue(500)},
			{Kind: "transfer", Sender: token.Address{2}, To: token.Address{1}, Amount: token.NewValue(999999)},
		},
	}

	var out bytes.Buffer
	if err := runScenario(s, &out); err != nil {
		t.Fatalf("failed to run scenario: %v", err)
	}

	report := out.String()
	if !strings.Contains(report, "value conserved") {
		t.Errorf("report is missing the conservation check:\n%s", report)
	}
	if !strings.Contains(report, "rejected") {
		t.Errorf("report is missing the rejected operation:\n%s", report)
	}
	if !strings.Contains(report, "events emitted: 3") {
		t.Errorf("unexpected event count in report:\n%s", report)
	}
}

func TestRunScenario_UnknownOperationKindFails(t *testing.T) {
	s := scenario{
		Owner:       token.Address{1},
		TotalSupply: token.NewValue(100),
		Operations:  []operation{{Kind: "mint", Sender: token.Address{1}, Amount: token.NewValue(1)}},
	}

	var out bytes.Buffer
	if err := runScenario(s, &out); err == nil {
		t.Errorf("expected an error for an unknown operation kind")
	}
}

func TestScenario_DecodesFromJSON(t *testing.T) {
	data := `{
		"owner": "0x0100000000000000000000000000000000000000",
		"totalSupply": "0x0000000000000000000000000000000000000000000000000000000000002710",
		"operations": [
			{
				"kind": "transfer",
				"sender": "0x0100000000000000000000000000000000000000",
				"to": "0x0200000000000000000000000000000000000000",
				"amount": "0x00000000000000000000000000000000000000000000000000000000000003e8"
			}
		]
	}`

	var s scenario
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("failed to decode scenario: %v", err)
	}
	if want, got := (token.Address{1}), s.Owner; want != got {
		t.Errorf("unexpected owner, wanted %v, got %v", want, got)
	}
	if want, got := token.NewValue(10000), s.TotalSupply; want != got {
		t.Errorf("unexpected total supply, wanted %v, got %v", want, got)
	}
	if len(s.Operations) != 1 || s.Operations[0].Kind != "transfer" {
		t.Fatalf("unexpected operations: %+v", s.Operations)
	}
	if want, got := token.NewValue(1000), s.Operations[0].Amount; want != got {
		t.Errorf("unexpected amount, wanted %v, got %v", want, got)
	}
}
