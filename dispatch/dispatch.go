// Copyright (c) 2026 Ledgerware
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at ledgerware.dev/bsl11.
//
// Change Date: 2030-8-1
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package dispatch routes raw call payloads to the ledger operations. It is
// a thin adaptation layer: the first four input bytes select the method, the
// remainder is ABI-decoded into the operation's arguments, and the declared
// return value is ABI-encoded back. All ledger semantics live in the ledger
// package; failures of this layer (unknown selector, undecodable arguments)
// are environmental errors, distinct from business rejections which travel
// inside a successfully encoded false return value.
package dispatch

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ledgerware/tokencore/ledger"
	"github.com/ledgerware/tokencore/token"
)

// tokenContractABI declares the callable surface of the ledger: the
// constructor, the seven operations, and the two event kinds.
const tokenContractABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[{"name":"totalSupply","type":"uint256"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"Approval","anonymous":false,"inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

var tokenABI abi.ABI

var (
	totalSupplyMethodID  []byte
	balanceOfMethodID    []byte
	allowanceMethodID    []byte
	transferMethodID     []byte
	approveMethodID      []byte
	transferFromMethodID []byte
)

func init() {
	parsed, err := abi.JSON(strings.NewReader(tokenContractABI))
	if err != nil {
		panic(fmt.Errorf("failed to parse tokenContractABI: %w", err))
	}
	tokenABI = parsed

	for name, constID := range map[string]*[]byte{
		"totalSupply":  &totalSupplyMethodID,
		"balanceOf":    &balanceOfMethodID,
		"allowance":    &allowanceMethodID,
		"transfer":     &transferMethodID,
		"approve":      &approveMethodID,
		"transferFrom": &transferFromMethodID,
	} {
		method, exist := tokenABI.Methods[name]
		if !exist {
			panic("unknown ledger method")
		}

		*constID = make([]byte, len(method.ID))
		copy(*constID, method.ID)
	}
}

var ErrInvalidInput = fmt.Errorf("invalid input")
var ErrUnknownMethod = fmt.Errorf("unknown method ID")

// Parameters summarizes the inputs of one invocation: the host context of
// the execution environment, the calling party resolved by the environment,
// and the raw, still encoded call payload.
type Parameters struct {
	Context token.HostContext
	Sender  token.Address
	Input   []byte
}

// Result carries the ABI-encoded return value of a successfully dispatched
// invocation.
type Result struct {
	Success bool
	Output  []byte
}

// Deploy decodes the constructor argument and initializes the ledger. The
// environment must invoke it exactly once, at contract creation.
func Deploy(params Parameters) error {
	args, err := tokenABI.Constructor.Inputs.Unpack(params.Input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	supply := valueFromBig(args[0].(*big.Int))
	ledger.New(params.Context).Constructor(params.Sender, supply)
	return nil
}

// Call routes the given invocation to the ledger operation selected by the
// input's method ID and returns the encoded result. The returned error is
// nil whenever the call was correctly dispatched, even if the operation
// itself rejected the request; in that case the rejection is encoded in the
// output.
func Call(params Parameters) (Result, error) {
	if len(params.Input) < 4 {
		return Result{}, ErrInvalidInput
	}
	selector := params.Input[:4]
	input := params.Input[4:]
	l := ledger.New(params.Context)

	var output []byte
	var err error
	switch {
	case bytes.Equal(selector, totalSupplyMethodID):
		output, err = executeTotalSupply(l)
	case bytes.Equal(selector, balanceOfMethodID):
		output, err = executeBalanceOf(l, input)
	case bytes.Equal(selector, allowanceMethodID):
		output, err = executeAllowance(l, input)
	case bytes.Equal(selector, transferMethodID):
		output, err = executeTransfer(l, params.Sender, input)
	case bytes.Equal(selector, approveMethodID):
		output, err = executeApprove(l, params.Sender, input)
	case bytes.Equal(selector, transferFromMethodID):
		output, err = executeTransferFrom(l, params.Sender, input)
	default:
		return Result{}, ErrUnknownMethod
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Success: true, Output: output}, nil
}

func executeTotalSupply(l *ledger.Ledger) ([]byte, error) {
	method := tokenABI.Methods["totalSupply"]
	return method.Outputs.Pack(l.TotalSupply().ToBig())
}

func executeBalanceOf(l *ledger.Ledger, input []byte) ([]byte, error) {
	method := tokenABI.Methods["balanceOf"]
	args, err := method.Inputs.Unpack(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	owner := token.Address(args[0].(common.Address))
	return method.Outputs.Pack(l.BalanceOf(owner).ToBig())
}

func executeAllowance(l *ledger.Ledger, input []byte) ([]byte, error) {
	method := tokenABI.Methods["allowance"]
	args, err := method.Inputs.Unpack(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	owner := token.Address(args[0].(common.Address))
	spender := token.Address(args[1].(common.Address))
	return method.Outputs.Pack(l.Allowance(owner, spender).ToBig())
}

func executeTransfer(l *ledger.Ledger, sender token.Address, input []byte) ([]byte, error) {
	method := tokenABI.Methods["transfer"]
	args, err := method.Inputs.Unpack(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	to := token.Address(args[0].(common.Address))
	amount := valueFromBig(args[1].(*big.Int))
	return method.Outputs.Pack(l.Transfer(sender, to, amount))
}

func executeApprove(l *ledger.Ledger, sender token.Address, input []byte) ([]byte, error) {
	method := tokenABI.Methods["approve"]
	args, err := method.Inputs.Unpack(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	spender := token.Address(args[0].(common.Address))
	value := valueFromBig(args[1].(*big.Int))
	return method.Outputs.Pack(l.Approve(sender, spender, value))
}

func executeTransferFrom(l *ledger.Ledger, sender token.Address, input []byte) ([]byte, error) {
	method := tokenABI.Methods["transferFrom"]
	args, err := method.Inputs.Unpack(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	from := token.Address(args[0].(common.Address))
	to := token.Address(args[1].(common.Address))
	amount := valueFromBig(args[2].(*big.Int))
	return method.Outputs.Pack(l.TransferFrom(sender, from, to, amount))
}

// valueFromBig converts a decoded uint256 argument. Decoded arguments are at
// most 32 bytes wide, so the conversion cannot overflow.
func valueFromBig(value *big.Int) token.Value {
	result, _ := uint256.FromBig(value)
	return token.ValueFromUint256(result)
}
