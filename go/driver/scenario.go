// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.


package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/Fantom-foundation/Arco/go/processor/standard"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"
)

// Scenario is a list of transactions run on a ledger in which the listed
// accounts are funded. Scenarios are stored in YAML or JSON files.
type Scenario struct {
	Accounts     []Account     `yaml:"accounts"`
	Transactions []Transaction `yaml:"transactions"`
}

type Account struct {
	Address arco.Address `yaml:"address"`
	Balance uint64       `yaml:"balance"`
}

// Transaction describes a single application call of a scenario. Arguments
// are either given as typed values of the called method or as raw,
// hex-encoded application arguments.
type Transaction struct {
	Sender       arco.Address      `yaml:"sender"`
	App          arco.AppID        `yaml:"app"`
	OnCompletion arco.OnCompletion `yaml:"onCompletion"`
	Method       string            `yaml:"method"`
	Args         []any             `yaml:"args"`
	RawArgs      []hexutil.Bytes   `yaml:"rawArgs"`
	Applications []arco.AppID      `yaml:"applications"`
	Assets       []arco.AssetID    `yaml:"assets"`
	Accounts     []arco.Address    `yaml:"accounts"`
	Fee          uint64            `yaml:"fee"` // defaults to the minimal fee
}

// LoadScenario reads a scenario from the given file. Since JSON is a subset
// of YAML, both formats are parsed by the same decoder.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var res Scenario
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &res, nil
}

// Build converts the scenario transactions into transactions of a
// processor. Applications created by the scenario use the given schemas.
func (s *Scenario) Build(global, local arco.StateSchema) ([]arco.Transaction, error) {
	res := make([]arco.Transaction, 0, len(s.Transactions))
	for i, cur := range s.Transactions {
		args, err := cur.encodeArgs()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		fee := cur.Fee
		if fee == 0 {
			fee = standard.DefaultMinFee
		}
		tx := arco.Transaction{
			Sender:       cur.Sender,
			AppID:        cur.App,
			OnCompletion: cur.OnCompletion,
			Args:         args,
			Applications: cur.Applications,
			Assets:       cur.Assets,
			Accounts:     cur.Accounts,
			Fee:          fee,
		}
		if tx.AppID == 0 {
			tx.GlobalSchema = global
			tx.LocalSchema = local
		}
		res = append(res, tx)
	}
	return res, nil
}

func (t *Transaction) encodeArgs() ([][]byte, error) {
	if t.Method == "" {
		if len(t.Args) > 0 {
			return nil, fmt.Errorf("typed arguments require a method")
		}
		res := make([][]byte, 0, len(t.RawArgs))
		for _, arg := range t.RawArgs {
			res = append(res, arg)
		}
		return res, nil
	}
	if len(t.RawArgs) > 0 {
		return nil, fmt.Errorf("raw arguments can not be combined with a method")
	}
	method, err := abi.ParseMethod(t.Method)
	if err != nil {
		return nil, err
	}
	if len(t.Args) != len(method.Args) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", method.Name, len(method.Args), len(t.Args))
	}
	values := make([]any, 0, len(t.Args))
	for i, arg := range t.Args {
		value, err := convertArg(method.Args[i], arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d of %s: %w", i, method.Name, err)
		}
		values = append(values, value)
	}
	return method.EncodeCall(values...)
}

// convertArg converts a value decoded from a scenario file into a value
// accepted by the ABI encoder for the given type.
func convertArg(t abi.Type, value any) (any, error) {
	switch t.Kind {
	case abi.UintKind, abi.ByteKind:
		switch v := value.(type) {
		case int:
			if v < 0 {
				return nil, fmt.Errorf("negative value %d for %v", v, t)
			}
			return uint64(v), nil
		case uint64:
			return v, nil
		case string:
			if strings.HasPrefix(v, "0x") {
				return uint256.FromHex(v)
			}
			return uint256.FromDecimal(v)
		}
	case abi.BoolKind:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case abi.StringKind:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case abi.AddressKind:
		if v, ok := value.(string); ok {
			return arco.ParseAddress(v)
		}
	case abi.StaticArrayKind, abi.DynamicArrayKind:
		if v, ok := value.(string); ok && t.Elem.Kind == abi.ByteKind {
			return hexutil.Decode(v)
		}
		if v, ok := value.([]any); ok {
			elems := make([]abi.Type, len(v))
			for i := range elems {
				elems[i] = *t.Elem
			}
			return convertList(elems, v)
		}
	case abi.TupleKind:
		if v, ok := value.([]any); ok {
			if len(v) != len(t.Fields) {
				return nil, fmt.Errorf("expected %d fields for %v, got %d", len(t.Fields), t, len(v))
			}
			return convertList(t.Fields, v)
		}
	}
	return nil, fmt.Errorf("cannot convert %v (%T) to %v", value, value, t)
}

func convertList(types []abi.Type, values []any) ([]any, error) {
	res := make([]any, 0, len(values))
	for i, value := range values {
		converted, err := convertArg(types[i], value)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res = append(res, converted)
	}
	return res, nil
}
