// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ledger

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/rlp"
)

// Key prefixes of the records of a persisted state. All multi-byte numbers in
// keys are big-endian encoded.
const (
	metaPrefix    = 'm' // m -> nextAppID
	balancePrefix = 'b' // b + address -> balance
	appPrefix     = 'a' // a + appID -> params
	globalPrefix  = 'g' // g + appID + key -> value
	optInPrefix   = 'o' // o + appID + address -> marker
	localPrefix   = 'l' // l + appID + address + key -> value
	boxPrefix     = 'x' // x + appID + name -> content
)

var recordPrefixes = []byte{metaPrefix, balancePrefix, appPrefix, globalPrefix, optInPrefix, localPrefix, boxPrefix}

type metaRecord struct {
	NextAppID uint64
}

type appRecord struct {
	Creator            arco.Address
	GlobalNumUint      uint64
	GlobalNumByteSlice uint64
	LocalNumUint       uint64
	LocalNumByteSlice  uint64
}

type valueRecord struct {
	Type  uint8
	Uint  uint64
	Bytes []byte
}

// Save replaces the content of the given database by the given state. The
// operation is not atomic: a failure may leave a partially written state.
func Save(db ethdb.KeyValueStore, state State) error {
	batch := db.NewBatch()
	flush := func() error {
		if batch.ValueSize() < ethdb.IdealBatchSize {
			return nil
		}
		if err := batch.Write(); err != nil {
			return err
		}
		batch.Reset()
		return nil
	}
	put := func(key []byte, record any) error {
		data, err := rlp.EncodeToBytes(record)
		if err != nil {
			return fmt.Errorf("failed to encode record %x: %w", key, err)
		}
		if err := batch.Put(key, data); err != nil {
			return err
		}
		return flush()
	}

	for _, prefix := range recordPrefixes {
		it := db.NewIterator([]byte{prefix}, nil)
		for it.Next() {
			if err := batch.Delete(bytes.Clone(it.Key())); err != nil {
				it.Release()
				return err
			}
		}
		err := it.Error()
		it.Release()
		if err != nil {
			return err
		}
	}

	if err := put([]byte{metaPrefix}, metaRecord{NextAppID: uint64(state.nextAppID())}); err != nil {
		return err
	}
	for address, balance := range state.Balances {
		if balance == 0 {
			continue
		}
		if err := put(key(balancePrefix, address[:]), balance); err != nil {
			return err
		}
	}
	for id, app := range state.Apps {
		params := app.Params
		record := appRecord{
			Creator:            params.Creator,
			GlobalNumUint:      params.GlobalSchema.NumUint,
			GlobalNumByteSlice: params.GlobalSchema.NumByteSlice,
			LocalNumUint:       params.LocalSchema.NumUint,
			LocalNumByteSlice:  params.LocalSchema.NumByteSlice,
		}
		if err := put(key(appPrefix, appKey(id)), record); err != nil {
			return err
		}
		for name, value := range app.Global {
			if value.IsZero() {
				continue
			}
			if err := put(key(globalPrefix, appKey(id), []byte(name)), toValueRecord(value)); err != nil {
				return err
			}
		}
		for address, storage := range app.Local {
			if err := put(key(optInPrefix, appKey(id), address[:]), uint8(1)); err != nil {
				return err
			}
			for name, value := range storage {
				if value.IsZero() {
					continue
				}
				if err := put(key(localPrefix, appKey(id), address[:], []byte(name)), toValueRecord(value)); err != nil {
					return err
				}
			}
		}
		for name, content := range app.Boxes {
			if err := put(key(boxPrefix, appKey(id), []byte(name)), content); err != nil {
				return err
			}
		}
	}
	return batch.Write()
}

// Load reads a state previously written by Save. An empty database yields an
// empty state.
func Load(db ethdb.KeyValueStore) (State, error) {
	state := State{Balances: Balances{}, Apps: Apps{}}

	var meta metaRecord
	if has, err := db.Has([]byte{metaPrefix}); err != nil {
		return State{}, err
	} else if has {
		data, err := db.Get([]byte{metaPrefix})
		if err != nil {
			return State{}, err
		}
		if err := rlp.DecodeBytes(data, &meta); err != nil {
			return State{}, fmt.Errorf("invalid meta record: %w", err)
		}
	}
	state.NextAppID = arco.AppID(meta.NextAppID)

	err := iterate(db, balancePrefix, func(rest []byte, data []byte) error {
		if len(rest) != len(arco.Address{}) {
			return fmt.Errorf("invalid balance key %x", rest)
		}
		var balance uint64
		if err := rlp.DecodeBytes(data, &balance); err != nil {
			return err
		}
		state.Balances[arco.Address(rest)] = balance
		return nil
	})
	if err != nil {
		return State{}, err
	}

	err = iterate(db, appPrefix, func(rest []byte, data []byte) error {
		id, _, err := splitAppKey(rest)
		if err != nil {
			return err
		}
		var record appRecord
		if err := rlp.DecodeBytes(data, &record); err != nil {
			return err
		}
		state.Apps[id] = App{
			Params: arco.AppParams{
				Creator:      record.Creator,
				GlobalSchema: arco.StateSchema{NumUint: record.GlobalNumUint, NumByteSlice: record.GlobalNumByteSlice},
				LocalSchema:  arco.StateSchema{NumUint: record.LocalNumUint, NumByteSlice: record.LocalNumByteSlice},
			},
			Global: Storage{},
			Local:  LocalStates{},
			Boxes:  Boxes{},
		}
		return nil
	})
	if err != nil {
		return State{}, err
	}

	getApp := func(rest []byte) (App, []byte, error) {
		id, rest, err := splitAppKey(rest)
		if err != nil {
			return App{}, nil, err
		}
		app, found := state.Apps[id]
		if !found {
			return App{}, nil, fmt.Errorf("record of unknown app %d", id)
		}
		return app, rest, nil
	}

	err = iterate(db, globalPrefix, func(rest []byte, data []byte) error {
		app, name, err := getApp(rest)
		if err != nil {
			return err
		}
		value, err := fromValueRecord(data)
		if err != nil {
			return err
		}
		app.Global[string(name)] = value
		return nil
	})
	if err != nil {
		return State{}, err
	}

	err = iterate(db, optInPrefix, func(rest []byte, _ []byte) error {
		app, address, err := getApp(rest)
		if err != nil {
			return err
		}
		if len(address) != len(arco.Address{}) {
			return fmt.Errorf("invalid opt-in key %x", rest)
		}
		app.Local[arco.Address(address)] = Storage{}
		return nil
	})
	if err != nil {
		return State{}, err
	}

	err = iterate(db, localPrefix, func(rest []byte, data []byte) error {
		app, rest, err := getApp(rest)
		if err != nil {
			return err
		}
		if len(rest) < len(arco.Address{}) {
			return fmt.Errorf("invalid local state key %x", rest)
		}
		storage, found := app.Local[arco.Address(rest[:32])]
		if !found {
			return fmt.Errorf("local state of account that has not opted in")
		}
		value, err := fromValueRecord(data)
		if err != nil {
			return err
		}
		storage[string(rest[32:])] = value
		return nil
	})
	if err != nil {
		return State{}, err
	}

	err = iterate(db, boxPrefix, func(rest []byte, data []byte) error {
		app, name, err := getApp(rest)
		if err != nil {
			return err
		}
		var content []byte
		if err := rlp.DecodeBytes(data, &content); err != nil {
			return err
		}
		if content == nil {
			content = []byte{}
		}
		app.Boxes[string(name)] = content
		return nil
	})
	if err != nil {
		return State{}, err
	}
	return state, nil
}

func iterate(db ethdb.Iteratee, prefix byte, visit func(rest []byte, data []byte) error) error {
	it := db.NewIterator([]byte{prefix}, nil)
	defer it.Release()
	for it.Next() {
		rest := bytes.Clone(it.Key()[1:])
		if err := visit(rest, bytes.Clone(it.Value())); err != nil {
			return fmt.Errorf("invalid record %x: %w", it.Key(), err)
		}
	}
	return it.Error()
}

func key(prefix byte, parts ...[]byte) []byte {
	res := []byte{prefix}
	for _, part := range parts {
		res = append(res, part...)
	}
	return res
}

func appKey(id arco.AppID) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(id))
}

func splitAppKey(data []byte) (arco.AppID, []byte, error) {
	if len(data) < 8 {
		return 0, nil, fmt.Errorf("invalid key %x", data)
	}
	return arco.AppID(binary.BigEndian.Uint64(data)), data[8:], nil
}

func toValueRecord(value arco.Value) valueRecord {
	return valueRecord{Type: uint8(value.Type), Uint: value.Uint, Bytes: value.Bytes}
}

func fromValueRecord(data []byte) (arco.Value, error) {
	var record valueRecord
	if err := rlp.DecodeBytes(data, &record); err != nil {
		return arco.Value{}, err
	}
	switch arco.ValueType(record.Type) {
	case arco.UintType:
		return arco.NewUint(record.Uint), nil
	case arco.BytesType:
		return arco.NewBytes(record.Bytes), nil
	}
	return arco.Value{}, fmt.Errorf("invalid value type %d", record.Type)
}
