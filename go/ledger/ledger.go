// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package ledger provides an in-memory world state for application calls.
// A Ledger tracks all modifications in an undo log, which is the basis of the
// snapshot handling required for atomic invocations, and can be persisted to
// a key/value database.
package ledger

import (
	"bytes"
	"slices"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// Ledger implements arco.TransactionContext on top of an in-memory State.
// Ledgers are not thread-safe.
type Ledger struct {
	current State
	logs    []arco.Log
	undo    []func()
}

// New creates an empty ledger.
func New() *Ledger {
	return NewWithState(State{})
}

// NewWithState creates a ledger initialized with a copy of the given state.
func NewWithState(initial State) *Ledger {
	current := initial.Clone()
	if current.Balances == nil {
		current.Balances = Balances{}
	}
	if current.Apps == nil {
		current.Apps = Apps{}
	}
	for id, app := range current.Apps {
		if app.Global == nil {
			app.Global = Storage{}
		}
		if app.Local == nil {
			app.Local = LocalStates{}
		}
		if app.Boxes == nil {
			app.Boxes = Boxes{}
		}
		current.Apps[id] = app
	}
	current.NextAppID = current.nextAppID()
	return &Ledger{current: current}
}

// State returns a copy of the current state of the ledger.
func (l *Ledger) State() State {
	return l.current.Clone()
}

// Commit makes all modifications permanent by dropping the undo log and
// clears the logs collected so far.
func (l *Ledger) Commit() {
	l.undo = nil
	l.logs = nil
}

func (l *Ledger) GetBalance(address arco.Address) uint64 {
	return l.current.Balances[address]
}

func (l *Ledger) SetBalance(address arco.Address, value uint64) {
	original, found := l.current.Balances[address]
	if value == 0 {
		delete(l.current.Balances, address)
	} else {
		l.current.Balances[address] = value
	}
	l.undo = append(l.undo, func() {
		if found {
			l.current.Balances[address] = original
		} else {
			delete(l.current.Balances, address)
		}
	})
}

func (l *Ledger) CreateApp(params arco.AppParams) arco.AppID {
	id := l.current.NextAppID
	l.current.NextAppID++
	l.current.Apps[id] = App{Params: params, Global: Storage{}, Local: LocalStates{}, Boxes: Boxes{}}
	l.undo = append(l.undo, func() {
		delete(l.current.Apps, id)
		l.current.NextAppID = id
	})
	return id
}

func (l *Ledger) GetApp(id arco.AppID) (arco.AppParams, bool) {
	app, found := l.current.Apps[id]
	return app.Params, found
}

func (l *Ledger) DeleteApp(id arco.AppID) {
	original, found := l.current.Apps[id]
	if !found {
		return
	}
	delete(l.current.Apps, id)
	l.undo = append(l.undo, func() { l.current.Apps[id] = original })
}

func (l *Ledger) GetGlobal(id arco.AppID, key string) (arco.Value, bool) {
	value, found := l.current.Apps[id].Global[key]
	return value.Clone(), found
}

func (l *Ledger) SetGlobal(id arco.AppID, key string, value arco.Value) {
	app, found := l.current.Apps[id]
	if !found {
		return
	}
	l.setEntry(app.Global, key, value)
}

func (l *Ledger) DeleteGlobal(id arco.AppID, key string) {
	app, found := l.current.Apps[id]
	if !found {
		return
	}
	l.deleteEntry(app.Global, key)
}

func (l *Ledger) GetGlobalKeys(id arco.AppID) []string {
	return sortedKeys(l.current.Apps[id].Global)
}

func (l *Ledger) IsOptedIn(id arco.AppID, address arco.Address) bool {
	_, found := l.current.Apps[id].Local[address]
	return found
}

func (l *Ledger) OptIn(id arco.AppID, address arco.Address) {
	app, found := l.current.Apps[id]
	if !found || l.IsOptedIn(id, address) {
		return
	}
	app.Local[address] = Storage{}
	l.undo = append(l.undo, func() { delete(app.Local, address) })
}

func (l *Ledger) CloseOut(id arco.AppID, address arco.Address) {
	app, found := l.current.Apps[id]
	if !found {
		return
	}
	original, found := app.Local[address]
	if !found {
		return
	}
	delete(app.Local, address)
	l.undo = append(l.undo, func() { app.Local[address] = original })
}

func (l *Ledger) GetLocal(id arco.AppID, address arco.Address, key string) (arco.Value, bool) {
	value, found := l.current.Apps[id].Local[address][key]
	return value.Clone(), found
}

func (l *Ledger) SetLocal(id arco.AppID, address arco.Address, key string, value arco.Value) {
	storage, found := l.current.Apps[id].Local[address]
	if !found {
		return
	}
	l.setEntry(storage, key, value)
}

func (l *Ledger) DeleteLocal(id arco.AppID, address arco.Address, key string) {
	storage, found := l.current.Apps[id].Local[address]
	if !found {
		return
	}
	l.deleteEntry(storage, key)
}

func (l *Ledger) GetLocalKeys(id arco.AppID, address arco.Address) []string {
	return sortedKeys(l.current.Apps[id].Local[address])
}

func (l *Ledger) GetBox(id arco.AppID, name []byte) ([]byte, bool) {
	content, found := l.current.Apps[id].Boxes[string(name)]
	return bytes.Clone(content), found
}

func (l *Ledger) SetBox(id arco.AppID, name []byte, content []byte) {
	app, found := l.current.Apps[id]
	if !found {
		return
	}
	key := string(name)
	original, existed := app.Boxes[key]
	updated := bytes.Clone(content)
	if updated == nil {
		updated = []byte{}
	}
	app.Boxes[key] = updated
	l.undo = append(l.undo, func() {
		if existed {
			app.Boxes[key] = original
		} else {
			delete(app.Boxes, key)
		}
	})
}

func (l *Ledger) DeleteBox(id arco.AppID, name []byte) bool {
	app, found := l.current.Apps[id]
	if !found {
		return false
	}
	key := string(name)
	original, found := app.Boxes[key]
	if !found {
		return false
	}
	delete(app.Boxes, key)
	l.undo = append(l.undo, func() { app.Boxes[key] = original })
	return true
}

func (l *Ledger) CreateSnapshot() arco.Snapshot {
	return arco.Snapshot(len(l.undo))
}

func (l *Ledger) RestoreSnapshot(snapshot arco.Snapshot) {
	for len(l.undo) > int(snapshot) {
		l.undo[len(l.undo)-1]()
		l.undo = l.undo[:len(l.undo)-1]
	}
}

func (l *Ledger) EmitLog(log arco.Log) {
	len := len(l.logs)
	l.logs = append(l.logs, arco.Log(bytes.Clone(log)))
	l.undo = append(l.undo, func() { l.logs = l.logs[:len] })
}

func (l *Ledger) GetLogs() []arco.Log {
	return slices.Clone(l.logs)
}

func (l *Ledger) setEntry(storage Storage, key string, value arco.Value) {
	original, found := storage[key]
	storage[key] = value.Clone()
	l.undo = append(l.undo, func() {
		if found {
			storage[key] = original
		} else {
			delete(storage, key)
		}
	})
}

func (l *Ledger) deleteEntry(storage Storage, key string) {
	original, found := storage[key]
	if !found {
		return
	}
	delete(storage, key)
	l.undo = append(l.undo, func() { storage[key] = original })
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
