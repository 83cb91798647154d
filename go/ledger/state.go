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
	"fmt"
	"maps"

	"github.com/Fantom-foundation/Arco/go/arco"
)

// FirstAppID is the identifier assigned to the first application created on
// an empty ledger.
const FirstAppID arco.AppID = 1001

// ----------------------------------------------------------------------------
// State
// ----------------------------------------------------------------------------

// State is a plain value representation of the full content of a ledger. It
// is used to seed ledgers, to persist them, and to define expected states in
// tests.
type State struct {
	Balances  Balances
	Apps      Apps
	NextAppID arco.AppID // zero is interpreted as FirstAppID
}

func (s State) nextAppID() arco.AppID {
	if s.NextAppID == 0 {
		return FirstAppID
	}
	return s.NextAppID
}

func (s State) Equal(other State) bool {
	return s.nextAppID() == other.nextAppID() &&
		s.Balances.Equal(other.Balances) &&
		s.Apps.Equal(other.Apps)
}

func (s State) Clone() State {
	return State{
		Balances:  s.Balances.Clone(),
		Apps:      s.Apps.Clone(),
		NextAppID: s.NextAppID,
	}
}

func (s State) Diff(other State) []string {
	var res []string
	if a, b := s.nextAppID(), other.nextAppID(); a != b {
		res = append(res, fmt.Sprintf("different next app ID: %d != %d", a, b))
	}
	res = append(res, s.Balances.Diff("Balances/", other.Balances)...)
	res = append(res, s.Apps.Diff("Apps/", other.Apps)...)
	return res
}

// ----------------------------------------------------------------------------
// Balances
// ----------------------------------------------------------------------------

// Balances maps accounts to their balance. Zero balances are ignored.
type Balances map[arco.Address]uint64

func (b Balances) Equal(other Balances) bool {
	return equalMapsIgnoringZero(b, other, func(x, y uint64) bool {
		return x == y
	})
}

func (b Balances) Clone() Balances {
	return maps.Clone(b)
}

func (b Balances) Diff(prefix string, other Balances) []string {
	return diffMaps(prefix, b, other, func(address arco.Address, x, y uint64) []string {
		if x == y {
			return nil
		}
		return []string{fmt.Sprintf("different balance of %v: %d != %d", address, x, y)}
	})
}

// ----------------------------------------------------------------------------
// Apps
// ----------------------------------------------------------------------------

// Apps maps application identifiers to the state of the application. In
// contrast to balances and storage entries, the presence of an entry is
// significant.
type Apps map[arco.AppID]App

func (a Apps) Equal(other Apps) bool {
	return equalMaps(a, other, func(x, y App) bool {
		return x.Equal(&y)
	})
}

func (a Apps) Clone() Apps {
	if a == nil {
		return nil
	}
	res := make(Apps, len(a))
	for id, app := range a {
		res[id] = app.Clone()
	}
	return res
}

func (a Apps) Diff(prefix string, other Apps) []string {
	return diffPresence(prefix, a, other, func(id arco.AppID, x, y App) []string {
		if x.Equal(&y) {
			return nil
		}
		return x.Diff(fmt.Sprintf("%d/", id), &y)
	})
}

// App is the state of a single application.
type App struct {
	Params arco.AppParams
	Global Storage
	Local  LocalStates
	Boxes  Boxes
}

func (a *App) Equal(other *App) bool {
	return a.Params == other.Params &&
		a.Global.Equal(other.Global) &&
		a.Local.Equal(other.Local) &&
		a.Boxes.Equal(other.Boxes)
}

func (a *App) Clone() App {
	return App{
		Params: a.Params,
		Global: a.Global.Clone(),
		Local:  a.Local.Clone(),
		Boxes:  a.Boxes.Clone(),
	}
}

func (a *App) Diff(prefix string, other *App) []string {
	var res []string
	if a.Params != other.Params {
		res = append(res, fmt.Sprintf("different params: %+v != %+v", a.Params, other.Params))
	}
	res = append(res, a.Global.Diff("Global/", other.Global)...)
	res = append(res, a.Local.Diff("Local/", other.Local)...)
	res = append(res, a.Boxes.Diff("Boxes/", other.Boxes)...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

// ----------------------------------------------------------------------------
// Storage
// ----------------------------------------------------------------------------

// Storage is a key/value store of global or local state. Absent values are
// ignored.
type Storage map[string]arco.Value

func (s Storage) Equal(other Storage) bool {
	return equalMapsIgnoringZero(s, other, func(a, b arco.Value) bool {
		return a.Equal(b)
	})
}

func (s Storage) Clone() Storage {
	if s == nil {
		return nil
	}
	res := make(Storage, len(s))
	for k, v := range s {
		res[k] = v.Clone()
	}
	return res
}

func (s Storage) Diff(prefix string, other Storage) []string {
	return diffMaps(prefix, s, other, func(k string, a, b arco.Value) []string {
		if a.Equal(b) {
			return nil
		}
		return []string{fmt.Sprintf("different value for key %q: %v != %v", k, a, b)}
	})
}

// Counts returns the number of integer and byte-slice entries.
func (s Storage) Counts() (numUint, numByteSlice uint64) {
	for _, v := range s {
		switch v.Type {
		case arco.UintType:
			numUint++
		case arco.BytesType:
			numByteSlice++
		}
	}
	return numUint, numByteSlice
}

// LocalStates maps opted-in accounts to their local state. An account is
// opted in if it has an entry, even if its storage is empty.
type LocalStates map[arco.Address]Storage

func (l LocalStates) Equal(other LocalStates) bool {
	return equalMaps(l, other, func(a, b Storage) bool {
		return a.Equal(b)
	})
}

func (l LocalStates) Clone() LocalStates {
	if l == nil {
		return nil
	}
	res := make(LocalStates, len(l))
	for k, v := range l {
		res[k] = v.Clone()
		if res[k] == nil {
			res[k] = Storage{}
		}
	}
	return res
}

func (l LocalStates) Diff(prefix string, other LocalStates) []string {
	return diffPresence(prefix, l, other, func(address arco.Address, a, b Storage) []string {
		return a.Diff(fmt.Sprintf("%v/", address), b)
	})
}

// Boxes maps box names to box contents.
type Boxes map[string][]byte

func (b Boxes) Equal(other Boxes) bool {
	return equalMaps(b, other, bytes.Equal)
}

func (b Boxes) Clone() Boxes {
	if b == nil {
		return nil
	}
	res := make(Boxes, len(b))
	for k, v := range b {
		res[k] = bytes.Clone(v)
		if res[k] == nil {
			res[k] = []byte{}
		}
	}
	return res
}

func (b Boxes) Diff(prefix string, other Boxes) []string {
	return diffPresence(prefix, b, other, func(name string, x, y []byte) []string {
		if bytes.Equal(x, y) {
			return nil
		}
		return []string{fmt.Sprintf("different content of box 0x%x: 0x%x != 0x%x", name, x, y)}
	})
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// equalMapsIgnoringZero compares two maps, ignoring zero-valued entries.
func equalMapsIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

// equalMaps compares two maps, requiring both to have the same set of keys.
func equalMaps[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, found := b[k]
		if !found || !equal(v, w) {
			return false
		}
	}
	return true
}

// diffMaps compares two maps and returns a list of differences.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}

// diffPresence is like diffMaps but reports entries present on one side only.
func diffPresence[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		w, found := b[k]
		if !found {
			diffs = append(diffs, fmt.Sprintf("%v only present on the left", k))
			continue
		}
		diffs = append(diffs, diff(k, v, w)...)
	}
	for k := range b {
		if _, found := a[k]; !found {
			diffs = append(diffs, fmt.Sprintf("%v only present on the right", k))
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
