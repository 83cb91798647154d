// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package abi

import (
	"bytes"
	"fmt"

	"github.com/Fantom-foundation/Arco/go/arco"
)

var eventCache = mustNewCache[*Event]()

// Event describes an ARC-28 event. Events are immutable once parsed.
type Event struct {
	Name   string
	Fields []Type
}

// ParseEvent parses an event signature of the form Name(type,...).
func ParseEvent(signature string) (*Event, error) {
	if event, found := eventCache.Get(signature); found {
		return event, nil
	}
	name, fields, rest, err := splitSignature(signature)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected suffix %q in event signature", rest)
	}
	event := &Event{Name: name, Fields: fields}
	eventCache.Add(signature, event)
	return event, nil
}

// MustParseEvent is a variant of ParseEvent panicking on invalid input.
func MustParseEvent(signature string) *Event {
	res, err := ParseEvent(signature)
	if err != nil {
		panic(err)
	}
	return res
}

func (e *Event) Signature() string {
	return e.Name + joinTypes(e.Fields)
}

func (e *Event) String() string {
	return e.Signature()
}

// Selector is the 4-byte prefix of the log entries of this event.
func (e *Event) Selector() arco.Selector {
	return SelectorOf(e.Signature())
}

// Encode produces the log entry of an emission of this event: the selector
// followed by the tuple encoding of the field values.
func (e *Event) Encode(values ...any) ([]byte, error) {
	if len(values) != len(e.Fields) {
		return nil, fmt.Errorf("event %s has %d fields, got %d values", e.Name, len(e.Fields), len(values))
	}
	body, err := encodeTuple(e.Fields, values)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.Name, err)
	}
	selector := e.Selector()
	return append(selector[:], body...), nil
}

// Decode extracts the field values from a log entry of this event.
func (e *Event) Decode(log []byte) ([]any, error) {
	selector := e.Selector()
	body, found := bytes.CutPrefix(log, selector[:])
	if !found {
		return nil, fmt.Errorf("log entry is not a %s event", e.Name)
	}
	return decodeTuple(e.Fields, body)
}
