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
	"encoding/hex"
	"reflect"
	"testing"
)

func TestEvent_SelectorsMatchKnownValues(t *testing.T) {
	tests := map[string]string{
		"Swapped(uint64,uint64)":   "1ccbd925",
		"Complex(uint32[],uint64)": "18da5ea7",
	}
	for signature, want := range tests {
		event := MustParseEvent(signature)
		selector := event.Selector()
		if got := hex.EncodeToString(selector[:]); want != got {
			t.Errorf("unexpected selector of %s, want %s, got %s", signature, want, got)
		}
	}
}

func TestEvent_EncodeProducesPrefixedTuple(t *testing.T) {
	tests := map[string]struct {
		signature string
		values    []any
		want      string
	}{
		"swapped": {
			signature: "Swapped(uint64,uint64)",
			values:    []any{uint64(1), uint64(2)},
			want:      "1ccbd925" + "0000000000000001" + "0000000000000002",
		},
		"complex": {
			signature: "Complex(uint32[],uint64)",
			values:    []any{[]uint32{3, 4}, uint64(2)},
			want:      "18da5ea7" + "000a" + "0000000000000002" + "0002" + "00000003" + "00000004",
		},
		"empty array": {
			signature: "Complex(uint32[],uint64)",
			values:    []any{[]uint32{}, uint64(0)},
			want:      "18da5ea7" + "000a" + "0000000000000000" + "0000",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			event := MustParseEvent(test.signature)
			log, err := event.Encode(test.values...)
			if err != nil {
				t.Fatalf("failed to encode event: %v", err)
			}
			if got := hex.EncodeToString(log); test.want != got {
				t.Errorf("unexpected log entry, want %s, got %s", test.want, got)
			}
			if _, err := event.Decode(log); err != nil {
				t.Errorf("failed to decode own log entry: %v", err)
			}
		})
	}
}

func TestEvent_DecodeRestoresFields(t *testing.T) {
	event := MustParseEvent("Swapped(uint64,uint64)")
	log, err := event.Encode(uint64(9), uint64(7))
	if err != nil {
		t.Fatalf("failed to encode event: %v", err)
	}
	values, err := event.Decode(log)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if want := []any{uint64(9), uint64(7)}; !reflect.DeepEqual(want, values) {
		t.Errorf("unexpected fields, want %v, got %v", want, values)
	}

	other := MustParseEvent("Complex(uint32[],uint64)")
	if _, err := other.Decode(log); err == nil {
		t.Errorf("decoding a log of a different event should fail")
	}
}

func TestEvent_InvalidInputsAreRejected(t *testing.T) {
	if _, err := ParseEvent("Swapped(uint64,uint64)void"); err == nil {
		t.Errorf("event signatures must not carry a return type")
	}
	if _, err := ParseEvent("Swapped"); err == nil {
		t.Errorf("event signatures require a field list")
	}
	if _, err := MustParseEvent("Swapped(uint64,uint64)").Encode(uint64(1)); err == nil {
		t.Errorf("encoding with missing fields should fail")
	}
}
