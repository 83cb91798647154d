// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package router

import (
	"encoding/json"

	"github.com/Fantom-foundation/Arco/go/abi"
	"github.com/Fantom-foundation/Arco/go/arco"
)

// Description is an ARC-56 style description of a contract.
type Description struct {
	Name        string              `json:"name"`
	Methods     []MethodDescription `json:"methods"`
	State       StateDescription    `json:"state"`
	BareActions ActionsDescription  `json:"bareActions"`
	Events      []EventDescription  `json:"events"`
}

type MethodDescription struct {
	Name     string             `json:"name"`
	Args     []ArgDescription   `json:"args"`
	Returns  ArgDescription     `json:"returns"`
	Actions  ActionsDescription `json:"actions"`
	ReadOnly bool               `json:"readonly"`
	Events   []EventDescription `json:"events,omitempty"`
	Selector string             `json:"selector"`
}

type ArgDescription struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

type ActionsDescription struct {
	Create []string `json:"create"`
	Call   []string `json:"call"`
}

type EventDescription struct {
	Name string           `json:"name"`
	Args []ArgDescription `json:"args"`
}

type StateDescription struct {
	Schema struct {
		Global SchemaDescription `json:"global"`
		Local  SchemaDescription `json:"local"`
	} `json:"schema"`
	Keys struct {
		Global map[string]KeyDescription `json:"global"`
		Local  map[string]KeyDescription `json:"local"`
		Box    map[string]KeyDescription `json:"box"`
	} `json:"keys"`
	Maps struct {
		Global map[string]MapDescription `json:"global"`
		Local  map[string]MapDescription `json:"local"`
		Box    map[string]MapDescription `json:"box"`
	} `json:"maps"`
}

type SchemaDescription struct {
	Ints  uint64 `json:"ints"`
	Bytes uint64 `json:"bytes"`
}

type KeyDescription struct {
	KeyType   string `json:"keyType"`
	ValueType string `json:"valueType"`
	Key       []byte `json:"key"` // base64 encoded in JSON
}

type MapDescription struct {
	KeyType   string `json:"keyType"`
	ValueType string `json:"valueType"`
	Prefix    []byte `json:"prefix"` // base64 encoded in JSON
}

// Describe produces the description of the routed contract.
func (r *Router) Describe() Description {
	c := &r.contract
	res := Description{
		Name:    c.Name,
		Methods: []MethodDescription{},
		Events:  []EventDescription{},
	}
	for _, route := range r.order {
		method := MethodDescription{
			Name:     route.abi.Name,
			Args:     []ArgDescription{},
			Returns:  ArgDescription{Type: "void"},
			Actions:  describeActions(route.Actions, route.Create),
			ReadOnly: route.ReadOnly,
			Selector: route.abi.Selector().String(),
		}
		for i, arg := range route.abi.Args {
			desc := ArgDescription{Type: arg.String()}
			if len(route.ArgNames) > 0 {
				desc.Name = route.ArgNames[i]
			}
			method.Args = append(method.Args, desc)
		}
		if route.abi.Returns != nil {
			method.Returns.Type = route.abi.Returns.String()
		}
		for _, event := range route.Events {
			method.Events = append(method.Events, describeEvent(event))
		}
		res.Methods = append(res.Methods, method)
	}

	var create, call Actions
	for _, bare := range c.Bare {
		if bare.Create != Never {
			create |= bare.Actions
		}
		if bare.Create != Require {
			call |= bare.Actions
		}
	}
	res.BareActions = ActionsDescription{Create: actionNames(create), Call: actionNames(call)}

	global, local := c.GlobalSchema(), c.LocalSchema()
	res.State.Schema.Global = SchemaDescription{Ints: global.NumUint, Bytes: global.NumByteSlice}
	res.State.Schema.Local = SchemaDescription{Ints: local.NumUint, Bytes: local.NumByteSlice}
	res.State.Keys.Global = describeKeys(c.Global)
	res.State.Keys.Local = describeKeys(c.Local)
	res.State.Keys.Box = map[string]KeyDescription{}
	res.State.Maps.Global = map[string]MapDescription{}
	res.State.Maps.Local = map[string]MapDescription{}
	res.State.Maps.Box = map[string]MapDescription{}
	for _, box := range c.Boxes {
		prefix := box.Prefix
		if prefix == nil {
			prefix = []byte{}
		}
		res.State.Maps.Box[box.Name] = MapDescription{
			KeyType:   box.KeyType,
			ValueType: box.ValueType,
			Prefix:    prefix,
		}
	}

	for _, event := range c.Events {
		res.Events = append(res.Events, describeEvent(event))
	}
	return res
}

// DescribeJSON produces the indented JSON form of the description.
func (r *Router) DescribeJSON() ([]byte, error) {
	return json.MarshalIndent(r.Describe(), "", "  ")
}

func describeActions(actions Actions, policy CreatePolicy) ActionsDescription {
	res := ActionsDescription{Create: []string{}, Call: []string{}}
	if policy != Never {
		res.Create = actionNames(actions)
	}
	if policy != Require {
		res.Call = actionNames(actions)
	}
	return res
}

func actionNames(actions Actions) []string {
	res := []string{}
	for _, oc := range actions.List() {
		res = append(res, oc.String())
	}
	return res
}

func describeEvent(signature string) EventDescription {
	event := abi.MustParseEvent(signature)
	res := EventDescription{Name: event.Name, Args: []ArgDescription{}}
	for _, field := range event.Fields {
		res.Args = append(res.Args, ArgDescription{Type: field.String()})
	}
	return res
}

func describeKeys(fields []StateField) map[string]KeyDescription {
	res := map[string]KeyDescription{}
	for _, field := range fields {
		valueType := "AVMUint64"
		if field.Type == arco.BytesType {
			valueType = "AVMBytes"
		}
		res[field.Name] = KeyDescription{
			KeyType:   "AVMString",
			ValueType: valueType,
			Key:       []byte(field.Name),
		}
	}
	return res
}
