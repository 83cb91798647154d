// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arco

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/exp/maps"
)

func TestExecutorRegistry_NameCollisionsAreDetected(t *testing.T) {
	const name = "something-just-for-this-test"
	factory := func(any) (Executor, error) {
		return nil, nil
	}
	if err := RegisterExecutorFactory(name, factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterExecutorFactory(name, factory); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestExecutorRegistry_NilFactoriesAreRejected(t *testing.T) {
	const name = "something"
	if err := RegisterExecutorFactory(name, nil); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestExecutorRegistry_LookupIsCaseInsensitive(t *testing.T) {
	counter := 0
	factory := func(any) (Executor, error) {
		counter++
		return nil, nil
	}
	if err := RegisterExecutorFactory("Case-Test", factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewExecutor("CASE-test"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counter != 1 {
		t.Errorf("expected factory to be called once, got %d", counter)
	}
	if !slices.Contains(maps.Keys(GetAllRegisteredExecutors()), "case-test") {
		t.Errorf("registered factory is not listed")
	}
}

func TestExecutorRegistry_ConfigurationIsForwarded(t *testing.T) {
	var seen any
	factory := func(config any) (Executor, error) {
		seen = config
		return nil, nil
	}
	if err := RegisterExecutorFactory("config-test", factory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewExecutor("config-test", 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != 12 {
		t.Errorf("configuration was not forwarded, got %v", seen)
	}
	if _, err := NewExecutor("config-test", 1, 2); err == nil {
		t.Errorf("expected error for too many configurations")
	}
}

func TestExecutorRegistry_UnknownExecutorsProduceAnError(t *testing.T) {
	_, err := NewExecutor("something odd")
	if !errors.Is(err, ErrUnknownExecutor) {
		t.Errorf("expected ErrUnknownExecutor, got %v", err)
	}
}
