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
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for Executor factories.
//
// Contract implementations register themselves in the init code of their
// packages. Thus, by including an implementation package, its executor becomes
// available to all client applications under the registered name.

// NewExecutor performs a lookup for the given name (case-insensitive) in the
// registry and creates a new Executor using the given optional configuration.
// If no configuration is provided, the implementation uses its default
// configuration. An error is returned if no factory was registered under the
// given name.
func NewExecutor(name string, config ...any) (Executor, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	factory := GetExecutorFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExecutor, name)
	}
	c := any(nil)
	if len(config) > 0 {
		c = config[0]
	}
	return factory(c)
}

// GetExecutorFactory performs a lookup for the given name (case-insensitive)
// in the registry. The result is nil if no factory was registered under the
// given name.
func GetExecutorFactory(name string) ExecutorFactory {
	executorRegistryLock.Lock()
	defer executorRegistryLock.Unlock()
	return executorRegistry[strings.ToLower(name)]
}

// GetAllRegisteredExecutors obtains all registered implementations.
func GetAllRegisteredExecutors() map[string]ExecutorFactory {
	executorRegistryLock.Lock()
	defer executorRegistryLock.Unlock()
	return maps.Clone(executorRegistry)
}

// RegisterExecutorFactory registers a new Executor implementation to be
// exported for general use in the binary. The name is not case-sensitive, and
// an error is returned if a factory was bound to the same name before, or the
// factory is nil.
func RegisterExecutorFactory(name string, factory ExecutorFactory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	executorRegistryLock.Lock()
	defer executorRegistryLock.Unlock()
	if _, found := executorRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	executorRegistry[key] = factory
	return nil
}

// ExecutorFactory is the type of a function that creates a new Executor
// using an executor specific configuration.
type ExecutorFactory func(config any) (Executor, error)

// executorRegistry is a global registry for Executor factories.
var executorRegistry = map[string]ExecutorFactory{}

// executorRegistryLock to protect access to the registry.
var executorRegistryLock sync.Mutex
