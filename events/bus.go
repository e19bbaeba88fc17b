// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/baldursgate-parity/ddrc/core"
)

// Event is the interface every presentation record implements. EventRef
// identifies the record's kind for ref-routed subscription; the bus never
// inspects the record's fields.
type Event interface {
	EventRef() *core.Ref
}

// Filter determines if a handler should receive an event.
// Return true to receive the event, false to skip it.
type Filter func(event Event) bool

// EventBus handles publishing presentation records and subscribing to them.
// The core only ever publishes through this interface; it never blocks
// waiting for a subscriber.
type EventBus interface {
	// Publish sends an event to all subscribers using context.Background().
	Publish(event Event) error

	// PublishWithContext sends an event with a context for cancellation.
	PublishWithContext(ctx context.Context, event Event) error

	// Subscribe registers a handler for events with the given ref.
	// Handler must be func(T) R or func(context.Context, T) R where T is the event type
	// and R is error or *DeferredAction.
	Subscribe(ref *core.Ref, handler any) (string, error)

	// SubscribeWithFilter registers a handler with a filter.
	SubscribeWithFilter(ref *core.Ref, handler any, filter Filter) (string, error)

	// Unsubscribe removes a subscription by ID.
	Unsubscribe(id string) error

	// Clear removes all subscriptions (useful for tests).
	Clear()
}

// Bus is the simple, synchronous event bus implementation.
type Bus struct {
	mu           sync.RWMutex
	handlers     map[string][]handlerEntry
	nextID       int
	publishDepth int32 // current recursion depth (atomic)
	maxDepth     int32 // maximum allowed depth
}

type handlerEntry struct {
	id             string
	ref            *core.Ref
	handler        reflect.Value
	filter         Filter
	acceptsContext bool
}

// DefaultMaxDepth bounds how deep a cascade of publish-from-handler calls may go
// before the bus refuses to recurse further.
const DefaultMaxDepth = 10

// NewBus creates a new event bus with default settings.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]handlerEntry),
		maxDepth: DefaultMaxDepth,
	}
}

// NewBusWithMaxDepth creates a new event bus with a custom max cascade depth.
func NewBusWithMaxDepth(maxDepth int32) *Bus {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Bus{
		handlers: make(map[string][]handlerEntry),
		maxDepth: maxDepth,
	}
}

// Publish sends an event to all registered handlers using context.Background().
func (b *Bus) Publish(event Event) error {
	return b.PublishWithContext(context.Background(), event)
}

// PublishWithContext sends an event to all registered handlers with the given context.
func (b *Bus) PublishWithContext(ctx context.Context, event Event) error {
	depth := atomic.AddInt32(&b.publishDepth, 1)
	defer atomic.AddInt32(&b.publishDepth, -1)

	if depth > b.maxDepth {
		return fmt.Errorf("events: cascade depth exceeded: current=%d, max=%d, event=%s",
			depth, b.maxDepth, event.EventRef())
	}

	var deferred []*DeferredAction
	var immediateError error

	refStr := event.EventRef().String()

	b.mu.RLock()
	entries := b.handlers[refStr]
	for _, entry := range entries {
		if entry.filter != nil && !entry.filter(event) {
			continue
		}

		var results []reflect.Value
		if entry.acceptsContext {
			results = entry.handler.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(event)})
		} else {
			results = entry.handler.Call([]reflect.Value{reflect.ValueOf(event)})
		}

		if len(results) > 0 && !results[0].IsNil() {
			switch v := results[0].Interface().(type) {
			case *DeferredAction:
				deferred = append(deferred, v)
			case error:
				immediateError = fmt.Errorf("events: handler %s failed: %w", entry.id, v)
			}
		}
		if immediateError != nil {
			break
		}
	}
	b.mu.RUnlock()

	if immediateError != nil {
		return immediateError
	}

	for _, action := range deferred {
		for _, id := range action.Unsubscribes {
			_ = b.Unsubscribe(id)
		}
		for _, evt := range action.Publishes {
			if err := b.Publish(evt); err != nil {
				return err
			}
		}
		if action.Error != nil {
			return action.Error
		}
	}

	return nil
}

// Subscribe registers a handler for events with the given ref.
func (b *Bus) Subscribe(ref *core.Ref, handler any) (string, error) {
	return b.SubscribeWithFilter(ref, handler, nil)
}

// SubscribeWithFilter registers a handler with a filter.
func (b *Bus) SubscribeWithFilter(ref *core.Ref, handler any, filter Filter) (string, error) {
	handlerValue := reflect.ValueOf(handler)
	handlerType := handlerValue.Type()

	if handlerType.Kind() != reflect.Func {
		return "", fmt.Errorf("events: handler must be a function")
	}

	acceptsContext := false
	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()

	switch handlerType.NumIn() {
	case 2:
		if handlerType.In(0) != contextType {
			return "", fmt.Errorf("events: handler with 2 parameters must have context.Context as first parameter")
		}
		acceptsContext = true
	case 1:
		// event only
	default:
		return "", fmt.Errorf("events: handler must take either 1 parameter (event) or 2 parameters (context, event)")
	}

	if handlerType.NumOut() != 1 {
		return "", fmt.Errorf("events: handler must return exactly one value")
	}

	returnType := handlerType.Out(0)
	errorType := reflect.TypeOf((*error)(nil)).Elem()
	deferredType := reflect.TypeOf((*DeferredAction)(nil))
	if returnType != errorType && returnType != deferredType {
		return "", fmt.Errorf("events: handler must return either error or *DeferredAction")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := fmt.Sprintf("sub-%d", b.nextID)

	refStr := ref.String()
	b.handlers[refStr] = append(b.handlers[refStr], handlerEntry{
		id:             id,
		ref:            ref,
		handler:        handlerValue,
		filter:         filter,
		acceptsContext: acceptsContext,
	})

	return id, nil
}

// Unsubscribe removes a subscription by ID.
func (b *Bus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for refStr, handlers := range b.handlers {
		for i, entry := range handlers {
			if entry.id == id {
				b.handlers[refStr] = append(handlers[:i], handlers[i+1:]...)
				return nil
			}
		}
	}

	return fmt.Errorf("events: subscription %s not found", id)
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = make(map[string][]handlerEntry)
}

// GetDepth returns the current event publishing depth (for monitoring).
func (b *Bus) GetDepth() int32 {
	return atomic.LoadInt32(&b.publishDepth)
}

// GetMaxDepth returns the maximum allowed cascade depth.
func (b *Bus) GetMaxDepth() int32 {
	return b.maxDepth
}
