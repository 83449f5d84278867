// events_test.go: unit tests for change notification emission
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import "testing"

func TestEvents_InsertRemoveClear(t *testing.T) {
	events := make(chan Event, 16)
	c, err := New(Config{
		Capacity: 10,
		Clock:    newFakeClock(),
		Events:   NewChannelEventSink(events),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Insert("k", "v")
	c.Remove("k")
	c.Clear()

	ev := <-events
	if ev.Kind != EventInsert || ev.Key != "k" || ev.Value != "v" {
		t.Errorf("expected Insert event for k=v, got %+v", ev)
	}

	ev = <-events
	if ev.Kind != EventRemove || ev.Key != "k" {
		t.Errorf("expected Remove event for k, got %+v", ev)
	}

	ev = <-events
	if ev.Kind != EventClear {
		t.Errorf("expected Clear event, got %+v", ev)
	}
}

func TestEvents_DropOnFullChannel(t *testing.T) {
	events := make(chan Event, 1)
	c, err := New(Config{
		Capacity: 10,
		Clock:    newFakeClock(),
		Events:   NewChannelEventSink(events),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Insert("a", 1) // fills the buffered channel
	c.Insert("b", 2) // sink full: must be dropped, not block

	<-events // drain the first event
	select {
	case ev := <-events:
		t.Errorf("expected second event to have been dropped, got %+v", ev)
	default:
	}
}

func TestEvents_NoSinkConfigured(t *testing.T) {
	c, err := New(Config{Capacity: 10, Clock: newFakeClock()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Must not panic when no sink is wired.
	c.Insert("k", "v")
	c.Remove("k")
	c.Clear()
}

func TestChanEventSink_NilChannel(t *testing.T) {
	sink := NewChannelEventSink(nil)
	if sink.TrySend(Event{Kind: EventInsert}) {
		t.Error("expected TrySend on a nil channel to report false")
	}
}

func TestEvents_EvictionEmitsRemove(t *testing.T) {
	events := make(chan Event, 16)
	c, err := New(Config{
		Capacity: 1,
		Clock:    newFakeClock(),
		Events:   NewChannelEventSink(events),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Insert("a", 1)
	<-events // Insert for a

	c.Insert("b", 2) // evicts a
	evictEv := <-events
	if evictEv.Kind != EventRemove || evictEv.Key != "a" {
		t.Errorf("expected Remove event for evicted key 'a', got %+v", evictEv)
	}
}
