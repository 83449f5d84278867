// events.go: change notification emission (spec §4.4)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

// emit delivers ev to the configured EventSink, if any. Delivery is
// synchronous within the calling operation but non-blocking: a full or
// absent sink silently drops the event (spec: "Event delivery is lossy by
// design").
func (c *cacheEngine) emit(ev Event) {
	if c.config.Events == nil {
		return
	}
	c.config.Events.TrySend(ev)
}
