// /home/krylon/go/src/github.com/blicero/tabpod/library/listener.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-18 21:40:55 krylon>

package library

import (
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/sorttab"
)

//go:generate stringer -type=Event

// Event identifies a change to the Tracks of the Library.
type Event uint8

// These are the events a Listener is notified of.
const (
	EventAdded Event = iota
	EventRemoved
	EventChanged
)

// Listener is called after a Track has been added to, removed from or
// modified in the Library.
type Listener func(ev Event, t *objects.Track)

// AddListener registers a Listener. Listeners are called in the order
// they were added.
func (lib *Library) AddListener(l Listener) {
	lib.listeners = append(lib.listeners, l)
} // func (lib *Library) AddListener(l Listener)

func (lib *Library) notify(ev Event, t *objects.Track) {
	for _, l := range lib.listeners {
		l(ev, t)
	}
} // func (lib *Library) notify(ev Event, t *objects.Track)

// Follow keeps a Cascade in sync with the Library. If the Cascade
// displays a smart Playlist, its Tracks are reloaded, since the Playlist
// may have been recomputed.
func (lib *Library) Follow(c *sorttab.Cascade) {
	lib.AddListener(func(ev Event, t *objects.Track) {
		var src = c.Source()

		if src == nil {
			return
		} else if src.IsSPL {
			c.SetSource(src)
			return
		}

		switch ev {
		case EventAdded:
			if src == lib.master {
				c.AddTrack(t, true, true, 0)
			}
		case EventRemoved:
			c.RemoveTrack(t, 0)
		case EventChanged:
			if src.Contains(t) {
				c.TrackChanged(t, false, 0)
			}
		}
	})
} // func (lib *Library) Follow(c *sorttab.Cascade)
