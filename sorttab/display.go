// /home/krylon/go/src/github.com/blicero/tabpod/sorttab/display.go
// -*- mode: go; coding: utf-8; -*-
// Created on 11. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 18:22:07 krylon>

package sorttab

import "github.com/blicero/tabpod/objects"

// Display receives the Tracks that pass the last sort tab.
type Display interface {
	Clear()
	Add(t *objects.Track)
	Remove(t *objects.Track)
	Changed(t *objects.Track)
}

// TrackList is a Display that simply collects the Tracks it receives.
type TrackList struct {
	Tracks  []*objects.Track
	Changes int
}

// Clear removes all Tracks from the list.
func (l *TrackList) Clear() {
	l.Tracks = nil
} // func (l *TrackList) Clear()

// Add appends a Track to the list.
func (l *TrackList) Add(t *objects.Track) {
	l.Tracks = append(l.Tracks, t)
} // func (l *TrackList) Add(t *objects.Track)

// Remove removes a Track from the list.
func (l *TrackList) Remove(t *objects.Track) {
	removeTrack(&l.Tracks, t)
} // func (l *TrackList) Remove(t *objects.Track)

// Changed counts the changes of displayed Tracks.
func (l *TrackList) Changed(t *objects.Track) {
	if containsTrack(l.Tracks, t) {
		l.Changes++
	}
} // func (l *TrackList) Changed(t *objects.Track)
