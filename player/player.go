// /home/krylon/go/src/github.com/blicero/tabpod/player/player.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 19:12:40 krylon>

// Package player hands Tracks to an external media player via the MPRIS
// interface on the DBus session bus.
package player

import (
	"errors"
	"fmt"
	"log"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/objects"
	"github.com/davecgh/go-spew/spew"
	"github.com/godbus/dbus/v5"
)

const (
	busPrefix    = "org.mpris.MediaPlayer2."
	objPath      = "/org/mpris/MediaPlayer2"
	methodPlay   = "org.mpris.MediaPlayer2.Player.Play"
	methodAdd    = "org.mpris.MediaPlayer2.TrackList.AddTrack"
	methodRemove = "org.mpris.MediaPlayer2.TrackList.RemoveTrack"
	propTracks   = "org.mpris.MediaPlayer2.TrackList.Tracks"
	noTrack      = dbus.ObjectPath("/org/mpris/MediaPlayer2/TrackList/NoTrack")
)

// DefaultName is the MPRIS name of the player used unless configured
// otherwise.
const DefaultName = "vlc"

// ErrNoTracks is returned when there is nothing to send to the player.
var ErrNoTracks = errors.New("no tracks to send to the player")

//go:generate stringer -type=Mode

// Mode determines what happens to the player's track list.
type Mode uint8

// Play replaces the player's track list and starts playback, Enqueue
// appends to it.
const (
	Play Mode = iota
	Enqueue
)

// Call is a single method call on the player object.
type Call struct {
	Method string
	Args   []any
}

// BuildCalls returns the method calls that hand the Tracks to a player
// whose track list currently holds the given entries.
//
// AddTrack inserts after a given entry, and the IDs of new entries are
// not known to the caller, so the Tracks are inserted in reverse order
// after a fixed anchor.
func BuildCalls(mode Mode, current []dbus.ObjectPath, tracks []*objects.Track) []Call {
	if len(tracks) == 0 {
		return nil
	}

	var (
		calls  = make([]Call, 0, len(current)+len(tracks)+1)
		anchor = noTrack
	)

	switch mode {
	case Play:
		for _, id := range current {
			calls = append(calls, Call{Method: methodRemove, Args: []any{id}})
		}
	case Enqueue:
		if len(current) > 0 {
			anchor = current[len(current)-1]
		}
	}

	for idx := len(tracks) - 1; idx >= 0; idx-- {
		var first = mode == Play && idx == 0

		calls = append(calls, Call{
			Method: methodAdd,
			Args:   []any{tracks[idx].PathURL(), anchor, first},
		})
	}

	if mode == Play {
		calls = append(calls, Call{Method: methodPlay})
	}

	return calls
} // func BuildCalls(mode Mode, current []dbus.ObjectPath, tracks []*objects.Track) []Call

// Player talks to one MPRIS media player.
type Player struct {
	log  *log.Logger
	name string
	obj  dbus.BusObject
}

// Connect returns a Player for the media player with the given MPRIS
// name, e.g. "vlc" or "audacious".
func Connect(name string) (*Player, error) {
	var (
		err error
		bus *dbus.Conn
		p   = &Player{name: name}
	)

	if name == "" {
		p.name = DefaultName
	}

	if p.log, err = common.GetLogger(logdomain.Player); err != nil {
		return nil, err
	} else if bus, err = dbus.SessionBus(); err != nil {
		p.log.Printf("[ERROR] Cannot connect to session bus: %s\n",
			err.Error())
		return nil, err
	}

	p.obj = bus.Object(busPrefix+p.name, objPath)

	return p, nil
} // func Connect(name string) (*Player, error)

// current returns the entries of the player's track list.
func (p *Player) current() ([]dbus.ObjectPath, error) {
	var (
		err   error
		val   dbus.Variant
		items []dbus.ObjectPath
		ok    bool
	)

	if val, err = p.obj.GetProperty(propTracks); err != nil {
		p.log.Printf("[ERROR] Cannot get TrackList from %s: %s\n",
			p.name,
			err.Error())
		return nil, err
	} else if items, ok = val.Value().([]dbus.ObjectPath); !ok {
		return nil, fmt.Errorf("Unexpected type of TrackList: %T",
			val.Value())
	}

	return items, nil
} // func (p *Player) current() ([]dbus.ObjectPath, error)

// Send hands the Tracks to the player.
func (p *Player) Send(mode Mode, tracks []*objects.Track) error {
	var (
		err   error
		cur   []dbus.ObjectPath
		calls []Call
	)

	if len(tracks) == 0 {
		return ErrNoTracks
	} else if cur, err = p.current(); err != nil {
		return err
	}

	calls = BuildCalls(mode, cur, tracks)

	p.log.Printf("[DEBUG] %s %d Tracks to %s\n",
		mode,
		len(tracks),
		p.name)

	for _, c := range calls {
		p.log.Printf("[TRACE] Calling %s\n%s\n",
			c.Method,
			spew.Sdump(c.Args))

		if res := p.obj.Call(c.Method, 0, c.Args...); res.Err != nil {
			p.log.Printf("[ERROR] DBus method call %s failed: %s\n",
				c.Method,
				res.Err.Error())
			return res.Err
		}
	}

	return nil
} // func (p *Player) Send(mode Mode, tracks []*objects.Track) error
