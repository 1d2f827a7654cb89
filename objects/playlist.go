// /home/krylon/go/src/github.com/blicero/tabpod/objects/playlist.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 19:50:12 krylon>

package objects

// Playlist is an ordered list of Tracks. A smart Playlist (IsSPL) computes
// its Members from its Rules, a regular Playlist has them assigned
// explicitly. The Master Playlist contains all Tracks of the library.
type Playlist struct {
	ID      int64
	UUID    string
	Name    string
	Master  bool
	IsSPL   bool
	Members []*Track
	Pref    SPLPref
	Rules   SPLRules
}

// NewSPL returns a fresh smart Playlist with one empty rule, the way a
// new smart playlist starts out in the editor.
func NewSPL(name string) *Playlist {
	return &Playlist{
		Name:  name,
		IsSPL: true,
		Pref: SPLPref{
			CheckRules: true,
			LiveUpdate: true,
			LimitType:  LimitSongs,
			LimitSort:  LimitSortRandom,
			LimitValue: 25,
		},
		Rules: SPLRules{
			Match: MatchAnd,
			Rules: []*SPLRule{
				{
					Field:  FieldArtist,
					Action: ActionContains,
				},
			},
		},
	}
} // func NewSPL(name string) *Playlist

// Contains returns true if the Track is a Member of the Playlist.
func (p *Playlist) Contains(t *Track) bool {
	for _, m := range p.Members {
		if m == t {
			return true
		}
	}

	return false
} // func (p *Playlist) Contains(t *Track) bool

// Clone returns a copy of the Playlist with its own Rules and Member slice.
// The Tracks themselves are shared.
func (p *Playlist) Clone() *Playlist {
	var c = &Playlist{
		ID:      p.ID,
		UUID:    p.UUID,
		Name:    p.Name,
		Master:  p.Master,
		IsSPL:   p.IsSPL,
		Members: make([]*Track, len(p.Members)),
		Pref:    p.Pref,
		Rules:   p.Rules.Clone(),
	}

	copy(c.Members, p.Members)

	return c
} // func (p *Playlist) Clone() *Playlist
