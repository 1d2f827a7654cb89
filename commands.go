// /home/krylon/go/src/github.com/blicero/tabpod/commands.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 16:20:31 krylon>

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/db"
	"github.com/blicero/tabpod/export"
	"github.com/blicero/tabpod/library"
	"github.com/blicero/tabpod/objects"
	"github.com/blicero/tabpod/player"
	"github.com/blicero/tabpod/prefs"
	"github.com/blicero/tabpod/scanner"
	"github.com/blicero/tabpod/sorttab"
	"github.com/blicero/tabpod/spl"
	flag "github.com/spf13/pflag"
)

// app bundles what the commands need.
type app struct {
	opt   *options
	log   *log.Logger
	prefs *prefs.Prefs
	pool  *db.Pool
	conn  *db.Database
	lib   *library.Library
}

func (a *app) run() error {
	var err error

	if len(a.opt.scan) > 0 {
		if err = a.scan(a.opt.scan...); err != nil {
			return err
		}
	}

	if a.opt.imp != "" {
		if err = a.importPlaylist(); err != nil {
			return err
		}
	}

	if a.opt.edit != 0 {
		if err = a.editTrack(); err != nil {
			return err
		}
	}

	if a.opt.splName != "" {
		if err = a.editSPL(); err != nil {
			return err
		}
	}

	if a.opt.export != "" {
		if err = a.exportPlaylist(); err != nil {
			return err
		}
	}

	if a.opt.playlists {
		a.listPlaylists()
	}

	if a.browsing() {
		if err = a.browse(); err != nil {
			return err
		}
	}

	if a.opt.watch && len(a.opt.scan) > 0 {
		if err = a.watch(); err != nil {
			return err
		}
	}

	return nil
} // func (a *app) run() error

// scan walks the given folders on a connection of its own, while the new
// Tracks are added to the Library here.
func (a *app) scan(dirs ...string) error {
	var (
		err  error
		w    *scanner.Walker
		cnt  int
		conn = a.pool.Get()
		errc = make(chan error, 1)
	)

	defer a.pool.Put(conn)

	if w, err = scanner.New(conn); err != nil {
		return err
	}

	go func() {
		errc <- w.Scan(dirs...)
	}()

	for t := range w.Tracks {
		if err = a.lib.AddTrack(t); err != nil {
			a.log.Printf("[ERROR] Cannot add %s to library: %s\n",
				t.Path,
				err.Error())
			continue
		}
		cnt++
	}

	fmt.Printf("Found %d new Tracks\n", cnt)

	return <-errc
} // func (a *app) scan(dirs ...string) error

func (a *app) watch() error {
	var (
		err  error
		w    *scanner.Watcher
		sigq = make(chan os.Signal, 1)
	)

	if w, err = scanner.NewWatcher(); err != nil {
		return err
	}

	for _, dir := range a.opt.scan {
		if err = w.Add(dir); err != nil {
			w.Close() // nolint: errcheck
			return err
		}
	}

	go w.Run()

	signal.Notify(sigq, os.Interrupt, syscall.SIGTERM)
	fmt.Println("Watching for new files, press Ctrl-C to stop")

	for {
		select {
		case path, ok := <-w.Paths:
			if !ok {
				return nil
			} else if a.lib.TrackByPath(path) != nil {
				continue
			}

			if err = a.scan(filepath.Dir(path)); err != nil {
				a.log.Printf("[ERROR] Cannot scan %s: %s\n",
					filepath.Dir(path),
					err.Error())
			}
		case sig := <-sigq:
			a.log.Printf("[INFO] Caught signal %s, quitting\n", sig)
			return w.Close()
		}
	}
} // func (a *app) watch() error

func (a *app) importPlaylist() error {
	var (
		err     error
		pl      *objects.Playlist
		missing []string
	)

	if pl, missing, err = export.ReadPlaylistFile(a.opt.imp, a.lib.TrackByPath); err != nil {
		return err
	} else if err = a.lib.PlaylistAdd(pl, -1); err != nil {
		return err
	}

	fmt.Printf("Created playlist %q with %d Tracks\n", pl.Name, len(pl.Members))

	for _, m := range missing {
		fmt.Printf("\tnot in library: %s\n", m)
	}

	return nil
} // func (a *app) importPlaylist() error

func (a *app) exportPlaylist() error {
	var pl = a.lib.PlaylistByName(a.opt.export)

	if pl == nil {
		return fmt.Errorf("No playlist named %q", a.opt.export)
	} else if a.opt.out == "-" {
		return export.WritePlaylist(pl, os.Stdout)
	}

	return export.WritePlaylistFile(pl, a.opt.out)
} // func (a *app) exportPlaylist() error

func (a *app) editTrack() error {
	var (
		t       = a.lib.TrackByID(a.opt.edit)
		changed = flag.CommandLine.Changed
	)

	if t == nil {
		return fmt.Errorf("No Track with ID %d", a.opt.edit)
	}

	if changed("title") {
		t.Title = a.opt.title
	}
	if changed("artist") {
		t.Artist = a.opt.artist
	}
	if changed("album") {
		t.Album = a.opt.album
	}
	if changed("genre") {
		t.Genre = a.opt.genre
	}
	if changed("year") {
		t.Year = a.opt.year
	}
	if changed("rating") {
		t.SetStarRating(a.opt.rating)
	}

	t.TimeModified = time.Now()

	if err := a.lib.TrackChanged(t); err != nil {
		return err
	} else if a.opt.writeTags || a.prefs.WriteTags {
		if err = scanner.WriteTags(t); err != nil {
			return err
		}
	}

	printTracks([]*objects.Track{t})
	return nil
} // func (a *app) editTrack() error

// editSPL creates the smart Playlist named by --spl, or modifies it if
// it exists already.
func (a *app) editSPL() error {
	var (
		err   error
		ed    *spl.Editor
		match objects.MatchOperator
		lt    objects.LimitType
		ls    objects.LimitSort
		pl    = a.lib.PlaylistByName(a.opt.splName)
	)

	if pl != nil && !pl.IsSPL {
		return fmt.Errorf("%q is not a smart playlist", pl.Name)
	} else if ed, err = spl.NewEditor(a.lib, pl, -1); err != nil {
		return err
	}

	ed.SetName(a.opt.splName)

	if len(a.opt.rules) > 0 {
		var rules = make([]*objects.SPLRule, len(a.opt.rules))

		for i, text := range a.opt.rules {
			if rules[i], err = spl.ParseRule(text); err != nil {
				ed.Cancel()
				return err
			}
		}

		ed.Playlist().Rules.Rules = rules
	}

	if match, err = spl.ParseMatch(a.opt.match); err != nil {
		ed.Cancel()
		return err
	}

	ed.SetMatch(match)
	ed.SetLiveUpdate(a.opt.live)
	ed.SetMatchCheckedOnly(a.opt.checkedOnly)

	if a.opt.limit > 0 {
		if lt, err = spl.ParseLimitType(a.opt.limitType); err != nil {
			ed.Cancel()
			return err
		} else if ls, err = spl.ParseLimitSort(a.opt.limitSort); err != nil {
			ed.Cancel()
			return err
		}

		ed.SetLimits(true)

		if err = ed.SetLimit(a.opt.limit, lt); err != nil {
			ed.Cancel()
			return err
		} else if err = ed.SetLimitSort(ls); err != nil {
			ed.Cancel()
			return err
		}
	} else {
		ed.SetLimits(false)
	}

	if err = ed.Commit(); err != nil {
		return err
	}

	pl = a.lib.PlaylistByName(a.opt.splName)
	fmt.Printf("Smart playlist %q has %d Tracks\n", pl.Name, len(pl.Members))

	return nil
} // func (a *app) editSPL() error

func (a *app) listPlaylists() {
	var (
		out   = tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		lists = append([]*objects.Playlist{a.lib.Master()}, a.lib.Playlists()...)
	)

	fmt.Fprintln(out, "ID\tName\tKind\tTracks\tSize") // nolint: errcheck

	for _, pl := range lists {
		var (
			kind = "playlist"
			size int64
		)

		switch {
		case pl.Master:
			kind = "library"
		case pl.IsSPL:
			kind = "smart"
		}

		for _, t := range pl.Members {
			size += t.Size
		}

		fmt.Fprintf(out, "%d\t%s\t%s\t%d\t%s\n", // nolint: errcheck
			pl.ID,
			pl.Name,
			kind,
			len(pl.Members),
			krylib.FmtBytes(size))
	}

	out.Flush() // nolint: errcheck
} // func (a *app) listPlaylists()

func (a *app) browsing() bool {
	var o = a.opt

	return o.playlist != "" ||
		o.play ||
		o.enqueue ||
		len(o.tabs) > 0 ||
		len(o.selects) > 0 ||
		len(o.spRating) > 0 ||
		o.spPlayed != "" ||
		o.spModified != "" ||
		o.spAdded != "" ||
		flag.CommandLine.Changed("sp-playcount-low") ||
		flag.CommandLine.Changed("sp-playcount-high")
} // func (a *app) browsing() bool

// configureTabs applies the sort tab options to the preferences.
func (a *app) configureTabs() error {
	var (
		o  = a.opt
		p  = a.prefs
		sp = -1
	)

	if len(o.tabs) > 0 {
		if len(o.tabs) > prefs.MaxSortTabs {
			return fmt.Errorf("At most %d sort tabs are supported", prefs.MaxSortTabs)
		}

		p.SortTabNum = len(o.tabs)

		for i, name := range o.tabs {
			var cat, err = sorttab.ParseCategory(name)

			if err != nil {
				return err
			}

			p.Tab(i).Category = cat.Name()
		}
	}

	if o.sortOrder != "" {
		p.StSort = o.sortOrder
	}

	for i := 0; i < p.SortTabNum; i++ {
		if p.Tab(i).Category == sorttab.CatSpecial.Name() {
			sp = i
			break
		}
	}

	if sp < 0 {
		return nil
	}

	var tp = p.Tab(sp)

	tp.SpOr = o.spOr
	tp.SpAutodisplay = tp.SpAutodisplay || o.spAutoGo

	if len(o.spRating) > 0 {
		tp.SpRatingCond = true
		tp.SpRatingState = 0
		for _, stars := range o.spRating {
			if stars < 0 || stars > objects.RatingMax {
				return fmt.Errorf("Invalid rating %d", stars)
			}
			tp.SpRatingState |= 1 << uint(stars)
		}
	}

	if flag.CommandLine.Changed("sp-playcount-low") || flag.CommandLine.Changed("sp-playcount-high") {
		tp.SpPlaycountCond = true
		tp.SpPlaycountLow = o.spPlayLow
		tp.SpPlaycountHigh = o.spPlayHigh
	}

	if o.spPlayed != "" {
		tp.SpPlayedCond, tp.SpPlayedState = true, o.spPlayed
	}
	if o.spModified != "" {
		tp.SpModifiedCond, tp.SpModifiedState = true, o.spModified
	}
	if o.spAdded != "" {
		tp.SpAddedCond, tp.SpAddedState = true, o.spAdded
	}

	return nil
} // func (a *app) configureTabs() error

// parseSelections turns the --select options into a list of entry names
// per sort tab.
func (a *app) parseSelections() (map[int][]string, error) {
	var sel = make(map[int][]string, len(a.opt.selects))

	for _, s := range a.opt.selects {
		var parts = strings.SplitN(s, "=", 2)

		if len(parts) != 2 {
			return nil, fmt.Errorf("Invalid selection %q, expected INST=NAME", s)
		}

		var inst, err = strconv.Atoi(strings.TrimSpace(parts[0]))

		if err != nil || inst < 0 || inst >= a.prefs.SortTabNum {
			return nil, fmt.Errorf("Invalid sort tab %q", parts[0])
		}

		sel[inst] = append(sel[inst], parts[1])
	}

	return sel, nil
} // func (a *app) parseSelections() (map[int][]string, error)

func (a *app) browse() error {
	var (
		err  error
		c    *sorttab.Cascade
		sel  map[int][]string
		src  = a.lib.Master()
		disp = new(sorttab.TrackList)
	)

	if a.opt.playlist != "" {
		if src = a.lib.PlaylistByName(a.opt.playlist); src == nil {
			return fmt.Errorf("No playlist named %q", a.opt.playlist)
		}
	}

	if err = a.configureTabs(); err != nil {
		return err
	} else if sel, err = a.parseSelections(); err != nil {
		return err
	} else if c, err = sorttab.New(a.prefs, disp); err != nil {
		return err
	}

	a.lib.Follow(c)
	c.SetSource(src)

	for inst := 0; inst < c.Count(); inst++ {
		if c.Category(inst) == sorttab.CatSpecial {
			if !a.prefs.Tab(inst).SpAutodisplay {
				c.SpGo(inst)
			}
		} else if names, ok := sel[inst]; ok {
			c.Select(inst, names...)
		}
	}

	for inst := 0; inst < c.Count(); inst++ {
		printTab(c, inst)
	}

	fmt.Printf("\n%d Tracks\n", len(disp.Tracks))
	printTracks(disp.Tracks)

	if a.opt.play || a.opt.enqueue {
		if err = a.sendToPlayer(disp.Tracks); err != nil {
			return err
		}
	}

	if a.opt.savePrefs {
		if err = a.prefs.Save(common.PrefsPath); err != nil {
			return err
		}
	}

	return nil
} // func (a *app) browse() error

func printTab(c *sorttab.Cascade, inst int) {
	var cat = c.Category(inst)

	fmt.Printf("Sort tab %d (%s):", inst, cat.Name())

	if cat == sorttab.CatSpecial {
		fmt.Printf(" %d Tracks selected\n", len(c.SelectedTracks(inst)))
		return
	}

	var selected = make(map[string]bool)
	for _, name := range c.Selected(inst) {
		selected[name] = true
	}

	fmt.Println()

	for _, e := range c.Entries(inst) {
		var mark = " "
		if selected[e.Name] {
			mark = "*"
		}

		fmt.Printf("  %s %-40s %5d\n", mark, e.Name, len(e.Members))
	}
} // func printTab(c *sorttab.Cascade, inst int)

func printTracks(tracks []*objects.Track) {
	var out = tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(out, "ID\tArtist\tAlbum\tTitle\tYear\tRating\tPlayed") // nolint: errcheck

	for _, t := range tracks {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%d\t%s\t%d\n", // nolint: errcheck
			t.ID,
			t.Artist,
			t.Album,
			t.DisplayTitle(),
			t.Year,
			strings.Repeat("*", t.StarRating()),
			t.PlayCount)
	}

	out.Flush() // nolint: errcheck
} // func printTracks(tracks []*objects.Track)

// sendToPlayer hands the displayed Tracks to the media player.
func (a *app) sendToPlayer(tracks []*objects.Track) error {
	var (
		err  error
		p    *player.Player
		mode = player.Enqueue
		name = a.prefs.Player
	)

	if a.opt.play {
		mode = player.Play
	}

	if a.opt.player != "" {
		name = a.opt.player
	}

	if p, err = player.Connect(name); err != nil {
		return err
	} else if err = p.Send(mode, tracks); err != nil {
		a.log.Printf("[ERROR] Cannot send %d Tracks to %s: %s\n",
			len(tracks),
			name,
			err.Error())
		return err
	}

	return nil
} // func (a *app) sendToPlayer(tracks []*objects.Track) error
