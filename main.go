// /home/krylon/go/src/github.com/blicero/tabpod/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 15:02:44 krylon>

package main

import (
	"fmt"
	"os"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/db"
	"github.com/blicero/tabpod/library"
	"github.com/blicero/tabpod/logdomain"
	"github.com/blicero/tabpod/prefs"
	flag "github.com/spf13/pflag"
)

type options struct {
	baseDir   string
	scan      []string
	watch     bool
	playlists bool
	playlist  string
	tabs      []string
	selects   []string
	sortOrder string
	savePrefs bool

	spOr        bool
	spRating    []int
	spPlayLow   int
	spPlayHigh  int
	spPlayed    string
	spModified  string
	spAdded     string
	spAutoGo    bool
	splName     string
	rules       []string
	match       string
	limit       int64
	limitType   string
	limitSort   string
	live        bool
	checkedOnly bool

	export string
	out    string
	imp    string

	play    bool
	enqueue bool
	player  string

	edit      int64
	title     string
	artist    string
	album     string
	genre     string
	year      int
	rating    int
	writeTags bool
}

func parseFlags() *options {
	var o = new(options)

	flag.StringVar(&o.baseDir, "basedir", common.BaseDir, "The directory to store the database, log and preferences in")
	flag.StringArrayVar(&o.scan, "scan", nil, "Scan a folder for audio files (may be given more than once)")
	flag.BoolVar(&o.watch, "watch", false, "Keep watching the scanned folders for new files")
	flag.BoolVar(&o.playlists, "playlists", false, "List all playlists")
	flag.StringVar(&o.playlist, "playlist", "", "The playlist to browse (default: the whole library)")
	flag.StringSliceVar(&o.tabs, "tab", nil, "The categories of the sort tabs, in order")
	flag.StringArrayVar(&o.selects, "select", nil, "Select an entry in a sort tab, as INST=NAME")
	flag.StringVar(&o.sortOrder, "sort", "", "Order of the sort tab entries (none, ascending, descending)")
	flag.BoolVar(&o.savePrefs, "save-prefs", false, "Store the sort tab settings as the new defaults")

	flag.BoolVar(&o.spOr, "sp-or", false, "Combine the special tab's conditions with OR instead of AND")
	flag.IntSliceVar(&o.spRating, "sp-rating", nil, "Star ratings the special tab lets through")
	flag.IntVar(&o.spPlayLow, "sp-playcount-low", 0, "Lower bound for the play count in the special tab")
	flag.IntVar(&o.spPlayHigh, "sp-playcount-high", -1, "Upper bound for the play count in the special tab (-1 is unbounded)")
	flag.StringVar(&o.spPlayed, "sp-played", "", "Interval of the last playback, e.g. \"> -1w\"")
	flag.StringVar(&o.spModified, "sp-modified", "", "Interval of the last modification")
	flag.StringVar(&o.spAdded, "sp-added", "", "Interval the Tracks were added in")
	flag.BoolVar(&o.spAutoGo, "sp-autodisplay", false, "Apply the special tab's conditions automatically")

	flag.StringVar(&o.splName, "spl", "", "Create or modify the smart playlist with the given name")
	flag.StringArrayVar(&o.rules, "rule", nil, "A rule of the smart playlist, e.g. \"rating > 3\"")
	flag.StringVar(&o.match, "match", "and", "How the rules are combined (and, or)")
	flag.Int64Var(&o.limit, "limit", 0, "Limit the smart playlist to this many units")
	flag.StringVar(&o.limitType, "limit-type", "songs", "The unit of the limit (minutes, hours, MB, GB, songs)")
	flag.StringVar(&o.limitSort, "limit-sort", "random", "Which Tracks to keep when the limit applies")
	flag.BoolVar(&o.live, "live", true, "Update the smart playlist when Tracks change")
	flag.BoolVar(&o.checkedOnly, "checked-only", false, "Only consider checked Tracks in the smart playlist")

	flag.StringVar(&o.export, "export", "", "Export the playlist with the given name as m3u")
	flag.StringVar(&o.out, "out", "-", "The file to export to")
	flag.StringVar(&o.imp, "import", "", "Create a playlist from an m3u file")

	flag.BoolVar(&o.play, "play", false, "Play the displayed Tracks in the media player")
	flag.BoolVar(&o.enqueue, "enqueue", false, "Append the displayed Tracks to the media player's track list")
	flag.StringVar(&o.player, "player", "", "MPRIS name of the media player, e.g. vlc or audacious")

	flag.Int64Var(&o.edit, "edit", 0, "Edit the Track with the given ID")
	flag.StringVar(&o.title, "title", "", "New title")
	flag.StringVar(&o.artist, "artist", "", "New artist")
	flag.StringVar(&o.album, "album", "", "New album")
	flag.StringVar(&o.genre, "genre", "", "New genre")
	flag.IntVar(&o.year, "year", 0, "New year")
	flag.IntVar(&o.rating, "rating", 0, "New rating in stars (0-5)")
	flag.BoolVar(&o.writeTags, "write-tags", false, "Write the changes to the file's tags")

	flag.Parse()

	return o
} // func parseFlags() *options

func main() {
	var (
		err  error
		opt  *options
		cli  *app
		pool *db.Pool
	)

	fmt.Printf("%s %s, built on %s starting up...\n",
		common.AppName,
		common.Version,
		common.BuildStamp.Format(common.TimestampFormat))

	opt = parseFlags()

	if opt.baseDir != common.BaseDir {
		if err = common.SetBaseDir(opt.baseDir); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot set base directory to %s: %s\n",
				opt.baseDir,
				err.Error())
			os.Exit(1)
		}
	} else if err = common.InitApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application environment: %s\n",
			err.Error())
		os.Exit(1)
	}

	cli = &app{opt: opt}

	if cli.log, err = common.GetLogger(logdomain.CLI); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create Logger: %s\n", err.Error())
		os.Exit(1)
	} else if cli.prefs, err = prefs.Load(common.PrefsPath); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load preferences: %s\n", err.Error())
		os.Exit(1)
	} else if pool, err = db.NewPool(common.DbPath, 2); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open database %s: %s\n",
			common.DbPath,
			err.Error())
		os.Exit(1)
	}

	defer pool.Close() // nolint: errcheck

	cli.pool = pool
	cli.conn = pool.Get()
	defer pool.Put(cli.conn)

	if cli.lib, err = library.Open(cli.conn); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load library: %s\n", err.Error())
		os.Exit(1)
	}

	if err = cli.run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
} // func main()
