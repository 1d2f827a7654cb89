// /home/krylon/go/src/github.com/blicero/tabpod/player/00_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 19:24:51 krylon>

package player

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/tabpod/common"
	"github.com/blicero/tabpod/objects"
)

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/tabpod_player_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		fmt.Printf("Removing BaseDir %s\n",
			baseDir)
		_ = os.RemoveAll(baseDir)
	} else {
		fmt.Printf(">>> TEST DIRECTORY: %s\n", baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)

func makeTracks(n int) []*objects.Track {
	var tracks = make([]*objects.Track, n)

	for i := range tracks {
		tracks[i] = &objects.Track{
			ID:   int64(i + 1),
			Path: fmt.Sprintf("/data/music/track%02d.mp3", i+1),
		}
	}

	return tracks
} // func makeTracks(n int) []*objects.Track
