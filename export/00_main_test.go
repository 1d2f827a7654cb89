// /home/krylon/go/src/github.com/blicero/tabpod/export/00_main_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-19 13:30:41 krylon>

package export

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/blicero/tabpod/common"
)

var baseDir = time.Now().Format("/tmp/tabpod_export_test_20060102_150405")

func TestMain(m *testing.M) {
	var (
		err    error
		result int
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
