// /home/krylon/go/src/github.com/blicero/tabpod/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-17 19:12:40 krylon>

// Package common provides constants, variables and functions used
// throughout the application.
package common

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/tabpod/logdomain"
	"github.com/hashicorp/logutils"
	uuid "github.com/odeke-em/go-uuid"
)

// AppName is the name under which the application identifies itself.
// Version is the version number.
// Debug, if true, causes the application to log additional messages and perform
// additional sanity checks.
// TimestampFormat is the default format for timestamp used throughout the
// application.
const (
	AppName                  = "Tabpod"
	Version                  = "0.1.0"
	Debug                    = false
	TimestampFormatMinute    = "2006-01-02 15:04"
	TimestampFormat          = "2006-01-02 15:04:05"
	TimestampFormatSubSecond = "2006-01-02 15:04:05.0000 MST"
	TimestampFormatDate      = "2006-01-02"
	TimestampFormatTime      = "15:04:05"
)

// BuildStamp is the time the binary was built. It is only used for
// the startup banner.
var BuildStamp = time.Now()

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// PackageLevels defines minimum log levels per package.
var PackageLevels = make(map[logdomain.ID]logutils.LogLevel, len(LogLevels))

func init() {
	for _, id := range logdomain.AllDomains() {
		PackageLevels[id] = MinLogLevel
	}
} // func init()

var tildeRe = regexp.MustCompile(`^~`)

// MinLogLevel is the minimum level a log message must
// have to be written out to the log.
// This value is configurable to reduce log verbosity
// in regular use.
var MinLogLevel logutils.LogLevel = "DEBUG"

// BaseDir is the folder where all application-specific files are stored.
// It defaults to $HOME/.tabpod.d
var BaseDir = filepath.Join(
	krylib.GetHomeDirectory(),
	fmt.Sprintf(".%s.d", strings.ToLower(AppName)))

// LogPath is the filename of the log file.
var LogPath = filepath.Join(BaseDir, fmt.Sprintf("%s.log", strings.ToLower(AppName)))

// DbPath is the filename of the database.
var DbPath = filepath.Join(BaseDir, fmt.Sprintf("%s.db", strings.ToLower(AppName)))

// PrefsPath is the filename of the preferences file.
var PrefsPath = filepath.Join(BaseDir, fmt.Sprintf("%s.toml", strings.ToLower(AppName)))

func setPaths() {
	var base = strings.ToLower(AppName)

	LogPath = filepath.Join(BaseDir, base+".log")
	DbPath = filepath.Join(BaseDir, base+".db")
	PrefsPath = filepath.Join(BaseDir, base+".toml")
} // func setPaths()

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir folder.
func InitApp() error {
	var err error

	if err = os.MkdirAll(BaseDir, 0700); err != nil && !os.IsExist(err) {
		return fmt.Errorf("Error creating BaseDir %s: %s", BaseDir, err.Error())
	}

	setPaths()

	return nil
} // func InitApp() error

// SetBaseDir sets the application's base directory. This should only be
// done during initialization.
// Once the log file and the database are opened, this
// is useless at best and opens a world of confusion at worst, so this function
// should only be called at the very beginning of the program.
func SetBaseDir(path string) error {
	if tildeRe.MatchString(path) {
		path = tildeRe.ReplaceAllString(path, krylib.GetHomeDirectory())
	}

	BaseDir = path
	setPaths()

	var (
		err error
		msg string
	)

	if err = InitApp(); err != nil {
		msg = fmt.Sprintf("Error initializing application environment: %s\n",
			err.Error())
		fmt.Println(msg)
		return errors.New(msg)
	}

	return nil
} // func SetBaseDir(path string)

// GetLogger tries to create a named logger instance and return it.
// If the directory to hold the log file does not exist, try to create it.
func GetLogger(domain logdomain.ID) (*log.Logger, error) { // nolint: interfacer
	var (
		err     error
		logfile *os.File
		logName = fmt.Sprintf("%s.%s ",
			AppName,
			domain.String())
	)

	if err = InitApp(); err != nil {
		return nil, fmt.Errorf("Error initializing application environment: %s", err.Error())
	}

	if logfile, err = os.OpenFile(LogPath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0600); err != nil {
		msg := fmt.Sprintf("Error opening log file: %s\n", err.Error())
		fmt.Println(msg)
		return nil, errors.New(msg)
	}

	var (
		writer io.Writer
	)

	if Debug {
		writer = io.MultiWriter(os.Stdout, logfile)
	} else {
		writer = io.MultiWriter(logfile)
	}

	var lvl, ok = PackageLevels[domain]

	if !ok {
		lvl = MinLogLevel
	}

	filter := &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: lvl,
		Writer:   writer,
	}

	logger := log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile)
	return logger, nil
} // func GetLogger(name string) (*log.Logger, error)

// GetUUID returns a randomized UUID
func GetUUID() string {
	return uuid.NewRandom().String()
} // func GetUUID() string

// TimeEqual returns true if the two timestamps are less than one second apart.
func TimeEqual(t1, t2 time.Time) bool {
	var delta = t1.Sub(t2)

	if delta < 0 {
		delta = -delta
	}

	return delta < time.Second
} // func TimeEqual(t1, t2 time.Time) bool

// GetChecksum computes the SHA512 checksum of the given data.
func GetChecksum(data []byte) (string, error) {
	var err error
	var hash = sha512.New()

	if _, err = hash.Write(data); err != nil {
		fmt.Fprintf( // nolint: errcheck
			os.Stderr,
			"Error computing checksum: %s\n",
			err.Error(),
		)
		return "", err
	}

	var checkSumBinary = hash.Sum(nil)
	var checkSumText = fmt.Sprintf("%x", checkSumBinary)

	return checkSumText, nil
} // func getChecksum(data []byte) (string, error)
