// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// log configures application-wide logging.
//
// Library packages obtain a named logger once:
//
//	var log = cargolog.GetLogger("cargo/labor")
//
// and entry points opt in to output with EnableDefaultLogging. With no
// backend installed, go-logging's default (stderr, all levels) applies.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const defaultFormat = "%{color}%{time:15:04:05.000} %{level:.4s} %{module}%{color:reset} %{message}"

// GetLogger returns the named logger, creating it if necessary.
func GetLogger(name string) *logging.Logger {
	return logging.MustGetLogger(name)
}

// EnableDefaultLogging installs a formatted stderr backend filtered to
// the given level for all modules.
func EnableDefaultLogging(level logging.Level) {
	EnableLogging(os.Stderr, level)
}

// EnableLogging installs a formatted backend writing to w, filtered to
// the given level for all modules.
func EnableLogging(w io.Writer, level logging.Level) {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(defaultFormat),
	)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
