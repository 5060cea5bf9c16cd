//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package tracelog is the module's internal logging facility: a single
// leveled, channel-backed writer that Pollard's rho uses to trace its
// retry behavior. It is not part of the public API.
package tracelog

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Logging levels, most to least severe.
const (
	ERROR = iota
	WARN
	INFO
	DBG
)

// msg is a single trace line queued for formatting and output.
type msg struct {
	ts    time.Time
	level int
	text  string
}

// Formatter renders a queued message for output.
type Formatter func(m msg) string

// SimpleFormat renders "<timestamp> [tag] text".
func SimpleFormat(m msg) string {
	return fmt.Sprintf("%s [%s] %s\n", m.ts.Format(time.Stamp), getTag(m.level), strings.Trim(m.text, "\n"))
}

// ColorFormat is SimpleFormat with an ANSI color escape keyed by level, for
// interactive terminals.
func ColorFormat(m msg) string {
	col := 34 // light blue for undefined levels
	switch m.level {
	case ERROR:
		col = 31
	case WARN:
		col = 33
	case INFO:
		col = 37
	case DBG:
		col = 90
	}
	txt := strings.Trim(SimpleFormat(m), "\n")
	return fmt.Sprintf("\033[01;%dm%s\033[01;0m\n", col, txt)
}

type logger struct {
	msgChan chan msg
	out     *os.File
	level   int
	format  Formatter
}

var logInst *logger

func init() {
	logInst = &logger{
		msgChan: make(chan msg, 64),
		out:     os.Stderr,
		level:   WARN,
		format:  SimpleFormat,
	}
	go func() {
		for m := range logInst.msgChan {
			fmt.Fprint(logInst.out, logInst.format(m))
		}
	}()
}

// SetLevel adjusts the minimum level that gets written.
func SetLevel(lvl int) {
	logInst.level = lvl
}

// SetFormatter swaps the formatter used for subsequent messages; use
// ColorFormat for interactive terminals.
func SetFormatter(f Formatter) {
	logInst.format = f
}

// Printf writes a formatted trace line at the given level.
func Printf(level int, format string, v ...interface{}) {
	if level <= logInst.level {
		logInst.msgChan <- msg{ts: time.Now(), level: level, text: fmt.Sprintf(format, v...)}
	}
}

func getTag(level int) string {
	switch level {
	case ERROR:
		return "[E]"
	case WARN:
		return "[W]"
	case INFO:
		return "[I]"
	case DBG:
		return "[D]"
	}
	return "[?]"
}
