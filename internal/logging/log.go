/*
 * vareng - a variant chess engine
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 vareng contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a thin helper around "github.com/op/go-logging" so each
// package can get a pre-configured logger with a single call instead of
// repeating backend/formatter setup everywhere.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/tpeters/vareng/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the shared standard logger, configured with a stdout
// backend and the standard format, at the currently configured log level.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the shared search-trace logger, used inside the
// searcher's hot path for per-node tracing when enabled.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}

// GetTestLog returns the shared test logger, used by test-only tooling such
// as perft and feature-test harnesses.
func GetTestLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(leveled)
	return testLog
}
