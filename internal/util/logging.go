// Package util provides common utilities including logging helpers,
// file system locations, calendar dates and quick-add input parsing.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// DiscardLogs silences the standard logger, e.g. while a full-screen UI owns
// the terminal and no log file was configured.
func DiscardLogs() {
	log.SetOutput(io.Discard)
}
