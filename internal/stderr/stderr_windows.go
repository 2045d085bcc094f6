//go:build windows

// Package stderr leaves stderr alone on Windows, where the audio backend does
// not write to the console.
package stderr

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Start does nothing.
func Start(logrus.FieldLogger) error { return nil }

// WriteOriginal writes msg to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing.
func Stop() {}
