package main

import (
	"log"
	"os"
	"path/filepath"
)

// configureRuntimeLogger sends log output to ~/.local/state/memory/memory.log
// so it never lands on the game screen. With toStderr set, logs go to
// stderr instead.
func configureRuntimeLogger(toStderr bool) func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if toStderr {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "memory")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logPath := filepath.Join(logDir, "memory.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
