package logging

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation bounds file outputs. A zero MaxSizeMB falls back to lumberjack's
// 100 MB; zero MaxBackups or MaxAgeDays keeps every rotated file.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// newFileWriter appends to path and rotates it to
// <name>-<timestamp><ext> once a write would cross MaxSizeMB. Old rotations
// are pruned in the background after each rotation.
func newFileWriter(path string, r Rotation) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
	}
}
