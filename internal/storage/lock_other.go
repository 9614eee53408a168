//go:build !unix

package storage

import "os"

func lockFile(f *os.File) error { return nil }

func unlockFile(f *os.File) {}

func syncFile(f *os.File) error {
	return f.Sync()
}
