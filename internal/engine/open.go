package engine

import (
	"fmt"
	"os"

	"go.rowstore/internal/config"
	"go.rowstore/internal/logger"
	"go.rowstore/internal/storage"
)

func Open(path string, cfg *config.Config) (*Database, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logPath := cfg.LogPath(path)
	logFile, lErr := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if lErr != nil {
		return nil, fmt.Errorf("failed to open log file: %w", lErr)
	}

	log := logger.New(logFile, level)

	table, tErr := storage.OpenTable(path, log, storage.WithSyncOnClose(cfg.SyncOnClose))
	if tErr != nil {
		log.Errorf("Open %s: %v", path, tErr)
		logFile.Close()
		return nil, tErr
	}

	return &Database{
		table:   table,
		log:     log,
		logFile: logFile,
	}, nil
}
