package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/orbit/internal/analysis"
	"github.com/julianstephens/orbit/internal/backup"
	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/history"
	"github.com/julianstephens/orbit/internal/kv"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/storage"
)

type Context struct {
	History *history.Service
	Store   kv.Store
	// Analyzer is nil when no API key is configured.
	Analyzer analysis.Analyzer
	// Ctx is cancelled on interrupt.
	Ctx context.Context
}

// Context returns the command's cancellation context.
func (c *Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if c.Store.Path() == "" {
		return
	}
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Report tells the user when a change could only be kept in memory.
func (c *Context) Report(res storage.Result) {
	if res.Failed() {
		fmt.Fprintf(os.Stderr, "⚠️  Not saved, kept for this session only (%s)\n", res.Reason)
	}
}

// OpenStore opens the key-value backend for name inside dataDir.
func OpenStore(name, dataDir string) (kv.Store, error) {
	switch strings.ToLower(name) {
	case constants.BackendSQLite, "":
		return kv.OpenSQLiteStore(filepath.Join(dataDir, constants.SQLiteFileName))
	case constants.BackendJSON:
		return kv.OpenFileStore(filepath.Join(dataDir, constants.JSONFileName))
	case constants.BackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (json|sqlite|memory)", name)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Degrade prints the user-facing message for err and swallows kinds that
// should read as missing data rather than failures.
func Degrade(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.IsDegradable(err) {
		fmt.Println(apperrors.UserMessage(err))
		return nil
	}
	return err
}
