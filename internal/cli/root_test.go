package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/kv"
)

func TestOpenStore(t *testing.T) {
	tests := []struct {
		backend  string
		wantFile string
		wantErr  bool
	}{
		{backend: "sqlite", wantFile: "orbit.db"},
		{backend: "", wantFile: "orbit.db"},
		{backend: "JSON", wantFile: "orbit.json"},
		{backend: "memory"},
		{backend: "postgres", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			dir := t.TempDir()
			store, err := OpenStore(tt.backend, dir)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStore() error: %v", err)
			}
			defer store.Close()

			want := ""
			if tt.wantFile != "" {
				want = filepath.Join(dir, tt.wantFile)
			}
			if store.Path() != want {
				t.Errorf("Path() = %q, want %q", store.Path(), want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	tests := []struct {
		in, want string
	}{
		{in: "~", want: home},
		{in: "~/.config/orbit", want: filepath.Join(home, ".config/orbit")},
		{in: "/tmp/orbit", want: "/tmp/orbit"},
		{in: "~other/x", want: "~other/x"},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDegrade(t *testing.T) {
	if err := Degrade(nil); err != nil {
		t.Errorf("Degrade(nil) = %v", err)
	}
	if err := Degrade(fmt.Errorf("%w: timeout", apperrors.ErrAnalysisUnavailable)); err != nil {
		t.Errorf("analysis failure should degrade, got %v", err)
	}
	notFound := fmt.Errorf("%w: task", apperrors.ErrNotFound)
	if err := Degrade(notFound); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("not found should pass through, got %v", err)
	}
}

func TestPerformAutomaticBackupSkipsMemory(t *testing.T) {
	ctx := &Context{Store: kv.NewMemoryStore()}
	ctx.PerformAutomaticBackup()
	if ctx.Context() == nil {
		t.Error("Context() should default to background")
	}
}
