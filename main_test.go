package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if output := log.Writer(); output != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", output)
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	wd, _ := os.Getwd()
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(dir, logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSplitMedia(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a.wav", []string{"a.wav"}},
		{" a.wav , b.mp3,,c.flac ", []string{"a.wav", "b.mp3", "c.flac"}},
	}
	for _, tt := range tests {
		if got := splitMedia(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitMedia(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadTilesWithoutMedia(t *testing.T) {
	tiles := loadTiles(nil)
	if len(tiles) != len(tileTitles) {
		t.Fatalf("Expected %d tiles, got %d", len(tileTitles), len(tiles))
	}
	for i, tl := range tiles {
		if tl.Title != tileTitles[i] || tl.Player() != nil {
			t.Errorf("tile %d = %q with player %v", i, tl.Title, tl.Player())
		}
	}
}

func TestLoadTilesSkipsBrokenMedia(t *testing.T) {
	tiles := loadTiles([]string{filepath.Join(t.TempDir(), "missing.wav")})
	if tiles[0].Player() != nil {
		t.Error("Expected tile with unreadable media to stay empty")
	}
}
