package watch

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestIsDocumentEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"yaml write", fsnotify.Event{Name: "profile.yaml", Op: fsnotify.Write}, true},
		{"yml create", fsnotify.Event{Name: "schedule.yml", Op: fsnotify.Create}, true},
		{"yaml remove", fsnotify.Event{Name: "project.yaml", Op: fsnotify.Remove}, true},
		{"uppercase extension", fsnotify.Event{Name: "profile.YAML", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "profile.yaml", Op: fsnotify.Chmod}, false},
		{"rename only", fsnotify.Event{Name: "profile.yaml", Op: fsnotify.Rename}, false},
		{"editor swap file", fsnotify.Event{Name: ".profile.yaml.swp", Op: fsnotify.Write}, false},
		{"unrelated file", fsnotify.Event{Name: "notes.txt", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDocumentEvent(tt.event); got != tt.want {
				t.Errorf("isDocumentEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
