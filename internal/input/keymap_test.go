package input

import "testing"

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want uint16
		ok   bool
	}{
		{"default potion key", "r", 0x52, true},
		{"lock hotkey", "home", 0x24, true},
		{"toggle hotkey", "insert", 0x2D, true},
		{"close hotkey", "end", 0x23, true},
		{"digit", "5", 0x35, true},
		{"function key", "f1", 0x70, true},
		{"two digit function key", "f12", 0x7B, true},
		{"case insensitive", "HOME", 0x24, true},
		{"whitespace tolerated", " r ", 0x52, true},
		{"unknown name", "hyperkey", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCode(tt.key)
			if ok != tt.ok {
				t.Fatalf("KeyCode(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("KeyCode(%q) = 0x%X, want 0x%X", tt.key, got, tt.want)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	if err := r.Press("r"); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if err := r.Press("r"); err != nil {
		t.Fatalf("Press failed: %v", err)
	}
	if len(r.Presses) != 2 || r.Presses[0] != "r" {
		t.Errorf("recorded presses = %v, want [r r]", r.Presses)
	}
}
