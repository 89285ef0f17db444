package render

import "testing"

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{"compact", Compact, Config{ReserveBytes: 1024}},
		{"pretty", Pretty, Config{Indent: "  ", Newline: "\n", ReserveBytes: 2048}},
		{"email", Email, Config{Indent: " ", Newline: "\n", ForceImportant: true, ReserveBytes: 2048}},
		{"optimized", Optimized, Config{ReserveBytes: 4096}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg != tt.want {
				t.Errorf("got %+v, want %+v", tt.cfg, tt.want)
			}
		})
	}
}

func TestDefaultIsCompact(t *testing.T) {
	if Default() != Compact {
		t.Errorf("Default() = %+v, want Compact", Default())
	}
}

func TestPrettyDetection(t *testing.T) {
	if Compact.pretty() {
		t.Error("Compact.pretty() = true, want false")
	}
	if !Pretty.pretty() {
		t.Error("Pretty.pretty() = false, want true")
	}
	if !Email.pretty() {
		t.Error("Email.pretty() = false, want true")
	}
}
