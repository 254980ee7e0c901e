package stringutil

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Single word", "monday", "Monday"},
		{"Already titled", "Friday", "Friday"},
		{"Two words", "campus security", "Campus Security"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Title(tt.input)
			if got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleFromSnake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Two words", "campus_security", "Campus Security"},
		{"Single word", "ambulance", "Ambulance"},
		{"Three words", "anti_ragging_helpline", "Anti Ragging Helpline"},
		{"Empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleFromSnake(tt.input)
			if got != tt.want {
				t.Errorf("TitleFromSnake(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
