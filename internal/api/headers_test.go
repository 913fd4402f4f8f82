package api

import "testing"

func TestParseContentDisposition(t *testing.T) {
	const fallback = "encrypted_outputs.zip"
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"quoted", `attachment; filename="result.zip"`, "result.zip"},
		{"unquoted", `attachment; filename=encrypted_outputs_fifo.zip`, "encrypted_outputs_fifo.zip"},
		{"extended", `attachment; filename*=UTF-8''r%C3%A9sultat.zip`, "résultat.zip"},
		{"missing", "", fallback},
		{"blank", "   ", fallback},
		{"no filename", "attachment", fallback},
		{"empty filename", `attachment; filename=""`, fallback},
		{"malformed", `attachment; filename="half.zip; size=3`, "half.zip"},
		{"uppercase key", `attachment; FILENAME="UP.zip"`, "UP.zip"},
		{"parent dir", `attachment; filename="../escaped.zip"`, "escaped.zip"},
		{"absolute", `attachment; filename="/etc/out.zip"`, "out.zip"},
		{"backslashes", `attachment; filename="..\\..\\win.zip"`, "win.zip"},
		{"dot dot only", `attachment; filename=".."`, fallback},
		{"trailing slash", `attachment; filename="dir/"`, "dir"},
		{"slash only", `attachment; filename="/"`, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseContentDisposition(tt.header, fallback); got != tt.want {
				t.Errorf("ParseContentDisposition(%q) = %q; want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.2345", 1.2345},
		{" 0.5000 ", 0.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"NaN", 0},
	}

	for _, tt := range tests {
		if got := ParseSeconds(tt.in); got != tt.want {
			t.Errorf("ParseSeconds(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
