package errors

import (
	"strings"
	"testing"
)

func TestValidateContainerID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"camel case", "keyboardVisualization", false},
		{"dashed", "spectrogram-container", false},
		{"single char", "k", false},

		{"empty", "", true},
		{"space", "keyboard viz", true},
		{"tab", "keyboard\tviz", true},
		{"control char", "kb\x01", true},
		{"too long", strings.Repeat("k", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContainerID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateContainerID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeMissingTarget) {
				t.Errorf("ValidateContainerID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeMissingTarget)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "out/spectrogram.svg", false},
		{"absolute file", "/tmp/keyboard.png", false},

		{"empty", "", true},
		{"null byte", "out\x00.svg", true},
		{"newline", "out\n.svg", true},
		{"directory", "out/", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
