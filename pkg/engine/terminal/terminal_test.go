package terminal

import "testing"

func TestCenterIndent(t *testing.T) {
	tests := []struct {
		line, content, want int
	}{
		{80, 20, 30},
		{80, 79, 0},
		{10, 40, 0},
	}
	for _, tt := range tests {
		if got := CenterIndent(tt.line, tt.content); got != tt.want {
			t.Errorf("CenterIndent(%d, %d) = %d, want %d", tt.line, tt.content, got, tt.want)
		}
	}
}
