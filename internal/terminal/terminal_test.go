package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fake(tty bool, width int, sizeErr error, columns string) Detector {
	return Detector{
		IsTerminal: func(int) bool { return tty },
		GetSize: func(int) (int, int, error) {
			return width, 24, sizeErr
		},
		Getenv: func(key string) string {
			if key == "COLUMNS" {
				return columns
			}
			return ""
		},
	}
}

func TestDetectorWidth(t *testing.T) {
	tests := []struct {
		name   string
		d      Detector
		want   int
		wantOK bool
	}{
		{name: "terminal size", d: fake(true, 132, nil, ""), want: 132, wantOK: true},
		{name: "not a terminal", d: fake(false, 132, nil, "100"), want: 0, wantOK: false},
		{name: "size error falls back to COLUMNS", d: fake(true, 0, errors.New("ioctl"), "90"), want: 90, wantOK: true},
		{name: "bad COLUMNS", d: fake(true, 0, errors.New("ioctl"), "wide"), want: 0, wantOK: false},
		{name: "zero size", d: fake(true, 0, nil, ""), want: 0, wantOK: false},
		{name: "empty detector", d: Detector{}, want: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := tt.d.Width(1)
			assert.Equal(t, tt.want, w)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestDetectorIsTTY(t *testing.T) {
	assert.True(t, fake(true, 0, nil, "").IsTTY(1))
	assert.False(t, fake(false, 0, nil, "").IsTTY(1))
	assert.False(t, Detector{}.IsTTY(1))
}
