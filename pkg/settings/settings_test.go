package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliParams(t *testing.T) {
	want := &Run{
		Input: InputSettings{
			FromStdin: true,
			Format:    "auto",
		},
		ExitOnError: true,
	}
	assert.Equal(t, want, NewCliParams())
}

func TestCliBinaryName(t *testing.T) {
	assert.Equal(t, "tabula", CliBinaryName)
}
