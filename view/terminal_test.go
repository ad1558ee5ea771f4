package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonewolf/tonewolf/dtmf"
)

func TestTerminal_PrintsPressThenRelease(t *testing.T) {
	var buf strings.Builder
	var term = NewTerminal(&buf)

	term.OnStateChanged(dtmf.State{Key: '2', KeyOK: true})
	term.OnStateChanged(dtmf.State{KeyOK: false})

	assert.Equal(t, "key pressed: 2\nkey released: 2\n", buf.String())
}

func TestTerminal_KeyChangeWithoutReleaseReprints(t *testing.T) {
	var buf strings.Builder
	var term = NewTerminal(&buf)

	term.OnStateChanged(dtmf.State{Key: '1', KeyOK: true})
	term.OnStateChanged(dtmf.State{Key: '2', KeyOK: true})

	assert.Equal(t, "key pressed: 1\nkey pressed: 2\n", buf.String())
}

func TestTerminal_ReleaseWithoutPriorPressIsIgnored(t *testing.T) {
	var buf strings.Builder
	var term = NewTerminal(&buf)

	term.OnStateChanged(dtmf.State{KeyOK: false})

	assert.Empty(t, buf.String())
}
