package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnce(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		mode  Mode
		input string
		want  string
	}{
		{mode: ModeGreedy, input: `{"body":[4,4,4,3,4,2,4,1],"food":[3,4]}`, want: "1\n"},
		{mode: ModePlan, input: `{"body":[3,4,3,3,3,2,3,1],"food":[1,2],"barriers":[1,1,2,1,1,3,2,3]}`, want: "3\n"},
		{mode: ModePlan, input: `{"body":[1,4,1,3,1,2,1,1],"food":[1,7],"barriers":[1,6,2,6,3,6,4,6,5,6,6,6,7,6,8,6]}`, want: "-1\n"},
		{mode: ModeCompete, input: `{"n":5,"me":[3,3,3,2,3,1,4,1],"other":[2,4,1,4,1,3,1,2],"food_num":2,"foods":[3,4,5,3],"snake_num":1,"round":10}`, want: "0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runOnce(cfg, tt.mode, strings.NewReader(tt.input), &out))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunOnceErrors(t *testing.T) {
	cfg := DefaultConfig()
	var out bytes.Buffer
	assert.Error(t, runOnce(cfg, ModeGreedy, strings.NewReader(`{`), &out))
	assert.ErrorIs(t, runOnce(cfg, ModeCompete, strings.NewReader(`{"me":[1,1],"other":[2,2]}`), &out), ErrOpponentStride)
	assert.Error(t, runOnce(cfg, Mode(9), strings.NewReader(`{}`), &out))
	assert.Empty(t, out.String())
}

func TestPrintGrid(t *testing.T) {
	opponents, err := NewOpponents([]int{1, 5, 1, 4, 1, 3, 1, 2}, 4)
	require.NoError(t, err)
	req := &Request{
		Board:     NewBoard(5, Positions{{X: 5, Y: 1}}),
		Self:      Snake{Body: ParsePositions([]int{3, 3, 3, 2})},
		Opponents: opponents,
		Foods:     Positions{{X: 5, Y: 5}},
	}
	var out bytes.Buffer
	PrintGrid(&out, req)
	want := "A---F\n" +
		"a----\n" +
		"a-M--\n" +
		"a-m--\n" +
		"----#\n\n"
	assert.Equal(t, want, out.String())
}

func TestLoggerFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn")
	require.NoError(t, level.Info(l).Log("msg", "hidden"))
	require.NoError(t, level.Warn(l).Log("msg", "shown"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "caller=main_test.go:")

	prev := GlobalLogger()
	defer SetGlobalLogger(prev)
	SetGlobalLogger(l)
	assert.Equal(t, l, GlobalLogger())
}
