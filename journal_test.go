package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal(t *testing.T) {
	j, err := OpenJournal(filepath.Join(t.TempDir(), "moves.db"))
	require.NoError(t, err)
	defer j.Close()

	at := time.Unix(1700000000, 0)
	require.NoError(t, j.Record(JournalEntry{GameID: "g1", Turn: 2, Mode: "plan", Direction: Left, RecordedAt: at}))
	require.NoError(t, j.Record(JournalEntry{GameID: "g1", Turn: 1, Mode: "plan", Direction: Up, RecordedAt: at}))
	require.NoError(t, j.Record(JournalEntry{GameID: "g2", Turn: 1, Mode: "compete", Direction: Down}))

	entries, err := j.Moves("g1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Turn)
	assert.Equal(t, Up, entries[0].Direction)
	assert.Equal(t, Left, entries[1].Direction)
	assert.Equal(t, at.Unix(), entries[1].RecordedAt.Unix())

	// Same game, turn and mode overwrites.
	require.NoError(t, j.Record(JournalEntry{GameID: "g1", Turn: 2, Mode: "plan", Direction: DirectionUnreachable}))
	entries, err = j.Moves("g1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, DirectionUnreachable, entries[1].Direction)

	require.NoError(t, j.Forget("g1"))
	entries, err = j.Moves("g1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = j.Moves("g2")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].RecordedAt.IsZero())
}

func TestNilJournal(t *testing.T) {
	var j *Journal
	assert.NoError(t, j.Record(JournalEntry{GameID: "g1"}))
	entries, err := j.Moves("g1")
	assert.NoError(t, err)
	assert.Nil(t, entries)
	assert.NoError(t, j.Forget("g1"))
	assert.NoError(t, j.Close())
}
