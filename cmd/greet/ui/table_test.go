package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_View(t *testing.T) {
	tbl := NewTable("Timeline", "At", "Phase")
	tbl.AddRow("0s", "intro")
	tbl.AddRow("21s", "balloons", "dropped")

	view := stripANSI(tbl.View(NewStyles(LightTheme())))
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	require.GreaterOrEqual(t, len(lines), 5, "title, blank, header, rule, rows")
	assert.Equal(t, "Timeline", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[2], "At")
	assert.Contains(t, lines[2], "Phase")
	assert.Contains(t, view, "balloons")
	assert.NotContains(t, view, "dropped", "cells past the headers are clipped")
	assert.Len(t, tbl.Rows[1], 2)
}

func TestTable_Empty(t *testing.T) {
	assert.Empty(t, NewTable("x", "a").View(NewStyles(LightTheme())))
}
