package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-branchbound/branchbound/pkg/search"
	"github.com/go-branchbound/branchbound/pkg/search/logger"
)

func TestHistogramLoggerBucketsByStackDepth(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewHistogramLogger[int](nil, &buf)

	lg.Log(search.EventExpand, 0, nil)                                              // depth 0
	lg.Log(search.EventExpand, 1, frames(stubFrame{residual: 2, advanceCount: 1}))   // depth 1
	lg.Log(search.EventExpand, 2, frames(stubFrame{residual: 1, advanceCount: 2}, stubFrame{residual: 1})) // depth 2
	lg.Log(search.EventBacktrack, 3, frames(stubFrame{residual: 1, advanceCount: 2}))
	lg.Log(search.EventBacktrack, 4, nil)

	assert.Equal(t, int64(5), lg.Evts())
	assert.Equal(t, 2, lg.MaxStackDepth())

	expandHist := lg.ExpandHist()
	require.Len(t, expandHist, 3)
	assert.Equal(t, []int64{1, 1, 1}, expandHist)

	backtrackHist := lg.BacktrackHist()
	require.Len(t, backtrackHist, 3)
	assert.Equal(t, []int64{1, 1, 0}, backtrackHist)
}

func TestHistogramLoggerGettersReturnCopies(t *testing.T) {
	lg := logger.NewHistogramLogger[int](nil, nil)
	lg.Log(search.EventExpand, 0, nil)

	h1 := lg.ExpandHist()
	h1[0] = 99

	h2 := lg.ExpandHist()
	assert.NotEqual(t, h1[0], h2[0], "mutating a returned histogram must not affect the logger's state")
}

func TestHistogramLoggerAlwaysEmitsOnTerminate(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewHistogramLogger[int](search.NeverTrace, &buf)

	lg.Log(search.EventExpand, 0, nil)
	lg.Log(search.EventTerminate, 1, nil)

	lines := nonEmptyLines(buf.String())
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "TERMINATE", rec["event"])
	assert.Contains(t, rec, "expandHist")
	assert.Contains(t, rec, "terminateAt")
}

func TestHistogramLoggerTimeoutEmitsTimeoutEvent(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewHistogramLogger[int](search.NeverTrace, &buf)
	lg.SetIterTimeout(0)

	err := lg.Timeout(0, nil)
	assert.ErrorIs(t, err, search.ErrTimeout)

	lines := nonEmptyLines(buf.String())
	require.Len(t, lines, 1)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "TIMEOUT", rec["event"])
}

func TestHistogramLoggerIllegalEventPanics(t *testing.T) {
	lg := logger.NewHistogramLogger[int](nil, nil)
	assert.Panics(t, func() {
		lg.Log(search.Event(99), 0, nil)
	})
}
