package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anthropics/searchengine/internal/tokenize"
)

func mustStopWords(t *testing.T, words ...string) *tokenize.StopWords {
	t.Helper()
	sw, err := tokenize.NewStopWords(words)
	require.NoError(t, err)
	return sw
}

func TestParse_Basic(t *testing.T) {
	stop := mustStopWords(t, "и", "в", "на")

	q, err := Parse("кот -белый и", false, stop)
	require.NoError(t, err)
	assert.Equal(t, []string{"кот"}, q.Plus)
	assert.Equal(t, []string{"белый"}, q.Minus)
}

func TestParse_Sorted(t *testing.T) {
	stop := mustStopWords(t)

	q, err := Parse("b a a c", true, stop)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, q.Plus)
}

func TestParse_BareDash(t *testing.T) {
	stop := mustStopWords(t)
	_, err := Parse("-", false, stop)
	require.Error(t, err)
}

func TestParse_DoubleDash(t *testing.T) {
	stop := mustStopWords(t)
	_, err := Parse("--кот", false, stop)
	require.Error(t, err)
}

func TestParse_ControlChar(t *testing.T) {
	stop := mustStopWords(t)
	_, err := Parse("bad\x01word", false, stop)
	require.Error(t, err)
}

func TestParse_StopMinusWordDiscarded(t *testing.T) {
	stop := mustStopWords(t, "в")
	q, err := Parse("-в кот", false, stop)
	require.NoError(t, err)
	assert.Equal(t, []string{"кот"}, q.Plus)
	assert.Empty(t, q.Minus)
}

func TestParse_OnlyStopWords(t *testing.T) {
	stop := mustStopWords(t, "и", "в")
	q, err := Parse("и в", false, stop)
	require.NoError(t, err)
	assert.Empty(t, q.Plus)
	assert.Empty(t, q.Minus)
}
