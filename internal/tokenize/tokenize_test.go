package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"  leading and   trailing  ", []string{"leading", "and", "trailing"}},
		{"", []string{}},
		{"   ", []string{}},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("hello"))
	assert.True(t, Valid("hello-world"))
	assert.False(t, Valid("bad\x12word"))
	assert.False(t, Valid("tab\tbad"))
}

func TestNewStopWords(t *testing.T) {
	sw, err := NewStopWords([]string{"и", "в", "на", ""})
	require.NoError(t, err)
	assert.Equal(t, 3, sw.Len())
	assert.True(t, sw.Contains("и"))
	assert.False(t, sw.Contains(""))
	assert.False(t, sw.Contains("кот"))
}

func TestNewStopWords_ControlCharRejected(t *testing.T) {
	_, err := NewStopWords([]string{"bad\x01word"})
	require.Error(t, err)
}

func TestNewStopWordsFromText(t *testing.T) {
	sw, err := NewStopWordsFromText("и в на")
	require.NoError(t, err)
	assert.Equal(t, 3, sw.Len())
}

func TestStopWords_NilReceiver(t *testing.T) {
	var sw *StopWords
	assert.False(t, sw.Contains("anything"))
	assert.Equal(t, 0, sw.Len())
}
