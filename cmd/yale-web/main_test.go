package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	assert.Empty(t, splitOrigins(""))
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		splitOrigins(" https://a.example, ,https://b.example "),
	)
}
