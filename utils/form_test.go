package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDropBlank(t *testing.T) {
	values := map[string][]string{
		"temperature": {""},
		"humidity":    {" ", ""},
		"rainfall":    {"450"},
		"location":    {"", "Pune"},
	}

	DropBlank(values)

	assert.Equal(t, map[string][]string{
		"rainfall": {"450"},
		"location": {"", "Pune"},
	}, values)
}

func TestDropBlankNilMap(t *testing.T) {
	assert.NotPanics(t, func() { DropBlank(nil) })
}
