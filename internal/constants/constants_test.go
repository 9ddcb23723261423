package constants

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandNames_KebabCase(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	for _, name := range []string{ActExplain, ActConverters, ActDBCheck, ActVersion, ActHelp} {
		assert.Regexp(t, pattern, name)
	}
}

func TestExitCodes_Distinct(t *testing.T) {
	codes := []int{ExitOK, ExitFailure, ExitUnknownCommand, ExitInvalidInput, ExitDatabase}
	seen := make(map[int]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "код %d повторяется", c)
		seen[c] = true
	}
	assert.Equal(t, 0, ExitOK)
}

func TestVersion_Default(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Equal(t, "v1", APIVersion)
}
