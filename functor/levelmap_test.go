package functor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldursgate-parity/ddrc/functor"
)

func TestResolveLevelMapValue_PicksHighestApplicableLevel(t *testing.T) {
	tables := map[string]functor.LevelMap{
		"RageDamage": {
			Class:  "Barbarian",
			Values: map[int]string{1: "2", 9: "3", 16: "4"},
		},
	}
	levelOf := func(class string) int {
		if class == "Barbarian" {
			return 10
		}
		return 0
	}

	resolved, err := functor.ResolveLevelMapValue("1d12+LevelMapValue(RageDamage)", tables, levelOf)
	require.NoError(t, err)
	assert.Equal(t, "1d12+3", resolved)
}

func TestResolveLevelMapValue_NoReferenceUnchanged(t *testing.T) {
	resolved, err := functor.ResolveLevelMapValue("2d6", nil, func(string) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, "2d6", resolved)
}

func TestResolveLevelMapValue_UnknownTableErrors(t *testing.T) {
	_, err := functor.ResolveLevelMapValue("LevelMapValue(Missing)", map[string]functor.LevelMap{}, func(string) int { return 1 })
	assert.Error(t, err)
}

func TestResolveLevelMapValue_BelowLowestLevelErrors(t *testing.T) {
	tables := map[string]functor.LevelMap{
		"RageDamage": {Class: "Barbarian", Values: map[int]string{3: "2"}},
	}
	_, err := functor.ResolveLevelMapValue("LevelMapValue(RageDamage)", tables, func(string) int { return 1 })
	assert.Error(t, err)
}
