package criteria_test

import (
	"regexp"
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownCriterion(t *testing.T) {
	c, ok := criteria.Get("1.4.3")
	require.True(t, ok)
	assert.Equal(t, "Contrast (Minimum)", c.Name)
	assert.Equal(t, domain.LevelAA, c.Level)
	assert.Equal(t, domain.PrinciplePerceivable, c.Principle)
	assert.Equal(t, "2.0", c.Version)
}

func TestGet_UnknownReturnsFalse(t *testing.T) {
	_, ok := criteria.Get("9.9.9")
	assert.False(t, ok)
	assert.False(t, criteria.Exists("9.9.9"))
	assert.True(t, criteria.Exists("4.1.2"))
}

func TestCatalog_EntriesAreWellFormed(t *testing.T) {
	idPattern := regexp.MustCompile(`^[1-4]\.\d+\.\d+$`)
	for _, c := range criteria.All() {
		assert.Regexp(t, idPattern, c.ID)
		assert.NotEmpty(t, c.Name, c.ID)
		assert.True(t, c.Level.Valid(), "%s level %q", c.ID, c.Level)
		assert.Contains(t, domain.ValidPrinciples, c.Principle, c.ID)
		assert.Contains(t, []string{"2.0", "2.1", "2.2"}, c.Version, c.ID)
		assert.NotEmpty(t, c.Description, c.ID)
		assert.NotEmpty(t, c.TestProcedure, c.ID)
		assert.NotEmpty(t, c.Components, c.ID)
	}
}

func TestCatalog_PrincipleMatchesIDPrefix(t *testing.T) {
	prefix := map[domain.Principle]byte{
		domain.PrinciplePerceivable:    '1',
		domain.PrincipleOperable:       '2',
		domain.PrincipleUnderstandable: '3',
		domain.PrincipleRobust:         '4',
	}
	for _, c := range criteria.All() {
		assert.Equal(t, prefix[c.Principle], c.ID[0], "criterion %s filed under %s", c.ID, c.Principle)
	}
}

func TestByLevel(t *testing.T) {
	for _, c := range criteria.ByLevel(domain.LevelAAA) {
		assert.Equal(t, domain.LevelAAA, c.Level)
	}
	assert.NotEmpty(t, criteria.ByLevel(domain.LevelA))
	assert.Empty(t, criteria.ByLevel(domain.Level("B")))
}

func TestLevelAAOrBelow(t *testing.T) {
	got := criteria.LevelAAOrBelow()
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.NotEqual(t, domain.LevelAAA, c.Level, c.ID)
	}
	assert.Equal(t, len(criteria.ByLevel(domain.LevelA))+len(criteria.ByLevel(domain.LevelAA)), len(got))
}

func TestAtLevel_AAAIncludesEverything(t *testing.T) {
	assert.Len(t, criteria.AtLevel(domain.LevelAAA), criteria.Len())
}

func TestByPrinciple(t *testing.T) {
	robust := criteria.ByPrinciple(domain.PrincipleRobust)
	ids := make([]string, 0, len(robust))
	for _, c := range robust {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "4.1.2")
	assert.Contains(t, ids, "4.1.3")
}

func TestApplicableTo_IncludesAllSentinel(t *testing.T) {
	var ids []string
	for _, c := range criteria.ApplicableTo("Tabs") {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "4.1.2", "4.1.2 applies to all components")
	assert.Contains(t, ids, "2.1.1", "2.1.1 names Tabs explicitly")
	assert.NotContains(t, ids, "1.2.2", "captions do not apply to tabs")
}

func TestApplicableTo_UnknownComponentStillGetsSentinelCriteria(t *testing.T) {
	got := criteria.ApplicableTo("NoSuchComponent")
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.Contains(t, c.Components, domain.AllComponents)
	}
}

func TestByVersion(t *testing.T) {
	for _, c := range criteria.ByVersion("2.2") {
		assert.Equal(t, "2.2", c.Version)
	}
	assert.NotEmpty(t, criteria.ByVersion("2.2"))
	assert.Empty(t, criteria.ByVersion("3.0"))
	assert.Equal(t, []string{"2.0", "2.1", "2.2"}, criteria.Versions())
}

func TestFilterIDs(t *testing.T) {
	ids := []string{"1.4.6", "1.4.3", "9.9.9", "4.1.2"}
	assert.Equal(t, []string{"4.1.2"}, criteria.FilterIDs(ids, domain.LevelA))
	assert.Equal(t, []string{"1.4.3", "4.1.2"}, criteria.FilterIDs(ids, domain.LevelAA))
	assert.Equal(t, []string{"1.4.6", "1.4.3", "4.1.2"}, criteria.FilterIDs(ids, domain.LevelAAA))
}

func TestQueriesReturnCopies(t *testing.T) {
	c, ok := criteria.Get("2.1.1")
	require.True(t, ok)
	c.Components[0] = "Mutated"
	c.Name = "Mutated"

	again, _ := criteria.Get("2.1.1")
	assert.NotEqual(t, "Mutated", again.Components[0])
	assert.Equal(t, "Keyboard", again.Name)
}
