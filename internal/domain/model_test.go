package domain_test

import (
	"errors"
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, in := range []string{"a", "AA", " aaa "} {
		l, err := domain.ParseLevel(in)
		require.NoError(t, err, in)
		assert.True(t, l.Valid())
	}

	_, err := domain.ParseLevel("B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
}

func TestLevel_Includes(t *testing.T) {
	assert.True(t, domain.LevelAAA.Includes(domain.LevelA))
	assert.True(t, domain.LevelAAA.Includes(domain.LevelAAA))
	assert.True(t, domain.LevelAA.Includes(domain.LevelA))
	assert.True(t, domain.LevelAA.Includes(domain.LevelAA))
	assert.False(t, domain.LevelAA.Includes(domain.LevelAAA))
	assert.True(t, domain.LevelA.Includes(domain.LevelA))
	assert.False(t, domain.LevelA.Includes(domain.LevelAA))
	assert.False(t, domain.LevelAA.Includes(domain.Level("")))
}

func TestSeverity_Deduction(t *testing.T) {
	assert.Equal(t, 25, domain.SeverityCritical.Deduction())
	assert.Equal(t, 15, domain.SeveritySerious.Deduction())
	assert.Equal(t, 5, domain.SeverityModerate.Deduction())
	assert.Equal(t, 2, domain.SeverityMinor.Deduction())
	assert.Equal(t, 0, domain.Severity("bogus").Deduction())
}

func TestSeverity_Blocking(t *testing.T) {
	assert.True(t, domain.SeverityCritical.Blocking())
	assert.True(t, domain.SeveritySerious.Blocking())
	assert.False(t, domain.SeverityModerate.Blocking())
	assert.False(t, domain.SeverityMinor.Blocking())
}

func TestCriterion_AppliesTo(t *testing.T) {
	all := domain.Criterion{Components: []string{domain.AllComponents}}
	assert.True(t, all.AppliesTo("Anything"))

	scoped := domain.Criterion{Components: []string{"Button", "Link"}}
	assert.True(t, scoped.AppliesTo("Link"))
	assert.False(t, scoped.AppliesTo("Tabs"))
}

func TestGradeFor(t *testing.T) {
	assert.Equal(t, "A+", domain.GradeFor(95))
	assert.Equal(t, "A", domain.GradeFor(80))
	assert.Equal(t, "B", domain.GradeFor(75))
	assert.Equal(t, "C", domain.GradeFor(60))
	assert.Equal(t, "D", domain.GradeFor(50))
	assert.Equal(t, "F", domain.GradeFor(10))
}

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, "brightgreen", domain.BadgeColor(100))
	assert.Equal(t, "critical", domain.BadgeColor(0))
}

func TestReport_Findings(t *testing.T) {
	r := domain.Report{
		Issues:   []domain.Issue{{ID: "a"}},
		Warnings: []domain.Issue{{ID: "b"}, {ID: "c"}},
	}
	ids := []string{}
	for _, f := range r.Findings() {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
