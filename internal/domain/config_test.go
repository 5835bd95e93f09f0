package domain_test

import (
	"testing"

	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.LevelAA, cfg.Level)
	assert.Contains(t, cfg.Extensions, ".tsx")
	assert.Contains(t, cfg.Extensions, ".vue")
	assert.NoError(t, cfg.Validate())
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := domain.ProjectConfig{Level: domain.LevelAAA, Extensions: []string{".jsx"}}.WithDefaults()
	assert.Equal(t, domain.LevelAAA, cfg.Level)
	assert.Equal(t, []string{".jsx"}, cfg.Extensions)
}

func TestWithDefaults_FillsZeroValues(t *testing.T) {
	cfg := domain.ProjectConfig{MinScore: 70}.WithDefaults()
	assert.Equal(t, domain.LevelAA, cfg.Level)
	assert.Equal(t, 70, cfg.MinScore)
	assert.NotEmpty(t, cfg.Extensions)
}

func TestIsSkippedComponent(t *testing.T) {
	cfg := domain.ProjectConfig{SkipComponents: []string{"Table", "toast"}}
	assert.True(t, cfg.IsSkippedComponent("Table"))
	assert.True(t, cfg.IsSkippedComponent("Toast"))
	assert.False(t, cfg.IsSkippedComponent("Button"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		wantErr string
	}{
		{name: "empty is valid", cfg: domain.ProjectConfig{}},
		{name: "lowercase level", cfg: domain.ProjectConfig{Level: "aaa"}},
		{name: "unknown level", cfg: domain.ProjectConfig{Level: "AAAA"}, wantErr: "unknown level"},
		{name: "negative min score", cfg: domain.ProjectConfig{MinScore: -1}, wantErr: "min_score"},
		{name: "min score above 100", cfg: domain.ProjectConfig{MinScore: 101}, wantErr: "min_score"},
		{name: "extension without dot", cfg: domain.ProjectConfig{Extensions: []string{"tsx"}}, wantErr: "must start with a dot"},
		{name: "empty component type", cfg: domain.ProjectConfig{Components: map[string]string{"src/Fancy.tsx": ""}}, wantErr: "no component type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
