package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/openkraft/a11ykraft/internal/application"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clickableDiv = `<div onClick={handleClick}>Save</div>`
	cleanButton  = `<button type="button" aria-label="Save" className="focus-visible:ring-2" onClick={save}>Save</button>`
)

func newValidationService() *application.ValidationService {
	return application.NewValidationService(nil)
}

func TestValidateComponent_ClickableDiv(t *testing.T) {
	r, err := newValidationService().ValidateComponent("Button", clickableDiv, "")
	require.NoError(t, err)

	assert.Equal(t, "Button", r.Component)
	assert.Equal(t, domain.LevelAA, r.Level)
	assert.False(t, r.Passed)
	assert.LessOrEqual(t, r.Score, 50)
}

func TestValidateComponent_CanonicalizesName(t *testing.T) {
	r, err := newValidationService().ValidateComponent("  button ", cleanButton, domain.LevelA)
	require.NoError(t, err)
	assert.Equal(t, "Button", r.Component)
	assert.True(t, r.Coverage.CatalogFound)
	assert.True(t, r.Passed)
}

func TestValidateComponent_UnknownTypeIsNotAnError(t *testing.T) {
	r, err := newValidationService().ValidateComponent("Carousel", "<div />", domain.LevelAA)
	require.NoError(t, err)
	assert.False(t, r.Coverage.CatalogFound)
	assert.Equal(t, 100, r.Score)
	assert.True(t, r.Passed)
}

func TestValidateComponent_InvalidArguments(t *testing.T) {
	svc := newValidationService()

	_, err := svc.ValidateComponent("", cleanButton, domain.LevelAA)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.ValidateComponent("Button", cleanButton, domain.Level("B"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestValidateComponents_PreservesOrder(t *testing.T) {
	svc := newValidationService().WithWorkers(2)
	var items []domain.ComponentSource
	for i := 0; i < 12; i++ {
		code := cleanButton
		if i%3 == 0 {
			code = clickableDiv
		}
		items = append(items, domain.ComponentSource{Name: "Button", Code: code, File: fmt.Sprintf("b%02d.tsx", i)})
	}

	reports, err := svc.ValidateComponents(context.Background(), items, domain.LevelAA)
	require.NoError(t, err)
	require.Len(t, reports, len(items))
	for i, r := range reports {
		assert.Equal(t, items[i].File, r.File)
		assert.Equal(t, i%3 != 0, r.Passed, r.File)
	}
}

func TestValidateComponents_Empty(t *testing.T) {
	reports, err := newValidationService().ValidateComponents(context.Background(), nil, domain.LevelAA)
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestValidateComponents_RejectsBadItemUpFront(t *testing.T) {
	items := []domain.ComponentSource{
		{Name: "Button", Code: cleanButton},
		{Name: "", Code: cleanButton},
	}
	_, err := newValidationService().ValidateComponents(context.Background(), items, domain.LevelAA)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "item 1")
}

func TestValidateComponents_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []domain.ComponentSource{{Name: "Button", Code: cleanButton}}
	_, err := newValidationService().ValidateComponents(ctx, items, domain.LevelAA)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSummaryReport(t *testing.T) {
	svc := newValidationService()
	items := []domain.ComponentSource{
		{Name: "Button", Code: cleanButton},
		{Name: "Button", Code: clickableDiv},
	}
	reports, err := svc.ValidateComponents(context.Background(), items, domain.LevelAA)
	require.NoError(t, err)

	s := svc.GenerateSummaryReport(reports)
	assert.Equal(t, 2, s.TotalComponents)
	assert.Equal(t, 1, s.PassedComponents)
	assert.Equal(t, 1, s.FailedComponents)
	require.NotEmpty(t, s.TopIssues)
	assert.Equal(t, 1, s.TopIssues[0].Count)
}

func TestConvenienceCalls(t *testing.T) {
	svc := newValidationService()

	ok, err := svc.QuickCheck("Button", cleanButton)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.QuickCheck("Button", clickableDiv)
	require.NoError(t, err)
	assert.False(t, ok)

	score, err := svc.Score("Button", cleanButton)
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	titles, err := svc.CriticalIssues("Button", clickableDiv)
	require.NoError(t, err)
	assert.Contains(t, titles, "Clickable element is not a button")
	assert.Contains(t, titles, "Button has no accessible name")

	titles, err = svc.CriticalIssues("Button", cleanButton)
	require.NoError(t, err)
	assert.NotNil(t, titles)
	assert.Empty(t, titles)

	_, err = svc.QuickCheck("", cleanButton)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCheckColorContrast(t *testing.T) {
	svc := newValidationService()

	r := svc.CheckColorContrast("#000000", "#ffffff")
	assert.Equal(t, 21.0, r.Ratio)
	assert.True(t, r.NormalTextAAA)

	r = svc.CheckColorContrast("#777777", "#ffffff")
	assert.Equal(t, 4.48, r.Ratio)
	assert.False(t, r.NormalTextAA)
	assert.True(t, r.LargeTextAA)

	assert.True(t, svc.MeetsAAContrast("#767676", "#ffffff", false))
	assert.False(t, svc.MeetsAAContrast("#777777", "#ffffff", false))
	assert.True(t, svc.MeetsAAContrast("#777777", "#ffffff", true))
}
