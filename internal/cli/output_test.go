package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fallencrown/crown-cli/internal/model"
)

func TestStylesFor_FallsBackToDark(t *testing.T) {
	dark := StylesFor(ThemeDark)
	unknown := StylesFor("neon")
	assert.Equal(t, dark, unknown)

	light := StylesFor(ThemeLight)
	assert.NotEqual(t, dark, light)
}

func TestPlotLine_Readiness(t *testing.T) {
	out := NewOutput("text", ThemeDark, nil)
	readyAt := time.Date(2026, 8, 30, 10, 10, 0, 0, time.UTC)

	plot := model.FarmPlot{
		SlotIndex: 0,
		Unlocked:  true,
		Crop: &model.PlantedCrop{
			PlantType: model.PlantType{Name: "Moonberry"},
			ReadyAt:   readyAt,
		},
	}

	growing := out.plotLine(plot, readyAt.Add(-5*time.Minute))
	assert.Contains(t, growing, "Moonberry")
	assert.Contains(t, growing, "ready in 5m0s")

	ready := out.plotLine(plot, readyAt)
	assert.Contains(t, ready, "ready to harvest")
}

func TestPlotLine_LockedAndEmpty(t *testing.T) {
	out := NewOutput("text", ThemeDark, nil)
	now := time.Now()

	locked := out.plotLine(model.FarmPlot{SlotIndex: 1, UnlockCost: 500, UnlockLevelRequirement: 5}, now)
	assert.Contains(t, locked, "locked")
	assert.Contains(t, locked, "500 gold")

	empty := out.plotLine(model.FarmPlot{SlotIndex: 2, Unlocked: true}, now)
	assert.Contains(t, empty, "empty")
}
