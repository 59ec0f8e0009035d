package domain_test

import (
	"testing"

	"github.com/brewkraft/brewkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultMenu_Catalogs(t *testing.T) {
	menu := domain.DefaultMenu()

	assert.Equal(t, 200.0, menu.BasePrices["espresso"])
	assert.Equal(t, 250.0, menu.BasePrices["americano"])
	assert.Equal(t, 300.0, menu.BasePrices["latte"])
	assert.Equal(t, 320.0, menu.BasePrices["cappuccino"])

	assert.Equal(t, 1.0, menu.SizeMultipliers["small"])
	assert.Equal(t, 1.2, menu.SizeMultipliers["medium"])
	assert.Equal(t, 1.4, menu.SizeMultipliers["large"])

	assert.Equal(t, 0.0, menu.MilkSurcharges[domain.DefaultMilk])
	assert.Equal(t, 30.0, menu.MilkSurcharges["whole"])
	assert.Equal(t, 30.0, menu.MilkSurcharges["skim"])
	assert.Equal(t, 60.0, menu.MilkSurcharges["oat"])
	assert.Equal(t, 50.0, menu.MilkSurcharges["soy"])

	assert.Equal(t, 40.0, menu.SyrupPrice)
	assert.Equal(t, 70.0, menu.ShotPrice)
	assert.Equal(t, 0.20, menu.IcedRate)
	assert.Equal(t, 4, menu.MaxSyrups)
	assert.Equal(t, 5, menu.MaxSugar)
	assert.Equal(t, 3, menu.MaxShots)
}

func TestMenu_ListingsKeepMenuOrder(t *testing.T) {
	menu := domain.DefaultMenu()

	assert.Equal(t, []string{"espresso", "americano", "latte", "cappuccino"}, menu.Bases())
	assert.Equal(t, []string{"small", "medium", "large"}, menu.Sizes())
	assert.Equal(t, []string{"none", "whole", "skim", "oat", "soy"}, menu.Milks())
}

func TestMenu_CustomEntriesListedAfterStandard(t *testing.T) {
	menu := domain.MenuConfig{
		Bases: map[string]float64{"mocha": 340.0, "cortado": 280.0},
	}.ApplyTo(domain.DefaultMenu())

	assert.Equal(t,
		[]string{"espresso", "americano", "latte", "cappuccino", "cortado", "mocha"},
		menu.Bases())
}
