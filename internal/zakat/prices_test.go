package zakat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedPriceSourceDriftBounds(t *testing.T) {
	source := NewSimulatedPriceSource()

	for i := 0; i < 20; i++ {
		before := source.Current()
		after := source.Refresh()

		// At most ±1% movement per tick, floored to whole taka.
		assert.LessOrEqual(t, after.GoldPerTola, math.Floor(before.GoldPerTola*1.01))
		assert.GreaterOrEqual(t, after.GoldPerTola, math.Floor(before.GoldPerTola*0.99))
		assert.Equal(t, before.GoldPerTola, after.PreviousGoldPrice)
		assert.Equal(t, before.SilverPerTola, after.PreviousSilverPrice)
	}
}

func TestSimulatedPriceSourceHistoryCapped(t *testing.T) {
	source := NewSimulatedPriceSource()

	for i := 0; i < 8; i++ {
		source.Refresh()
	}

	prices := source.Current()
	assert.Len(t, prices.History, priceHistorySize)
	// Newest snapshot first.
	assert.Equal(t, prices.GoldPerTola, prices.History[0].GoldPerTola)
}

func TestSimulatedPriceSourceSnapshotIsolation(t *testing.T) {
	source := NewSimulatedPriceSource()

	snapshot := source.Current()
	snapshot.GoldPricesByKarat["22"] = 1

	assert.Equal(t, float64(DefaultGoldPerTola), source.Current().GoldPricesByKarat["22"])
}

func TestFixedPriceSource(t *testing.T) {
	source := &FixedPriceSource{Prices: Prices{SilverPerTola: 4000}}

	assert.Equal(t, 4000.0, source.Current().SilverPerTola)
	assert.Equal(t, source.Current(), source.Refresh())
}
