package zakat

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Default market prices in taka per tola. Gold is the 22-carat rate.
const (
	DefaultGoldPerTola   = 209000
	DefaultSilverPerTola = 4244.20
)

// priceHistorySize caps the retained snapshots at the last five refreshes.
const priceHistorySize = 5

// PriceSnapshot is one observation of the market prices.
type PriceSnapshot struct {
	GoldPerTola   float64   `json:"goldPerTola"`
	SilverPerTola float64   `json:"silverPerTola"`
	Timestamp     time.Time `json:"timestamp"`
}

// Prices is the full market price state exposed to clients.
type Prices struct {
	GoldPerTola            float64            `json:"goldPerTola"`
	SilverPerTola          float64            `json:"silverPerTola"`
	GoldPricesByKarat      map[string]float64 `json:"goldPricesByKarat"`
	PreviousGoldPrice      float64            `json:"previousGoldPrice"`
	PreviousSilverPrice    float64            `json:"previousSilverPrice"`
	GoldChange             float64            `json:"goldChange"`
	SilverChange           float64            `json:"silverChange"`
	GoldChangePercentage   float64            `json:"goldChangePercentage"`
	SilverChangePercentage float64            `json:"silverChangePercentage"`
	LastUpdated            time.Time          `json:"lastUpdated"`
	History                []PriceSnapshot    `json:"history"`
}

// PriceSource supplies current market prices. The simulated implementation
// below stands in for a real feed; swapping in one backed by an actual
// exchange does not touch the calculator.
type PriceSource interface {
	Current() Prices
	Refresh() Prices
}

// SimulatedPriceSource models price movement as a random walk of at most
// ±1% per refresh, mirroring how the original price widget behaved.
type SimulatedPriceSource struct {
	mu     sync.Mutex
	prices Prices
	rng    *rand.Rand
}

// NewSimulatedPriceSource creates a source seeded with the default prices.
func NewSimulatedPriceSource() *SimulatedPriceSource {
	return &SimulatedPriceSource{
		prices: Prices{
			GoldPerTola:   DefaultGoldPerTola,
			SilverPerTola: DefaultSilverPerTola,
			GoldPricesByKarat: map[string]float64{
				"22": 209000,
				"21": 200000,
				"18": 171000,
			},
			PreviousGoldPrice:   DefaultGoldPerTola,
			PreviousSilverPrice: DefaultSilverPerTola,
			LastUpdated:         time.Now(),
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Current returns the latest prices without advancing the walk.
func (s *SimulatedPriceSource) Current() Prices {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Refresh advances the walk one tick and returns the new prices.
func (s *SimulatedPriceSource) Refresh() Prices {
	s.mu.Lock()
	defer s.mu.Unlock()

	currentGold := s.prices.GoldPerTola
	currentSilver := s.prices.SilverPerTola

	goldDrift := (s.rng.Float64()*2 - 1) / 100 // -1% to +1%
	silverDrift := (s.rng.Float64()*2 - 1) / 100

	newGold := math.Floor(currentGold * (1 + goldDrift))
	newSilver := math.Floor(currentSilver * (1 + silverDrift))

	for karat, price := range s.prices.GoldPricesByKarat {
		s.prices.GoldPricesByKarat[karat] = math.Floor(price * (1 + goldDrift))
	}

	s.prices.GoldPerTola = newGold
	s.prices.SilverPerTola = newSilver
	s.prices.PreviousGoldPrice = currentGold
	s.prices.PreviousSilverPrice = currentSilver
	s.prices.GoldChange = newGold - currentGold
	s.prices.SilverChange = newSilver - currentSilver
	s.prices.GoldChangePercentage = (newGold - currentGold) / currentGold * 100
	s.prices.SilverChangePercentage = (newSilver - currentSilver) / currentSilver * 100
	s.prices.LastUpdated = time.Now()

	s.prices.History = append([]PriceSnapshot{{
		GoldPerTola:   newGold,
		SilverPerTola: newSilver,
		Timestamp:     s.prices.LastUpdated,
	}}, s.prices.History...)
	if len(s.prices.History) > priceHistorySize {
		s.prices.History = s.prices.History[:priceHistorySize]
	}

	return s.snapshotLocked()
}

// snapshotLocked deep-copies the mutable fields so callers cannot race the walk.
func (s *SimulatedPriceSource) snapshotLocked() Prices {
	out := s.prices
	out.GoldPricesByKarat = make(map[string]float64, len(s.prices.GoldPricesByKarat))
	for k, v := range s.prices.GoldPricesByKarat {
		out.GoldPricesByKarat[k] = v
	}
	out.History = append([]PriceSnapshot(nil), s.prices.History...)
	return out
}

// FixedPriceSource serves constant prices; used in tests and as a stand-in
// when the simulation is disabled.
type FixedPriceSource struct {
	Prices Prices
}

func (f *FixedPriceSource) Current() Prices { return f.Prices }
func (f *FixedPriceSource) Refresh() Prices { return f.Prices }

// Ticker refreshes a price source on a fixed interval until stopped.
type Ticker struct {
	source   PriceSource
	interval time.Duration
	done     chan bool
}

// NewTicker creates a refresher for the given source.
func NewTicker(source PriceSource, interval time.Duration) *Ticker {
	return &Ticker{
		source:   source,
		interval: interval,
		done:     make(chan bool),
	}
}

// Run refreshes the source until Stop is called.
func (t *Ticker) Run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			log.Info().Msg("Stopping price refresher.")
			return
		case <-ticker.C:
			prices := t.source.Refresh()
			log.Debug().
				Float64("gold", prices.GoldPerTola).
				Float64("silver", prices.SilverPerTola).
				Msg("Market prices refreshed")
		}
	}
}

// Stop halts the refresher.
func (t *Ticker) Stop() {
	t.done <- true
}
