package strategy_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/odp/patterns/strategy"
)

func TestPricers(t *testing.T) {
	t.Parallel()

	order := strategy.Order{WeightGrams: 2400, SubtotalCents: 6000}

	cases := []struct {
		pricer   strategy.Pricer
		wantName string
		wantCost int
	}{
		{pricer: strategy.FlatRate{Cents: 499}, wantName: "flat-rate", wantCost: 499},
		// 2400g rounds up to 3 kilos.
		{pricer: strategy.PerKilo{CentsPerKilo: 150}, wantName: "per-kilo", wantCost: 450},
		{
			pricer:   strategy.FreeOverThreshold{ThresholdCents: 5000, FallbackCents: 799},
			wantName: "free-over-threshold",
			wantCost: 0,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.wantName, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantName, tc.pricer.Name())
			assert.Equal(t, tc.wantCost, tc.pricer.Price(order))
		})
	}
}

func TestFreeOverThreshold_BelowThreshold(t *testing.T) {
	t.Parallel()

	p := strategy.FreeOverThreshold{ThresholdCents: 5000, FallbackCents: 799}
	got := p.Price(strategy.Order{SubtotalCents: 4999})
	assert.Equal(t, 799, got)
}

func TestPerKilo_ExactKiloBoundary(t *testing.T) {
	t.Parallel()

	p := strategy.PerKilo{CentsPerKilo: 100}
	assert.Equal(t, 200, p.Price(strategy.Order{WeightGrams: 2000}))
	assert.Equal(t, 300, p.Price(strategy.Order{WeightGrams: 2001}))
}

func TestQuoter_SwapsStrategy(t *testing.T) {
	t.Parallel()

	order := strategy.Order{WeightGrams: 500, SubtotalCents: 1000}
	quoter := strategy.NewQuoter(strategy.FlatRate{Cents: 400})

	cost, err := quoter.Quote(order)
	require.NoError(t, err)
	assert.Equal(t, 400, cost)

	quoter.Use(strategy.PerKilo{CentsPerKilo: 150})
	cost, err = quoter.Quote(order)
	require.NoError(t, err)
	assert.Equal(t, 150, cost)

	// Nil swap keeps the current strategy.
	quoter.Use(nil)
	cost, err = quoter.Quote(order)
	require.NoError(t, err)
	assert.Equal(t, 150, cost)
}

func TestQuoter_MissingStrategy(t *testing.T) {
	t.Parallel()

	quoter := strategy.NewQuoter(nil)

	_, err := quoter.Quote(strategy.Order{})
	assert.True(t, errors.Is(err, strategy.ErrNoPricer))
}

func TestDemo_Transcript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, strategy.Demo(&buf))

	want := "flat-rate: 499 cents\n" +
		"per-kilo: 450 cents\n" +
		"free-over-threshold: 0 cents\n"
	assert.Equal(t, want, buf.String())
}
