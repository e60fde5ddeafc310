package resources

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedger(t *testing.T) {
	l := NewLedger(500, 10)
	for _, k := range AllKinds {
		assert.Equal(t, 500, l.Quantity(k), k.String())
		assert.Equal(t, 10, l.Rate(k), k.String())
	}
}

func TestLedger_QuantityUninitialized(t *testing.T) {
	l := NewEmptyLedger()
	assert.Equal(t, 0, l.Quantity(Stone))
	assert.Equal(t, 0, l.Quantity(Kind(99)))
}

func TestLedger_Credit(t *testing.T) {
	l := NewEmptyLedger()
	require.NoError(t, l.Credit(Gold, 30))
	require.NoError(t, l.Credit(Gold, 0))
	assert.Equal(t, 30, l.Quantity(Gold))

	err := l.Credit(Gold, -5)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.Equal(t, 30, l.Quantity(Gold))
}

func TestLedger_CanAfford(t *testing.T) {
	l := NewLedger(100, 0)

	tests := []struct {
		name     string
		cost     Cost
		expected bool
	}{
		{"Empty", Cost{}, true},
		{"Exact", Cost{Gold: 100, Wood: 100}, true},
		{"OneShort", Cost{Gold: 100, Wood: 101}, false},
		{"Negative", Cost{Gold: -1}, false},
		{"UnknownKind", Cost{Kind(7): 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, l.CanAfford(tt.cost))
		})
	}
}

func TestLedger_SpendAtomic(t *testing.T) {
	l := NewLedger(0, 0)
	require.NoError(t, l.Credit(Gold, 200))
	require.NoError(t, l.Credit(Wood, 50))
	before := l.Snapshot()

	assert.False(t, l.Spend(Cost{Gold: 100, Wood: 75}))
	assert.Equal(t, before, l.Snapshot(), "failed spend must not partially debit")

	assert.True(t, l.Spend(Cost{Gold: 100, Wood: 50}))
	assert.Equal(t, 100, l.Quantity(Gold))
	assert.Equal(t, 0, l.Quantity(Wood))
}

func TestLedger_SpendNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	l := NewLedger(50, 0)

	for i := 0; i < 500; i++ {
		cost := Cost{}
		for _, k := range AllKinds {
			if rng.Intn(2) == 0 {
				cost[k] = rng.Intn(40) - 5
			}
		}
		before := l.Snapshot()
		affordable := l.CanAfford(cost)
		spent := l.Spend(cost)
		assert.Equal(t, affordable, spent)
		if !spent {
			assert.Equal(t, before, l.Snapshot())
		}
		for _, k := range AllKinds {
			require.GreaterOrEqual(t, l.Quantity(k), 0)
		}
		if rng.Intn(4) == 0 {
			require.NoError(t, l.Credit(AllKinds[rng.Intn(len(AllKinds))], rng.Intn(30)))
		}
	}
}

func TestLedger_ApplyProductionTick(t *testing.T) {
	l := NewLedger(5, 10)
	l.SetRate(Food, 3)
	l.SetRate(Stone, -4)

	l.ApplyProductionTick()

	assert.Equal(t, 15, l.Quantity(Gold))
	assert.Equal(t, 15, l.Quantity(Wood))
	assert.Equal(t, 5, l.Quantity(Stone))
	assert.Equal(t, 8, l.Quantity(Food))
}

func TestLedger_SnapshotIsCopy(t *testing.T) {
	l := NewLedger(10, 0)
	snap := l.Snapshot()
	snap[Gold] = 9999
	assert.Equal(t, 10, l.Quantity(Gold))
}

func TestLedger_String(t *testing.T) {
	l := NewLedger(1, 0)
	assert.Equal(t, "Gold: 1, Wood: 1, Stone: 1, Food: 1", l.String())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Gold", Gold.String())
	assert.Equal(t, 100, Gold.BaseValue())
	assert.Equal(t, 80, Food.BaseValue())
	assert.NotEmpty(t, Wood.Description())
	assert.Equal(t, "Kind(9)", Kind(9).String())
	assert.Equal(t, 0, Kind(-1).BaseValue())
}

func TestCost(t *testing.T) {
	c := Cost{Gold: 100, Wood: 75}
	assert.Equal(t, "Gold 100, Wood 75", c.String())
	assert.Equal(t, "free", Cost{}.String())

	clone := c.Clone()
	clone[Gold] = 1
	assert.Equal(t, 100, c[Gold])
	assert.Equal(t, Cost{Gold: 50}, GoldCost(50))
}
