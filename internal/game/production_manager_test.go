package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/gridwar/internal/game/core"
	"github.com/mitchelldurbincs/gridwar/internal/game/entity"
	"github.com/mitchelldurbincs/gridwar/internal/game/events"
	"github.com/mitchelldurbincs/gridwar/internal/game/resources"
	"github.com/mitchelldurbincs/gridwar/internal/testutil"
)

type capturePublisher struct {
	events []events.Event
}

func (c *capturePublisher) Publish(e events.Event) { c.events = append(c.events, e) }

func TestProductionManager_ConstructedBuildingsProduce(t *testing.T) {
	pub := &capturePublisher{}
	pm := NewProductionManager(pub, "g", false, testutil.NopLogger())

	p := NewPlayer(0, resources.NewLedger(0, 10), core.Position{})
	p.AddBuilding(testutil.CreateTestBuilding(entity.Farm, 0, 0))
	p.AddBuilding(testutil.CreateTestBuilding(entity.Mine, 0, 0))
	p.AddBuilding(testutil.CreateTestBuilding(entity.TrainingCamp, 0, 0))

	report := pm.ProcessPlayerProduction(p, 3)

	assert.Equal(t, 20, report.Produced[resources.Food])
	assert.Equal(t, 15, report.Produced[resources.Stone])
	assert.Equal(t, 20, p.Ledger.Quantity(resources.Food))
	assert.Equal(t, 15, p.Ledger.Quantity(resources.Stone))
	assert.Equal(t, 0, p.Ledger.Quantity(resources.Gold), "no base tick")

	require.Len(t, pub.events, 2)
	produced := pub.events[0].(*events.ResourcesProducedEvent)
	assert.Equal(t, "Farm", produced.Source)
	assert.Equal(t, 20, produced.Amount)
}

func TestProductionManager_Construction(t *testing.T) {
	pub := &capturePublisher{}
	pm := NewProductionManager(pub, "g", false, testutil.NopLogger())

	p := NewPlayer(0, nil, core.Position{})
	farm, _ := entity.NewBuilding(entity.Farm, 0)
	completed := 0
	farm.OnComplete = func(*entity.Building) { completed++ }
	p.AddBuilding(farm)

	report := pm.ProcessPlayerProduction(p, 1)
	assert.Equal(t, 1, report.Building)
	assert.Equal(t, 0, report.Completed)

	report = pm.ProcessPlayerProduction(p, 2)
	assert.Equal(t, 1, report.Completed)
	assert.True(t, farm.Constructed)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 0, p.Ledger.Quantity(resources.Food), "finished this tick, produces next turn")

	pm.ProcessPlayerProduction(p, 3)
	assert.Equal(t, 20, p.Ledger.Quantity(resources.Food))
	assert.Equal(t, 1, completed, "completion fires once")
}

func TestProductionManager_BaseTick(t *testing.T) {
	pub := &capturePublisher{}
	pm := NewProductionManager(pub, "g", true, testutil.NopLogger())
	p := NewPlayer(0, resources.NewLedger(100, 10), core.Position{})

	report := pm.ProcessPlayerProduction(p, 1)
	for _, k := range resources.AllKinds {
		assert.Equal(t, 110, p.Ledger.Quantity(k))
		assert.Equal(t, 10, report.Produced[k])
	}
	assert.Len(t, pub.events, len(resources.AllKinds))
}

func TestProductionManager_NilPublisher(t *testing.T) {
	pm := NewProductionManager(nil, "g", true, testutil.NopLogger())
	p := NewPlayer(0, resources.NewLedger(0, 1), core.Position{})
	assert.NotPanics(t, func() { pm.ProcessPlayerProduction(p, 1) })
}
