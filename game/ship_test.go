package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 30

func newTestShip() (*Ship, *SparkField) {
	cfg := DefaultConfig()
	return NewShip(cfg), NewSparkField(cfg, rand.New(rand.NewSource(42)))
}

func TestCoastingTick(t *testing.T) {
	ship, field := newTestShip()
	require.NoError(t, ship.Advance(tick, 0, field))

	// Position advances by the pre-tick velocity: 20 m/s rightward.
	assert.InDelta(t, 20*tick, ship.Pos.X, 1e-9)
	assert.InDelta(t, 768, ship.Pos.Y, 1e-9)

	// Gravity adds a straight-down G*dt to the velocity.
	assert.InDelta(t, 20, ship.Vel.HorizontalComponent(), 1e-9)
	assert.InDelta(t, -10*tick, ship.Vel.VerticalComponent(), 1e-9)

	// No burn: fuel untouched, no sparks.
	assert.Equal(t, 5000.0, ship.Fuel)
	assert.Equal(t, 0, field.Len())
}

func TestFullThrottleTick(t *testing.T) {
	ship, field := newTestShip()
	ship.Throttle = 1.0
	require.NoError(t, ship.Advance(tick, 0, field))

	// fuelBurned = 1.0 * 600 kg/s * (1/30) s = 20 kg.
	fuelBurned := 1.0 * 600 * tick
	assert.InDelta(t, 5000-fuelBurned, ship.Fuel, 1e-9)
	assert.Equal(t, 10, field.Len())

	// Upright ship thrusts straight up; fuel is debited before the mass
	// enters the impulse.
	deltaV := fuelBurned * 500 / (ship.Fuel + 5000)
	assert.InDelta(t, deltaV-10*tick, ship.Vel.VerticalComponent(), 1e-9)
}

func TestRunningDryTruncatesBurn(t *testing.T) {
	ship, field := newTestShip()
	ship.Fuel = 1
	ship.Throttle = 1.0
	require.NoError(t, ship.Advance(tick, 0, field))

	assert.Equal(t, 0.0, ship.Fuel)
	assert.Equal(t, 0.0, ship.Throttle, "running out of fuel must zero the throttle")
	// floor(1 kg * 0.5 sparks/kg) = 0.
	assert.Equal(t, 0, field.Len())

	// The throttle stays pinned while the tank is empty.
	ship.IncreaseThrottle()
	assert.Equal(t, 0.0, ship.Throttle)
}

func TestFuelMonotonicallyDecreases(t *testing.T) {
	ship, field := newTestShip()
	ship.Throttle = 1.0

	prev := ship.Fuel
	now := 0.0
	for i := 0; i < 300; i++ {
		now += tick
		require.NoError(t, ship.Advance(tick, now, field))
		assert.LessOrEqual(t, ship.Fuel, prev)
		prev = ship.Fuel
	}
	// 300 ticks at 20 kg/tick drains a 5000 kg tank.
	assert.Equal(t, 0.0, ship.Fuel)
	assert.Equal(t, 0.0, ship.Throttle)
}

func TestThrottleSaturatesAtOne(t *testing.T) {
	ship, _ := newTestShip()
	for i := 0; i < 20; i++ {
		ship.IncreaseThrottle()
	}
	assert.Equal(t, 1.0, ship.Throttle)
}

func TestThrottleClampsAtZero(t *testing.T) {
	ship, _ := newTestShip()
	ship.DecreaseThrottle()
	assert.Equal(t, 0.0, ship.Throttle)

	ship.Throttle = 0.05
	ship.DecreaseThrottle()
	assert.Equal(t, 0.0, ship.Throttle)
}

func TestRotationAppliesOnlyWhileIssued(t *testing.T) {
	ship, _ := newTestShip()

	ship.SetRotation(1)
	require.NoError(t, ship.Advance(tick, 0, nil))
	want := 0.2 * tick
	assert.InDelta(t, want, ship.Orientation, 1e-12)

	// Rotation does not latch: clearing it stops the turn.
	ship.SetRotation(0)
	require.NoError(t, ship.Advance(tick, 0, nil))
	assert.InDelta(t, want, ship.Orientation, 1e-12)

	ship.SetRotation(-1)
	require.NoError(t, ship.Advance(tick, 0, nil))
	assert.InDelta(t, 0, ship.Orientation, 1e-12)
}

func TestOrientationAccumulatesPastFullTurn(t *testing.T) {
	ship, _ := newTestShip()
	ship.SetRotation(1)
	// 40 seconds at 0.2 rad/s is 8 radians, past a full rotation.
	for i := 0; i < 1200; i++ {
		require.NoError(t, ship.Advance(tick, 0, nil))
	}
	assert.InDelta(t, 8.0, ship.Orientation, 1e-6)
}

func TestAdvanceRejectsBadState(t *testing.T) {
	ship, field := newTestShip()
	require.Error(t, ship.Advance(-tick, 0, field))

	ship.Fuel = -1
	require.Error(t, ship.Advance(tick, 0, field))
}
