package skill_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/abilitycast/internal/data"
	"github.com/udisondev/abilitycast/internal/game/geo"
	"github.com/udisondev/abilitycast/internal/game/skill"
	mockskill "github.com/udisondev/abilitycast/internal/game/skill/mock"
	"github.com/udisondev/abilitycast/internal/model"
	"github.com/udisondev/abilitycast/internal/world"
)

const tick = 500 * time.Millisecond

type fixture struct {
	world  *world.World
	engine *skill.Engine
	roller *mockskill.FixedRoller
}

func newFixture(t *testing.T, obstacles *geo.Obstacles, listener skill.Listener) *fixture {
	t.Helper()
	w := world.New(obstacles)
	roller := mockskill.NewFixedRoller()
	return &fixture{
		world:  w,
		engine: skill.NewEngine(w, skill.DefaultRules(), roller, listener),
		roller: roller,
	}
}

// spawn adds an actor with 100 HP, 100 MP and no regeneration.
func (f *fixture) spawn(t *testing.T, x, y float64) *model.Actor {
	t.Helper()
	a := model.NewActor(f.world.IDGenerator().NextCreatureID(), "actor", model.NewLocation(x, y), 100, 100, 0, 0)
	require.NoError(t, f.world.AddActor(a))
	return a
}

// attempt submits req and returns the error of its outcome.
func (f *fixture) attempt(t *testing.T, req skill.Request, dt time.Duration) error {
	t.Helper()
	f.engine.Submit(req)
	outcomes := f.engine.Tick(dt)
	require.Len(t, outcomes, 1)
	return outcomes[0].Err
}

// run advances the engine by n ticks of dt.
func (f *fixture) run(n int, dt time.Duration) {
	for range n {
		f.engine.Tick(dt)
	}
}

func bolt(cost int32, cast, cooldown time.Duration) *data.Ability {
	return &data.Ability{
		ID:           10,
		Name:         "Bolt",
		ManaCost:     cost,
		CastDuration: cast,
		Cooldown:     cooldown,
		Range:        200,
		Effect:       data.TargetedEffect{Effect: data.Damage(10, 10)},
	}
}

func TestEngine_TimedCastDeductsManaOnResolution(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	ab := bolt(20, 2*time.Second, 0)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
	require.NotNil(t, hero.Cast)
	assert.Equal(t, int32(100), hero.Mana.Points(), "nothing taken at acceptance")

	f.run(3, tick)
	assert.NotNil(t, hero.Cast)
	assert.Equal(t, int32(100), goblin.Health.Points())

	f.run(1, tick)
	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(80), hero.Mana.Points())
	assert.Equal(t, int32(90), goblin.Health.Points())
	assert.NotNil(t, hero.RegenSuppression)
}

func TestEngine_RejectionsLeaveStateUntouched(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	hero.Mana.Set(10)

	err := f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(20, 0, 0), TargetID: goblin.ObjectID()}, tick)
	assert.ErrorIs(t, err, skill.ErrInsufficientMana)
	assert.True(t, skill.IsRejection(err))
	assert.Equal(t, int32(10), hero.Mana.Points())
	assert.Nil(t, hero.GlobalCooldown)
	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(100), goblin.Health.Points())
}

func TestEngine_RejectionOrder(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	ab := bolt(500, time.Second, 5*time.Second)

	// Every condition holds at once; the checks report the first in order.
	hero.Cast = model.NewCastState(ab, 0)
	hero.Lasting = append(hero.Lasting, model.NewLastingEffect(data.Lasting{Kind: data.LastingSilence, Duration: time.Minute}, 0, 0))
	hero.SetMoving(true)
	skill.StartAbilityCooldown(hero, ab)
	skill.StartGlobalCooldown(hero, time.Minute)

	req := skill.Request{SourceID: hero.ObjectID(), Ability: ab}
	want := []error{
		skill.ErrAlreadyCasting,
		skill.ErrSilenced,
		skill.ErrInterruptedByMovement,
		skill.ErrOnAbilityCooldown,
		skill.ErrOnGlobalCooldown,
		skill.ErrInsufficientMana,
		skill.ErrNoTarget,
	}
	undo := []func(){
		func() { hero.Cast = nil },
		func() { hero.Lasting = nil },
		func() { hero.SetMoving(false) },
		func() { clear(hero.AbilityCooldowns) },
		func() { hero.GlobalCooldown = nil },
		func() { ab.ManaCost = 0 },
		func() {},
	}
	for i, w := range want {
		err := f.attempt(t, req, 0)
		assert.ErrorIs(t, err, w, "step %d", i)
		undo[i]()
	}
}

func TestEngine_GlobalCooldownExpiresExactly(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	req := skill.Request{SourceID: hero.ObjectID(), Ability: bolt(0, 0, 0), TargetID: goblin.ObjectID()}

	require.NoError(t, f.attempt(t, req, tick))
	assert.ErrorIs(t, f.attempt(t, req, tick), skill.ErrOnGlobalCooldown)
	assert.ErrorIs(t, f.attempt(t, req, tick), skill.ErrOnGlobalCooldown)
	assert.NoError(t, f.attempt(t, req, tick), "evaluated normally once 1.5s elapsed")
}

func TestEngine_PerAbilityCooldownIndependent(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)

	a := bolt(0, 0, 10*time.Second)
	b := bolt(0, 0, 0)
	b.ID = 11

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: a, TargetID: goblin.ObjectID()}, tick))
	f.run(3, tick)

	assert.ErrorIs(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: a, TargetID: goblin.ObjectID()}, tick), skill.ErrOnAbilityCooldown)
	assert.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: b, TargetID: goblin.ObjectID()}, tick))
}

func TestEngine_SilenceBlocksUntilExpiry(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	silence := &data.Ability{
		ID:     3,
		Name:   "Silence",
		Range:  200,
		Effect: data.TargetedEffect{Effect: data.Silence(4 * time.Second)},
	}
	zap := bolt(0, 0, 0)
	goblinReq := skill.Request{SourceID: goblin.ObjectID(), Ability: zap, TargetID: hero.ObjectID()}

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: silence, TargetID: goblin.ObjectID()}, time.Second))

	for sec := 1; sec <= 4; sec++ {
		err := f.attempt(t, goblinReq, time.Second)
		assert.ErrorIs(t, err, skill.ErrSilenced, "second %d", sec)
	}
	assert.NoError(t, f.attempt(t, goblinReq, time.Second))
	assert.Equal(t, int32(90), hero.Health.Points())
}

func TestEngine_MovementInterruptsOnlyTimedCasts(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	timed := bolt(20, 2*time.Second, 10*time.Second)
	instant := bolt(20, 0, 0)
	instant.ID = 11

	hero.SetMoving(true)
	err := f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: timed, TargetID: goblin.ObjectID()}, tick)
	assert.ErrorIs(t, err, skill.ErrInterruptedByMovement)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: instant, TargetID: goblin.ObjectID()}, tick))
	assert.Equal(t, int32(90), goblin.Health.Points())
	assert.Equal(t, int32(80), hero.Mana.Points())

	hero.SetMoving(false)
	f.run(3, tick)
	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: timed, TargetID: goblin.ObjectID()}, tick))
	f.run(1, tick)
	hero.SetMoving(true)
	f.run(1, tick)

	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(80), hero.Mana.Points(), "no cost for an interrupted cast")
	assert.Empty(t, hero.AbilityCooldowns, "no cooldown for an interrupted cast")
	assert.Equal(t, int32(90), goblin.Health.Points())
}

func TestEngine_CriticalDamage(t *testing.T) {
	tests := []struct {
		name     string
		critical float64
		want     int32
	}{
		{"never", 0, 90},
		{"always", 1, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, nil)
			hero := f.spawn(t, 0, 0)
			hero.SetCritical(tt.critical)
			goblin := f.spawn(t, 100, 0)
			f.roller.UseMax = true

			require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(0, 0, 0), TargetID: goblin.ObjectID()}, tick))
			assert.Equal(t, tt.want, goblin.Health.Points())
		})
	}
}

func TestEngine_PeriodicFiresFourTimes(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	dot := &data.Ability{
		ID:     12,
		Name:   "Burn",
		Range:  200,
		Effect: data.TargetedEffect{Effect: data.DamageOverTime(2, 2, 3*time.Second, 12*time.Second)},
	}

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: dot, TargetID: goblin.ObjectID()}, time.Second))

	var firedAt []int
	last := goblin.Health.Points()
	for sec := 1; sec <= 14; sec++ {
		f.engine.Tick(time.Second)
		if hp := goblin.Health.Points(); hp != last {
			firedAt = append(firedAt, sec)
			last = hp
		}
	}
	assert.Equal(t, []int{3, 6, 9, 12}, firedAt)
	assert.Equal(t, int32(92), goblin.Health.Points())
	assert.Empty(t, goblin.Periodic)
}

func TestEngine_AreaUsesRangeAtResolution(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	near := f.spawn(t, 50, 0)
	far := f.spawn(t, 0, 90)
	blaze := &data.Ability{
		ID:           1,
		Name:         "Blaze",
		CastDuration: time.Second,
		Range:        80,
		Effect:       data.TargetedEffect{Effect: data.Damage(10, 10), Mode: data.TargetArea},
	}

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: blaze}, tick))
	assert.Zero(t, hero.Cast.TargetID)

	// Walks into range while the cast is in progress.
	far.SetLocation(model.NewLocation(0, 70))
	f.run(2, tick)

	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(90), near.Health.Points())
	assert.Equal(t, int32(90), far.Health.Points())
	assert.Equal(t, int32(100), hero.Health.Points(), "caster excluded")
}

func TestEngine_AreaRange80(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	near := f.spawn(t, 50, 0)
	far := f.spawn(t, 90, 0)
	blaze := &data.Ability{
		ID:     1,
		Name:   "Blaze",
		Range:  80,
		Effect: data.TargetedEffect{Effect: data.Damage(10, 10), Mode: data.TargetArea},
	}

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: blaze}, tick))
	assert.Equal(t, int32(90), near.Health.Points())
	assert.Equal(t, int32(100), far.Health.Points())
}

func TestEngine_AreaCritRolledPerTarget(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	hero.SetCritical(0.5)
	first := f.spawn(t, 50, 0)
	second := f.spawn(t, 0, 50)
	blaze := &data.Ability{
		ID:     1,
		Name:   "Blaze",
		Range:  80,
		Effect: data.TargetedEffect{Effect: data.Damage(10, 10), Mode: data.TargetArea},
	}
	f.roller.QueueChances(0.1, 0.9)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: blaze}, tick))
	assert.Equal(t, int32(80), first.Health.Points())
	assert.Equal(t, int32(90), second.Health.Points())
}

func TestEngine_AreaDeathDoesNotStopOtherTargets(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	weak := f.spawn(t, 50, 0)
	weak.Health.Set(10)
	sturdy := f.spawn(t, 0, 50)
	nova := &data.Ability{
		ID:        13,
		Name:      "Nova",
		Range:     80,
		Effect:    data.TargetedEffect{Effect: data.Damage(10, 10), Mode: data.TargetArea},
		Secondary: &data.TargetedEffect{Effect: data.Damage(5, 5), Mode: data.TargetArea},
	}

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: nova}, tick))
	assert.True(t, weak.IsDead())
	assert.Equal(t, int32(0), weak.Health.Points())
	assert.Equal(t, int32(85), sturdy.Health.Points(), "primary and secondary both land")
}

func TestEngine_SinglePrimaryAreaSecondary(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	target := f.spawn(t, 50, 0)
	bystander := f.spawn(t, 0, 60)
	outsider := f.spawn(t, 0, 150)
	ab := &data.Ability{
		ID:        14,
		Name:      "Splash",
		Range:     80,
		Effect:    data.TargetedEffect{Effect: data.Damage(10, 10), Mode: data.TargetSingle},
		Secondary: &data.TargetedEffect{Effect: data.Damage(5, 5), Mode: data.TargetArea},
	}

	assert.ErrorIs(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab}, tick), skill.ErrNoTarget)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: target.ObjectID()}, tick))
	assert.Equal(t, int32(85), target.Health.Points())
	assert.Equal(t, int32(95), bystander.Health.Points())
	assert.Equal(t, int32(100), outsider.Health.Points())
	assert.Equal(t, int32(100), hero.Health.Points())
}

func TestEngine_LineOfSightBlocksSingleTarget(t *testing.T) {
	wall := geo.NewObstacles(geo.DefaultTileSize, model.NewLocation(50, 0))
	f := newFixture(t, wall, nil)
	hero := f.spawn(t, 0, 0)
	behind := f.spawn(t, 100, 0)
	beside := f.spawn(t, 0, 100)

	err := f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(0, 0, 0), TargetID: behind.ObjectID()}, tick)
	assert.ErrorIs(t, err, skill.ErrNoLineOfSight)
	assert.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(0, 0, 0), TargetID: beside.ObjectID()}, tick))
}

func TestEngine_CancelRoundTrip(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	ab := bolt(20, 2*time.Second, 10*time.Second)

	manaBefore := hero.Mana.Points()
	hpBefore := goblin.Health.Points()

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
	f.run(1, tick)

	f.engine.SubmitCancel(hero.ObjectID())
	outcomes := f.engine.Tick(tick)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Cancel)
	assert.NoError(t, outcomes[0].Err)
	assert.Nil(t, hero.Cast)
	require.NotNil(t, hero.GlobalCooldown, "global cooldown survives the cancel")
	assert.False(t, hero.GlobalCooldown.Finished())

	f.run(10, tick)
	assert.Nil(t, hero.Cast)
	assert.Equal(t, manaBefore, hero.Mana.Points())
	assert.Empty(t, hero.AbilityCooldowns)
	assert.Equal(t, hpBefore, goblin.Health.Points())
	assert.Equal(t, int32(100), hero.Health.Points())

	f.engine.SubmitCancel(hero.ObjectID())
	outcomes = f.engine.Tick(tick)
	require.Len(t, outcomes, 1)
	assert.ErrorIs(t, outcomes[0].Err, skill.ErrNotCasting)
}

func TestEngine_VanishedTargetIsNoOp(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	ab := bolt(20, time.Second, 0)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
	f.world.RemoveActor(goblin.ObjectID())
	f.run(2, tick)

	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(80), hero.Mana.Points(), "the cast still resolves")
	assert.Equal(t, int32(100), goblin.Health.Points())
}

func TestEngine_DeadCaster(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	ab := bolt(20, time.Second, 0)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
	hero.Health.Set(0)
	f.run(1, tick)
	assert.Nil(t, hero.Cast)
	assert.Equal(t, int32(100), hero.Mana.Points())

	f.run(3, tick)
	err := f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick)
	assert.ErrorIs(t, err, skill.ErrCasterDead)
}

func TestEngine_RegenerationSuppressedAfterCast(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := model.NewActor(f.world.IDGenerator().NextPlayerID(), "hero", model.Location{}, 100, 100, 2, 0)
	require.NoError(t, f.world.AddActor(hero))
	goblin := f.spawn(t, 100, 0)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(20, 0, 0), TargetID: goblin.ObjectID()}, tick))
	assert.Equal(t, int32(80), hero.Mana.Points())

	// Suppression started this tick and ages from the next one.
	f.run(9, tick)
	assert.Equal(t, int32(80), hero.Mana.Points())

	f.run(1, tick)
	assert.Equal(t, int32(82), hero.Mana.Points())

	f.run(2, tick)
	assert.Equal(t, int32(86), hero.Mana.Points())
}

func TestEngine_UnknownRequests(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)

	assert.ErrorIs(t, f.attempt(t, skill.Request{SourceID: 999, Ability: bolt(0, 0, 0)}, tick), skill.ErrUnknownActor)
	assert.ErrorIs(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID()}, tick), skill.ErrUnknownAbility)
	assert.ErrorIs(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: bolt(0, 0, 0), TargetID: 999}, tick), skill.ErrNoTarget)
}

func TestEngine_ListenerLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mockskill.NewMockListener(ctrl)

	f := newFixture(t, nil, listener)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	goblin.Health.Set(10)
	ab := bolt(20, time.Second, 0)

	var castID uuid.UUID
	gomock.InOrder(
		listener.EXPECT().CastStarted(gomock.Any()).Do(func(ev skill.CastEvent) {
			castID = ev.CastID
			assert.Equal(t, hero.ObjectID(), ev.SourceID)
			assert.Equal(t, goblin.ObjectID(), ev.TargetID)
		}),
		listener.EXPECT().CastCompleted(gomock.Any()).Do(func(ev skill.CastEvent) {
			assert.Equal(t, castID, ev.CastID)
		}),
		listener.EXPECT().MomentaryApplied(skill.MomentaryApplied{
			SourceID:  hero.ObjectID(),
			TargetID:  goblin.ObjectID(),
			AbilityID: ab.ID,
			Kind:      data.MomentaryDamage,
			Amount:    10,
		}),
		listener.EXPECT().ActorDied(skill.ActorDied{ActorID: goblin.ObjectID(), KillerID: hero.ObjectID()}),
		listener.EXPECT().AttemptRejected(gomock.Any()).Do(func(ev skill.AttemptRejected) {
			assert.ErrorIs(t, ev.Reason, skill.ErrNoTarget)
		}),
	)

	require.NoError(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
	f.run(2, tick)
	assert.True(t, goblin.IsDead())

	f.run(3, tick)
	assert.Error(t, f.attempt(t, skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}, tick))
}

func TestEngine_ListenerStopReasons(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mockskill.NewMockListener(ctrl)

	f := newFixture(t, nil, listener)
	hero := f.spawn(t, 0, 0)
	goblin := f.spawn(t, 100, 0)
	ab := bolt(20, 5*time.Second, 0)
	req := skill.Request{SourceID: hero.ObjectID(), Ability: ab, TargetID: goblin.ObjectID()}

	listener.EXPECT().CastStarted(gomock.Any()).Times(2)
	gomock.InOrder(
		listener.EXPECT().CastStopped(gomock.Any()).Do(func(ev skill.CastEvent) {
			assert.Equal(t, skill.StopCancelled, ev.Reason)
		}),
		listener.EXPECT().CastStopped(gomock.Any()).Do(func(ev skill.CastEvent) {
			assert.Equal(t, skill.StopMovement, ev.Reason)
		}),
	)

	require.NoError(t, f.attempt(t, req, tick))
	f.engine.SubmitCancel(hero.ObjectID())
	f.run(4, tick)

	require.NoError(t, f.attempt(t, req, tick))
	hero.SetMoving(true)
	f.run(1, tick)
	assert.Nil(t, hero.Cast)
}

func TestEngine_ConcurrentSubmit(t *testing.T) {
	f := newFixture(t, nil, nil)
	hero := f.spawn(t, 0, 0)

	done := make(chan struct{})
	for range 8 {
		go func() {
			f.engine.SubmitCancel(hero.ObjectID())
			done <- struct{}{}
		}()
	}
	for range 8 {
		<-done
	}
	outcomes := f.engine.Tick(tick)
	assert.Len(t, outcomes, 8)
	for _, o := range outcomes {
		assert.ErrorIs(t, o.Err, skill.ErrNotCasting)
	}
}

func BenchmarkEngine_Tick(b *testing.B) {
	w := world.New(nil)
	roller := mockskill.NewFixedRoller()
	engine := skill.NewEngine(w, skill.DefaultRules(), roller, nil)

	ids := w.IDGenerator()
	var actors []*model.Actor
	for i := range 100 {
		a := model.NewActor(ids.NextCreatureID(), "goblin", model.NewLocation(float64(i%10)*20, float64(i/10)*20), 1_000_000, 100, 5, 0.1)
		_ = w.AddActor(a)
		actors = append(actors, a)
	}
	dot := &data.Ability{
		ID:     12,
		Name:   "Burn",
		Range:  500,
		Effect: data.TargetedEffect{Effect: data.DamageOverTime(1, 2, time.Second, time.Minute)},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		src := actors[i%len(actors)]
		engine.Submit(skill.Request{SourceID: src.ObjectID(), Ability: dot, TargetID: actors[(i+1)%len(actors)].ObjectID()})
		engine.Tick(50 * time.Millisecond)
	}
}
