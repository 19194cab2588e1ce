package ecs

import (
	"testing"

	"github.com/milk9111/runandgun/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRecyclingBumpsGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	e := CreateEntity(w)
	require.NoError(t, Add(w, e, kind, intPtr(1)))
	require.True(t, DestroyEntity(w, e))
	assert.False(t, DestroyEntity(w, e), "double destroy")

	reused := CreateEntity(w)
	assert.Equal(t, e.id(), reused.id())
	assert.NotEqual(t, e.generation(), reused.generation())
	assert.False(t, IsAlive(w, e))
	assert.False(t, Has(w, reused, kind), "components do not survive recycling")

	_, ok := Get(w, e, kind)
	assert.False(t, ok)
	assert.ErrorIs(t, Add(w, e, kind, intPtr(2)), component.ErrEntityNotAlive)
}

func TestAddRejectsBadArguments(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	assert.ErrorIs(t, Add[int](w, e, component.ComponentKind[int]{}, intPtr(1)), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add[int](w, e, component.NewComponentKind[int](), nil), component.ErrNilComponent)
}

func TestFirstAndDestroyDuringIteration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[string]()

	var ents []Entity
	for _, s := range []string{"a", "b", "c"} {
		e := CreateEntity(w)
		require.NoError(t, Add(w, e, kind, stringPtr(s)))
		ents = append(ents, e)
	}

	e, v, ok := First(w, kind)
	require.True(t, ok)
	assert.Equal(t, ents[0], e)
	assert.Equal(t, "a", *v)

	seen := 0
	ForEach(w, kind, func(e Entity, _ *string) {
		seen++
		DestroyEntity(w, e)
	})
	assert.Equal(t, 3, seen)
	assert.Empty(t, Entities(w))

	_, _, ok = First(w, kind)
	assert.False(t, ok)
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "one"})
	w.Events().Push(Event{Type: "two", Data: 2})
	assert.Equal(t, 2, w.Events().Len())

	got := w.Events().Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Type)
	assert.Equal(t, 2, got[1].Data)
	assert.Nil(t, w.Events().Drain())

	w.Events().Push(Event{Type: "stale"})
	w.Clear()
	assert.Zero(t, w.Events().Len())
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(*World) { *s.calls = append(*s.calls, s.name) }

func TestSchedulerRunsInOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(countingSystem{&calls, "a"})
	s.Add(nil)
	s.Add(countingSystem{&calls, "b"})
	s.Update(NewWorld())
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Len(t, s.Systems(), 2)
}
