package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversByType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, CombatantDamaged, MatchEnded)

	d.Dispatch(Event{Type: CombatantDamaged, Data: DamageData{Target: 3, Amount: 1}})
	d.Dispatch(Event{Type: ProjectileFired})
	d.Dispatch(Event{Type: MatchEnded})

	if assert.Len(t, r.got, 2) {
		assert.Equal(t, CombatantDamaged, r.got[0].Type)
		assert.Equal(t, DamageData{Target: 3, Amount: 1}, r.got[0].Data)
		assert.Equal(t, MatchEnded, r.got[1].Type)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ChampionCrowned, a)
	d.Subscribe(ChampionCrowned, b)
	d.Unsubscribe(ChampionCrowned, a)

	d.Dispatch(Event{Type: ChampionCrowned})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(MatchEnded, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: MatchEnded})
	assert.Equal(t, 1, calls)
}
