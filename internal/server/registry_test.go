package server

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegistryIssuesUnrelatedIDs(t *testing.T) {
	rq := require.New(t)

	r := NewRegistry(time.Minute, 0)

	a, b := &hostedApp{}, &hostedApp{}
	idA, idB := r.add(a), r.add(b)

	rq.Len(idA, 36)
	rq.NotEqual(idA, idB)
	rq.NotEqual(a.token, b.token)
	rq.NotEqual(idA, a.token)

	// соседние id различаются уже в первых символах
	rq.NotEqual(idA[:8], idB[:8])

	rq.True(a.authorized(a.token))
	rq.False(a.authorized(b.token))
	rq.False(a.authorized(""))
	rq.False((&hostedApp{}).authorized(""))
}

func TestRegistrySlidingTTL(t *testing.T) {
	rq := require.New(t)

	r := NewRegistry(150*time.Millisecond, 0)
	id := r.add(&hostedApp{})

	for range 3 {
		time.Sleep(80 * time.Millisecond)

		_, ok := r.get(id)
		rq.True(ok)
	}

	time.Sleep(200 * time.Millisecond)

	_, ok := r.get(id)
	rq.False(ok)
}

func TestRegistryGaugeTracksEviction(t *testing.T) {
	rq := require.New(t)

	base := testutil.ToFloat64(sessionsActive)

	r := NewRegistry(50*time.Millisecond, 0)

	expired := r.add(&hostedApp{})
	removed := r.add(&hostedApp{})
	rq.InDelta(base+2, testutil.ToFloat64(sessionsActive), 0)

	// экземпляр снят между чтением и продлением: get не должен вернуть его в реестр
	r.items.Delete(removed)
	rq.InDelta(base+1, testutil.ToFloat64(sessionsActive), 0)

	_, ok := r.get(removed)
	rq.False(ok)
	rq.Equal(1, r.Len())

	time.Sleep(80 * time.Millisecond)

	_, ok = r.get(expired)
	rq.False(ok)

	r.items.DeleteExpired()
	rq.InDelta(base, testutil.ToFloat64(sessionsActive), 0)
	rq.Zero(r.Len())
}
