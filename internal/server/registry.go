package server

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tg_dealshell/internal/miniapp"
)

//nolint:gochecknoglobals
var sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "dealshell",
	Name:      "sessions_active",
	Help:      "Mini app instances currently hosted.",
})

// hostedApp — один запущенный экземпляр мини-приложения. App не
// потокобезопасен, поэтому все события идут под mu.
type hostedApp struct {
	mu     sync.Mutex
	app    *miniapp.App
	bridge *recordingBridge

	// token выдаётся только запустившему клиенту и требуется в каждом
	// следующем запросе к экземпляру.
	token string
}

func (h *hostedApp) authorized(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(h.token), []byte(token)) == 1
}

// Registry хранит запущенные экземпляры, пока к ним обращаются. Неактивные
// удаляются по истечении ttl.
type Registry struct {
	items *gocache.Cache
	ttl   time.Duration
}

func NewRegistry(ttl, cleanupInterval time.Duration) *Registry {
	items := gocache.New(ttl, cleanupInterval)
	items.OnEvicted(func(string, any) {
		sessionsActive.Dec()
	})

	return &Registry{
		items: items,
		ttl:   ttl,
	}
}

// add регистрирует экземпляр под случайным id и выдаёт ему токен доступа.
func (r *Registry) add(h *hostedApp) string {
	id := uuid.NewString()
	h.token = uuid.NewString()

	r.items.Set(id, h, r.ttl)
	sessionsActive.Inc()

	return id
}

// get продлевает жизнь экземпляра при каждом обращении. Экземпляр, истёкший
// между чтением и продлением, считается удалённым: его уже снял janitor.
func (r *Registry) get(id string) (*hostedApp, bool) {
	v, ok := r.items.Get(id)
	if !ok {
		return nil, false
	}

	h, ok := v.(*hostedApp)
	if !ok {
		return nil, false
	}

	if err := r.items.Replace(id, h, r.ttl); err != nil {
		return nil, false
	}

	return h, true
}

func (r *Registry) Len() int {
	return r.items.ItemCount()
}
