package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tg_dealshell/internal/domain/value"
	"tg_dealshell/pkg/rest"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
)

//nolint:gochecknoglobals
var (
	screenViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealshell",
		Name:      "screen_views_total",
		Help:      "Screens shown by hosted mini app instances.",
	}, []string{"screen"})

	events = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dealshell",
		Name:      "events_total",
		Help:      "Client events handled by the host.",
	}, []string{"type", "result"})
)

func countScreenView(screen value.Screen) {
	screenViews.WithLabelValues(screen.String()).Inc()
}

func countEvent(t rest.EventType, result string) {
	events.WithLabelValues(string(t), result).Inc()
}
