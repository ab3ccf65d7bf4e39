package outbound

import (
	"context"
	"fmt"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tg_dealshell/internal/domain"
	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/pkg/contextx"
	"tg_dealshell/pkg/errcodes"
	"tg_dealshell/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals

	actionsSent = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Namespace: "dealshell",
		Name:      "actions_sent_total",
		Help:      "Outbound actions handed to the host bridge.",
	}, []string{"action", "result"})
)

// dataSender — мост платформы. Ответа на отправку не бывает: бот отвечает
// сообщением в чат или повторным запуском приложения.
type dataSender interface {
	SendData(ctx context.Context, data string) error
}

type Channel struct {
	sender dataSender
}

func NewChannel(sender dataSender) *Channel {
	return &Channel{sender: sender}
}

// Send сериализует действие и передаёт его мосту один раз, без повторов.
func (c *Channel) Send(ctx context.Context, action entity.Action) error {
	name := action.ActionName().String()

	data, err := Encode(action)
	if err != nil {
		actionsSent.WithLabelValues(name, "encode_error").Inc()

		return err
	}

	logger(ctx).Info("sending action to bot", slog.String("action", name))

	if err = c.sender.SendData(ctx, data); err != nil {
		actionsSent.WithLabelValues(name, "bridge_error").Inc()
		logger(ctx).Error("bridge.SendData", slog.String("action", name), logx.Error(err))

		return domain.WrapError(err, errcodes.BridgeFailure, "sender.SendData")
	}

	actionsSent.WithLabelValues(name, "ok").Inc()

	return nil
}

// Encode возвращает JSON-представление действия в том виде, в каком его ждёт бот.
func Encode(action entity.Action) (string, error) {
	data, err := json.MarshalToString(action)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}
