package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"tg_dealshell/internal/domain/entity"
	"tg_dealshell/internal/infrastructure/outbound"
	"tg_dealshell/internal/infrastructure/webapp"
	"tg_dealshell/internal/miniapp"
	"tg_dealshell/pkg/contextx"
	"tg_dealshell/pkg/errcodes"
	"tg_dealshell/pkg/httpx/reply"
	"tg_dealshell/pkg/httpx/req"
	"tg_dealshell/pkg/logx"
	"tg_dealshell/pkg/rest"
)

type initDataParser interface {
	Parse(raw string) (webapp.InitData, error)
}

type profileStore interface {
	Load(ctx context.Context, profile *entity.Profile)
	Save(ctx context.Context, profile entity.Profile) error
}

// SessionServer запускает экземпляры мини-приложения и передаёт им события клиента.
type SessionServer struct {
	sessions  *Registry
	initData  initDataParser
	profiles  profileStore
	appConfig miniapp.Config
}

func NewSessionServer(
	sessions *Registry,
	initData initDataParser,
	profiles profileStore,
	appConfig miniapp.Config,
) SessionServer {
	return SessionServer{
		sessions:  sessions,
		initData:  initData,
		profiles:  profiles,
		appConfig: appConfig,
	}
}

func (s SessionServer) postV1Sessions(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateSessionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	initData, err := s.initData.Parse(request.InitData)
	if err != nil {
		return failure.NewUnauthorizedError(
			fmt.Errorf("initData.Parse: %w", err).Error(),
			failure.WithCode(errcodes.InvalidInitData),
			failure.WithDescription("Invalid init data"),
		)
	}

	query, err := miniapp.ParseLaunchQuery(request.Query)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("miniapp.ParseLaunchQuery: %w", err),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	bridge := newRecordingBridge(lo.FromPtrOr(request.ClipboardAvailable, true))
	app := miniapp.New(s.appConfig, bridge, s.profiles, outbound.NewChannel(bridge))
	app.Navigator().OnShow(countScreenView)

	params := newLaunchParams(initData, query)

	h := &hostedApp{app: app, bridge: bridge}
	id := s.sessions.add(h)
	ctx = sessionContext(ctx, id, params.User.ID)

	h.mu.Lock()
	defer h.mu.Unlock()

	app.Launch(ctx, params)

	logger(ctx).Info("mini app launched", slog.String("screen", app.Navigator().Current().String()))

	session := newRESTSession(id, h, bridge.drain())
	session.SessionToken = h.token

	reply.JSON(ctx, w, http.StatusCreated, session)

	return nil
}

func (s SessionServer) getV1Session(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	h, err := s.find(r, id)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(id, h, []rest.Effect{}))

	return nil
}

func (s SessionServer) postV1SessionEvent(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var event rest.Event

	if err := req.Read(r, &event); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	h, err := s.find(r, id)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx = sessionContext(ctx, id, h.app.Profile().UserID)

	if h.app.Closed() {
		countEvent(event.Type, resultRejected)

		return failure.NewInvalidArgumentError(
			errSessionClosed.Error(),
			failure.WithCode(errcodes.SessionClosed),
			failure.WithDescription("Mini app is closed"),
		)
	}

	if err = dispatch(ctx, h, event); err != nil {
		countEvent(event.Type, resultRejected)

		return failure.NewInvalidArgumentError(
			fmt.Errorf("dispatch %s: %w", event.Type, err).Error(),
			failure.WithCode(errcodes.InvalidEvent),
			failure.WithDescription(err.Error()),
		)
	}

	countEvent(event.Type, resultOK)

	reply.JSON(ctx, w, http.StatusOK, newRESTSession(id, h, h.bridge.drain()))

	return nil
}

// find возвращает экземпляр, если запрос несёт выданный при запуске токен.
func (s SessionServer) find(r *http.Request, id string) (*hostedApp, error) {
	h, ok := s.sessions.get(id)
	if !ok {
		return nil, failure.NewNotFoundError(
			fmt.Sprintf("session %q not found", id),
			failure.WithCode(errcodes.SessionNotFound),
			failure.WithDescription("Session not found or expired"),
		)
	}

	if !h.authorized(r.Header.Get(rest.HeaderSessionToken)) {
		return nil, failure.NewUnauthorizedError(
			fmt.Sprintf("session %q: %s", id, errSessionToken),
			failure.WithCode(errcodes.InvalidSessionToken),
			failure.WithDescription("Invalid session token"),
		)
	}

	return h, nil
}

func newLaunchParams(initData webapp.InitData, query url.Values) miniapp.LaunchParams {
	params := miniapp.LaunchParams{
		StartParam: initData.StartParam,
		Query:      query,
	}

	if u := initData.User; u != nil {
		params.User = miniapp.LaunchUser{
			ID:        lo.ToPtr(u.ID),
			Username:  u.Username,
			FirstName: u.FirstName,
		}
	}

	return params
}

// sessionContext добавляет в контекст пользователя и id сессии для логов.
func sessionContext(ctx context.Context, sessionID string, userID *int64) context.Context {
	log := logger(ctx).With(slog.String(logx.FieldSessionID, sessionID))

	if userID != nil {
		uid := contextx.UserID(strconv.FormatInt(*userID, 10))
		ctx = contextx.WithUserID(ctx, uid)
		log = log.With(slog.String(logx.FieldUserID, uid.String()))
	}

	return contextx.WithLogger(ctx, log)
}
