package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/tictactoe3d/internal/entity"
	"github.com/rocketscienceinc/tictactoe3d/internal/pkg"
	"github.com/rocketscienceinc/tictactoe3d/internal/repository"
	"github.com/rocketscienceinc/tictactoe3d/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe3d/internal/usecase"
)

const (
	sessionCookieName = "user_session"
	sessionCookieTTL  = 24 * time.Hour
	shutdownTimeout   = 5 * time.Second
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidMessage = errors.New("invalid message")
)

type sessionRepository interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
}

type handlerFunc func(ctx context.Context, controller *usecase.TurnController, message *Message) error

type Server struct {
	logger     *slog.Logger
	rootLogger *slog.Logger
	sessions   sessionRepository

	computerDelay time.Duration
	gameOptions   []tictactoe.Option

	handlers map[string]handlerFunc
}

type Option func(*Server)

// WithGameOptions - options applied to every game the server creates or restores.
func WithGameOptions(opts ...tictactoe.Option) Option {
	return func(server *Server) {
		server.gameOptions = append(server.gameOptions, opts...)
	}
}

func New(logger *slog.Logger, sessions sessionRepository, computerDelay time.Duration, opts ...Option) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		rootLogger: logger,
		sessions:   sessions,

		computerDelay: computerDelay,

		handlers: make(map[string]handlerFunc),
	}

	for _, opt := range opts {
		opt(server)
	}

	server.handlers[actionCellSelect] = server.handleCellSelect
	server.handlers[actionGameReset] = server.handleGameReset
	server.handlers[actionTeamSet] = server.handleTeamSet

	return server
}

func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Get("/ws", that.serveSession)

	return router
}

// Start - starts WebSocket server and stops it when ctx is done.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveSession - upgrades the connection and plays one session until the browser goes away.
func (that *Server) serveSession(writer http.ResponseWriter, req *http.Request) {
	sessionID := that.setSessionCookie(writer, req)
	log := that.logger.With("method", "serveSession", "session", sessionID)

	conn, err := websocket.Accept(writer, req, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}

	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := req.Context()

	game, err := that.loadGame(ctx, sessionID)
	if err != nil {
		log.Error("failed to load session", "error", err)
		_ = conn.Close(websocket.StatusInternalError, "failed to load session")
		return
	}

	view := newSocketView(that.logger.With("session", sessionID))
	controller := usecase.NewTurnController(that.rootLogger, sessionID, game, view, that.sessions, that.computerDelay)

	writerDone := make(chan struct{})
	go that.writeMessages(ctx, conn, view.send, writerDone)

	log.Info("WebSocket connection established")

	controller.Start(ctx)
	that.handleMessages(ctx, conn, controller, view)

	controller.Close()
	view.close()
	<-writerDone

	log.Info("WebSocket connection closed")
}

// loadGame - restores the stored session or starts a fresh game.
func (that *Server) loadGame(ctx context.Context, sessionID string) (*tictactoe.Game, error) {
	snapshot, err := that.sessions.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return tictactoe.NewGame(that.gameOptions...), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	game, err := tictactoe.Restore(snapshot, that.gameOptions...)
	if err != nil {
		that.logger.Warn("stored session is broken, starting over", "session", sessionID, "error", err)
		return tictactoe.NewGame(that.gameOptions...), nil
	}

	return game, nil
}

// handleMessages - processes messages from the client until the connection drops.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, controller *usecase.TurnController, view *socketView) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				return
			}

			log.Warn("error reading message", "error", err)
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			view.SendError(ErrInvalidMessage)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			view.SendError(fmt.Errorf("%w: %q", ErrUnknownAction, message.Action))
			continue
		}

		if err = handler(ctx, controller, &message); err != nil {
			log.Warn("error processing message", "action", message.Action, "error", err)
			view.SendError(err)
		}
	}
}

func (that *Server) writeMessages(ctx context.Context, conn *websocket.Conn, send <-chan []byte, done chan<- struct{}) {
	defer close(done)

	for message := range send {
		if err := conn.Write(ctx, websocket.MessageText, message); err != nil {
			that.logger.Debug("failed to write message", "error", err)
			break
		}
	}

	// the view must never block, so keep draining after a failed write
	for range send {
	}
}

// setSessionCookie - returns the user session, creating the cookie when it is missing.
func (that *Server) setSessionCookie(writer http.ResponseWriter, req *http.Request) string {
	log := that.logger.With("method", "setSessionCookie")

	cookie, err := req.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		log.Debug("session cookie found", "cookie", cookie.Value)
		return cookie.Value
	}

	cookie = &http.Cookie{
		Name:     sessionCookieName,
		Value:    pkg.GenerateNewSessionID(),
		Expires:  time.Now().Add(sessionCookieTTL),
		Path:     "/ws",
		HttpOnly: true,
	}
	http.SetCookie(writer, cookie)
	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return cookie.Value
}
