package remote

import (
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gogpu/paint"
)

const (
	shutdownTimeout = 5 * time.Second

	// maxMessageSize bounds one websocket message. Events are small JSON
	// objects.
	maxMessageSize = 4 << 10
)

// Server exposes a controller over HTTP. Create it with NewServer, start
// the dispatcher with Run (or use Serve, which does both) and mount Handler.
type Server struct {
	log      *slog.Logger
	disp     *dispatcher
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

// NewServer returns a server for c. The server takes ownership of c: once
// Run has started, c must only be used through the server.
func NewServer(c *paint.Controller, opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{
		log:      o.logger,
		disp:     newDispatcher(c, o.queueSize),
		upgrader: websocket.Upgrader{CheckOrigin: o.checkOrigin},
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /ws", s.serveWS)
	s.mux.HandleFunc("GET /persistent.png", s.servePNG((*paint.Controller).Image))
	s.mux.HandleFunc("GET /overlay.png", s.servePNG((*paint.Controller).OverlayImage))
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Run executes controller work until ctx is cancelled.
func (s *Server) Run(ctx context.Context) {
	s.disp.run(ctx)
}

// Do runs fn with exclusive access to the controller.
func (s *Server) Do(ctx context.Context, fn func(*paint.Controller)) error {
	return s.disp.do(ctx, fn)
}

// Serve runs the dispatcher and an HTTP server on ln until ctx is
// cancelled, then shuts the HTTP server down. When Serve returns the
// dispatcher has stopped and the controller may be used directly again.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		<-s.disp.done
	}()

	go s.Run(ctx)

	hs := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()
	s.log.Info("remote: listening", slog.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutCtx, shutCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutCancel()
	if err := hs.Shutdown(shutCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("remote: upgrade failed", slog.Any("err", err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	id := uuid.NewString()
	log := s.log.With(slog.String("conn", id))
	log.Info("remote: client connected", slog.String("remote", r.RemoteAddr))
	defer log.Info("remote: client disconnected")

	ctx := r.Context()
	// Hijacked connections outlive http.Server.Shutdown; close them when the
	// request context ends.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for seq := uint64(1); ; seq++ {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("remote: read failed", slog.Any("err", err))
			}
			return
		}

		reply := Reply{ID: id, Seq: seq}
		var applyErr error
		err := s.disp.do(ctx, func(c *paint.Controller) {
			applyErr = Apply(c, ev)
			reply.Tool = c.Tool().String()
		})
		if err == nil {
			err = applyErr
		}
		if err != nil {
			reply.Error = err.Error()
			log.Debug("remote: event failed", slog.String("type", ev.Type), slog.Any("err", err))
		}

		if err := conn.WriteJSON(reply); err != nil {
			log.Debug("remote: write failed", slog.Any("err", err))
			return
		}
	}
}

func (s *Server) servePNG(snapshot func(*paint.Controller) (*image.RGBA, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			img    *image.RGBA
			imgErr error
		)
		err := s.disp.do(r.Context(), func(c *paint.Controller) {
			img, imgErr = snapshot(c)
		})
		if err == nil {
			err = imgErr
		}
		if err != nil {
			s.log.Debug("remote: snapshot failed", slog.String("path", r.URL.Path), slog.Any("err", err))
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			s.log.Debug("remote: encode failed", slog.Any("err", err))
		}
	}
}
