// Package stream serves unbounded Eller mazes over WebSocket. Each
// connection owns one EllerStream; the client pulls rows in batches and
// closes the maze when it has seen enough.
//
// Protocol (JSON text frames):
//
//	client → {"rows": n}      request n more inner rows (1..MaxBatch)
//	client → {"finish": true} request the closing row
//	server → Frame            one frame per row; the closing row has Last set
//	server → {"error": "..."} then closes the connection
//
// The endpoint takes the width and seed as query parameters:
// /eller?width=12&seed=7.
package stream

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/random"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed between client requests.
	readWait = 5 * time.Minute

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// MaxWidth bounds the width of a streamed maze.
	MaxWidth = 1024

	// MaxBatch bounds the rows of one request.
	MaxBatch = 256
)

// ErrBadRequest indicates invalid query parameters or client messages.
var ErrBadRequest = errors.New("stream: bad request")

// Request is a client message.
type Request struct {
	Rows   int  `json:"rows,omitempty"`
	Finish bool `json:"finish,omitempty"`
}

// Frame is a server message carrying one row.
type Frame struct {
	Y     int    `json:"y"`
	East  []bool `json:"east"`
	South []bool `json:"south"`
	Last  bool   `json:"last,omitempty"`
	Error string `json:"error,omitempty"`
}

// Server is an http.Handler for the Eller endpoint.
type Server struct {
	// Logger records connection events. Nil discards them.
	Logger *slog.Logger

	upgrader websocket.Upgrader
}

// NewServer creates a server logging to logger.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		Logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Mux returns a mux with the server mounted at /eller.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/eller", s)
	return mux
}

// ServeHTTP validates the query, upgrades the connection and streams rows.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	width, seed, err := parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.Logger.Info("stream opened", "remote", r.RemoteAddr, "width", width, "seed", seed)
	rows, err := s.serve(conn, width, seed)
	if err != nil {
		s.Logger.Info("stream ended", "remote", r.RemoteAddr, "rows", rows, "error", err)
		return
	}
	s.Logger.Info("stream finished", "remote", r.RemoteAddr, "rows", rows)
}

// serve runs the request loop of one connection and returns the number of
// rows sent.
func (s *Server) serve(conn *websocket.Conn, width int, seed int64) (int, error) {
	es, err := generate.NewEllerStream(width, random.New(seed))
	if err != nil {
		return 0, err
	}
	conn.SetReadLimit(maxMessageSize)
	sent := 0
	for {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			return sent, err
		}
		switch {
		case req.Finish:
			if err := send(conn, frameOf(es.Finish(), true)); err != nil {
				return sent, err
			}
			sent++
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			return sent, conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "finished"))
		case req.Rows >= 1 && req.Rows <= MaxBatch:
			for range req.Rows {
				if err := send(conn, frameOf(es.Next(), false)); err != nil {
					return sent, err
				}
				sent++
			}
		default:
			err := fmt.Errorf("%w: rows must be in [1, %d]", ErrBadRequest, MaxBatch)
			_ = send(conn, Frame{Error: err.Error()})
			return sent, err
		}
	}
}

func send(conn *websocket.Conn, f Frame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(f)
}

func frameOf(r generate.Row, last bool) Frame {
	return Frame{Y: r.Y, East: r.East, South: r.South, Last: last}
}

// Row converts a frame back into a generator row.
func (f Frame) Row() generate.Row {
	return generate.Row{Y: f.Y, East: f.East, South: f.South}
}

func parseQuery(r *http.Request) (int, int64, error) {
	q := r.URL.Query()
	width, err := strconv.Atoi(q.Get("width"))
	if err != nil || width < 1 || width > MaxWidth {
		return 0, 0, fmt.Errorf("%w: width must be in [1, %d]", ErrBadRequest, MaxWidth)
	}
	var seed int64
	if v := q.Get("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: seed: %w", ErrBadRequest, err)
		}
	}
	return width, seed, nil
}
