package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gogpu/gg"
	"github.com/gorilla/websocket"

	"github.com/gogpu/wheel"
)

// command is the JSON message clients send.
type command struct {
	Action      string  `json:"action"`
	Speed       float64 `json:"speed,omitempty"`
	Rotation    float64 `json:"rotation,omitempty"`
	Index       int     `json:"index,omitempty"`
	DurationMS  int     `json:"duration_ms,omitempty"`
	Revolutions int     `json:"revolutions,omitempty"`
	Direction   int     `json:"direction,omitempty"`
	Center      bool    `json:"center,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
}

// frame is the JSON message broadcast to clients.
type frame struct {
	Type     string  `json:"type"`
	Rotation float64 `json:"rotation"`
	Index    int     `json:"index"`
	Spinning bool    `json:"spinning"`
	Method   string  `json:"method,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// server owns the wheel on its run goroutine. Client readers never
// touch the wheel directly; they send commands through cmds.
type server struct {
	wheel  *wheel.Wheel
	update time.Duration
	cmds   chan command
	logger *slog.Logger

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func newServer(w *wheel.Wheel, update time.Duration, logger *slog.Logger) *server {
	s := &server{
		wheel:  w,
		update: update,
		cmds:   make(chan command, 16),
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
	return s
}

// run is the single goroutine that owns the wheel: it applies commands
// and advances the animation off a frame ticker, broadcasting a frame
// after every change.
func (s *server) run() {
	ticker := time.NewTicker(s.update)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-s.cmds:
			s.apply(cmd)
			s.broadcastFrame("frame", "")
		case now := <-ticker.C:
			if !s.wheel.IsSpinning() && !s.wheel.IsDragging() {
				continue
			}
			if s.wheel.Advance(now) {
				s.broadcastFrame("frame", "")
			} else {
				s.broadcastFrame("rest", "")
			}
		}
	}
}

func (s *server) apply(cmd command) {
	var err error
	switch cmd.Action {
	case "spin":
		err = s.wheel.Spin(cmd.Speed)
	case "spinto":
		err = s.wheel.SpinTo(cmd.Rotation, time.Duration(cmd.DurationMS)*time.Millisecond, nil)
	case "spintoitem":
		direction := cmd.Direction
		if direction == 0 {
			direction = 1
		}
		err = s.wheel.SpinToItem(cmd.Index,
			time.Duration(cmd.DurationMS)*time.Millisecond,
			cmd.Center, cmd.Revolutions, direction, nil)
	case "stop":
		s.wheel.Stop()
	case "dragstart":
		s.wheel.DragStart(gg.Pt(cmd.X, cmd.Y), time.Now())
	case "dragmove":
		s.wheel.DragMove(gg.Pt(cmd.X, cmd.Y), time.Now())
	case "dragend":
		s.wheel.DragEnd(time.Now())
	default:
		s.logger.Warn("unknown command", "action", cmd.Action)
		return
	}
	if err != nil {
		s.logger.Warn("command rejected", "action", cmd.Action, "error", err)
		s.broadcastFrame("error", err.Error())
	}
}

func (s *server) broadcastFrame(kind, errMsg string) {
	f := frame{
		Type:     kind,
		Rotation: s.wheel.Rotation(),
		Index:    s.wheel.CurrentIndex(),
		Spinning: s.wheel.IsSpinning(),
		Error:    errMsg,
	}
	data, err := json.Marshal(f)
	if err != nil {
		s.logger.Error("marshal frame", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, send := range s.clients {
		select {
		case send <- data:
		default:
			// Slow client: drop the frame rather than stall the loop.
		}
	}
}

// handleWS upgrades the connection and starts its reader and writer.
func (s *server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	send := make(chan []byte, 32)
	s.mu.Lock()
	s.clients[conn] = send
	s.mu.Unlock()
	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	go s.writer(conn, send)
	s.reader(conn)
}

func (s *server) reader(conn *websocket.Conn) {
	defer s.drop(conn)
	for {
		var cmd command
		if err := conn.ReadJSON(&cmd); err != nil {
			s.logger.Info("client disconnected", "remote", conn.RemoteAddr(), "error", err)
			return
		}
		s.cmds <- cmd
	}
}

func (s *server) writer(conn *websocket.Conn, send chan []byte) {
	for data := range send {
		conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

func (s *server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	if send, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		close(send)
	}
	s.mu.Unlock()
	conn.Close()
}
