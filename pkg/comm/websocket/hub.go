package websocket

import (
	"io"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"
)

// Hub broadcasts packets to all connected websocket clients.
// It implements PacketWriter and http.Handler.
type Hub struct {
	lock  sync.RWMutex
	conns map[*ReadWriter]struct{}
}

// NewHub creates a Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*ReadWriter]struct{})}
}

// ServeHTTP implements http.Handler.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(h.serve).ServeHTTP(w, r)
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return len(h.conns)
}

// WritePacket implements PacketWriter. Clients failing to receive are
// disconnected.
func (h *Hub) WritePacket(pkt []byte) error {
	h.lock.RLock()
	conns := make([]*ReadWriter, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.lock.RUnlock()
	for _, conn := range conns {
		if err := conn.WritePacket(pkt); err != nil {
			glog.Warningf("websocket %s: %v", conn.remote(), err)
			h.remove(conn)
			conn.Close()
		}
	}
	return nil
}

func (h *Hub) serve(conn *websocket.Conn) {
	rw := New(conn)
	h.lock.Lock()
	h.conns[rw] = struct{}{}
	h.lock.Unlock()
	glog.V(2).Infof("websocket %s connected", rw.remote())
	defer h.remove(rw)
	// incoming packets are ignored, reading only detects the close.
	for {
		if _, err := rw.ReadPacket(); err != nil {
			if err != io.EOF {
				glog.V(2).Infof("websocket %s: %v", rw.remote(), err)
			}
			return
		}
	}
}

func (h *Hub) remove(rw *ReadWriter) {
	h.lock.Lock()
	delete(h.conns, rw)
	h.lock.Unlock()
}

func (p *ReadWriter) remote() string {
	if req := (*websocket.Conn)(p).Request(); req != nil {
		return req.RemoteAddr
	}
	return (*websocket.Conn)(p).RemoteAddr().String()
}
