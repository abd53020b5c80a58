package ws

import (
	"context"
	"net/http"

	"backend/notify"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// OrderFeed pushes order events to the users they concern: the order owner
// and, once assigned, the delivery crew member. One user may hold several
// connections.
type OrderFeed struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of conns
	events     chan notify.OrderEvent
	register   chan subscription
	unregister chan subscription
	logger     zerolog.Logger
}

type subscription struct {
	conn   *websocket.Conn
	userID uint
}

func NewOrderFeed(logger zerolog.Logger) *OrderFeed {
	return &OrderFeed{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		events:     make(chan notify.OrderEvent, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		logger:     logger,
	}
}

// Run owns the client map; registrations, disconnects and event delivery
// all go through the same goroutine.
func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			if f.clients[sub.userID] == nil {
				f.clients[sub.userID] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.userID][sub.conn] = true

		case sub := <-f.unregister:
			if _, ok := f.clients[sub.userID][sub.conn]; ok {
				delete(f.clients[sub.userID], sub.conn)
				sub.conn.Close()
			}

		case ev := <-f.events:
			f.deliver(ev.UserID, ev)
			if ev.DeliveryCrewID != nil && *ev.DeliveryCrewID != ev.UserID {
				f.deliver(*ev.DeliveryCrewID, ev)
			}
		}
	}
}

func (f *OrderFeed) deliver(userID uint, ev notify.OrderEvent) {
	for conn := range f.clients[userID] {
		if err := conn.WriteJSON(ev); err != nil {
			f.logger.Warn().Err(err).Uint("userId", userID).Msg("ws write failed")
			conn.Close()
			delete(f.clients[userID], conn)
		}
	}
}

// Publish implements notify.Publisher so the feed can sit in the same
// fanout as the AMQP publisher.
func (f *OrderFeed) Publish(_ context.Context, ev notify.OrderEvent) error {
	f.events <- ev
	return nil
}

func (f *OrderFeed) Close() error { return nil }

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: GET /ws/orders (auth via WSAuthMiddleware)
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		f.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	sub := subscription{conn: conn, userID: userID}
	f.register <- sub

	go f.drain(sub)
}

// drain discards client frames; the feed is one-way. A read error means the
// client went away.
func (f *OrderFeed) drain(sub subscription) {
	defer func() { f.unregister <- sub }()
	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
