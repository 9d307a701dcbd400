package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"orderdispatch/internal/adapters/out/bus"
	"orderdispatch/internal/core/application/usecases/queries"
	"orderdispatch/internal/core/domain/model/kernel"
	"orderdispatch/internal/core/ports"
	"orderdispatch/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Control message types sent by clients.
const (
	MsgJoinOrder      = "join_order"
	MsgLeaveOrder     = "leave_order"
	MsgJoinRestaurant = "join_restaurant"
	MsgJoinDrivers    = "join_drivers"
	MsgDriverLocation = "driver:location_update"

	eventError ports.Event = "error"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
)

// RoomHub is the session registry the WebSocket endpoint subscribes to.
type RoomHub interface {
	Subscribe() *bus.Subscriber
	Join(s *bus.Subscriber, room ports.Room)
	Leave(s *bus.Subscriber, room ports.Room)
	Unsubscribe(s *bus.Subscriber)
}

// ControlMessage is a client request on the socket.
type ControlMessage struct {
	Type         string   `json:"type"`
	OrderID      string   `json:"orderId"`
	RestaurantID string   `json:"restaurantId"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are checked by the gateway.
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocket handles GET /ws. A session starts in no room and joins rooms
// with control messages; frames published while it is not joined are not
// replayed.
func (s *Server) WebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil //nolint:nilerr // the upgrader has already replied
	}

	sess := &session{
		server:    s,
		conn:      conn,
		sub:       s.hub.Subscribe(),
		replies:   make(chan []byte, 8),
		principal: optionalPrincipal(c),
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(c.Request().Context()))
	defer cancel()

	go sess.writeLoop(ctx)
	sess.readLoop(ctx)

	s.hub.Unsubscribe(sess.sub)
	return nil
}

type session struct {
	server    *Server
	conn      *websocket.Conn
	sub       *bus.Subscriber
	replies   chan []byte
	principal *kernel.Principal
}

func (ss *session) readLoop(ctx context.Context) {
	defer ss.conn.Close()

	ss.conn.SetReadLimit(maxMessageSize)
	_ = ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	ss.conn.SetPongHandler(func(string) error {
		return ss.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := ss.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ss.server.logger.WarnContext(ctx, "websocket closed unexpectedly", "error", err)
			}
			return
		}
		var msg ControlMessage
		if err = json.Unmarshal(raw, &msg); err != nil {
			ss.reply(ctx, "malformed message")
			continue
		}
		if err = ss.handle(ctx, msg); err != nil {
			ss.reply(ctx, err.Error())
		}
	}
}

func (ss *session) handle(ctx context.Context, msg ControlMessage) error {
	hub := ss.server.hub

	switch msg.Type {
	case MsgJoinOrder, MsgLeaveOrder:
		orderID, err := kernel.UUIDFromString(msg.OrderID)
		if err != nil {
			return err
		}
		if msg.Type == MsgJoinOrder {
			hub.Join(ss.sub, ports.OrderRoom(orderID))
		} else {
			hub.Leave(ss.sub, ports.OrderRoom(orderID))
		}
		return nil

	case MsgJoinRestaurant:
		if !ss.hasRole(kernel.RoleRestaurant) {
			return errors.New("only restaurant staff may join a restaurant room")
		}
		restaurantID, err := kernel.UUIDFromString(msg.RestaurantID)
		if err != nil {
			return err
		}
		if err = ss.checkOwnership(ctx, restaurantID); err != nil {
			return err
		}
		hub.Join(ss.sub, ports.RestaurantRoom(restaurantID))
		return nil

	case MsgJoinDrivers:
		if !ss.hasRole(kernel.RoleDriver) {
			return errors.New("only drivers may join the drivers room")
		}
		hub.Join(ss.sub, ports.DriversRoom)
		return nil

	case MsgDriverLocation:
		if ss.principal == nil || !ss.principal.Is(kernel.RoleDriver) {
			return errors.New("only drivers may report a location")
		}
		if msg.Latitude == nil || msg.Longitude == nil {
			return errors.New("latitude and longitude are required")
		}
		cmd, err := newLocationCommand(*ss.principal, *msg.Latitude, *msg.Longitude, msg.OrderID)
		if err != nil {
			return err
		}
		return ss.server.handlers.UpdateDriverLocation.Handle(ctx, cmd)

	default:
		return errors.New("unknown message type " + msg.Type)
	}
}

// checkOwnership lets admins into any restaurant room and owners into their
// own.
func (ss *session) checkOwnership(ctx context.Context, restaurantID kernel.UUID) error {
	if ss.principal.IsAdmin() {
		return nil
	}
	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return err
	}
	view, err := ss.server.handlers.GetRestaurant.Handle(ctx, query)
	if err != nil {
		return err
	}
	if !view.IsOwnedBy(ss.principal.UserID) {
		return errs.NewForbiddenError("join restaurant room", "not your restaurant")
	}
	return nil
}

// hasRole reports whether the session principal holds role or is an admin.
func (ss *session) hasRole(role kernel.Role) bool {
	return ss.principal != nil && (ss.principal.IsAdmin() || ss.principal.Is(role))
}

func (ss *session) reply(ctx context.Context, message string) {
	frame, err := bus.EncodeFrame("", eventError, map[string]string{"message": message})
	if err != nil {
		return
	}
	select {
	case ss.replies <- frame:
	case <-ctx.Done():
	default:
		ss.server.logger.DebugContext(ctx, "dropping websocket reply, session is not reading")
	}
}

// writeLoop is the only writer of the connection.
func (ss *session) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer ss.conn.Close()

	for {
		var frame []byte
		select {
		case <-ctx.Done():
			return
		case f, ok := <-ss.sub.Frames():
			if !ok {
				return
			}
			frame = f
		case frame = <-ss.replies:
		case <-ticker.C:
			_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ss.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			continue
		}

		_ = ss.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ss.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return
		}
	}
}
