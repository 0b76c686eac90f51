package mux

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// sendBuffer is how many replies can queue before the read loop blocks
const sendBuffer = 16

type wsRequest struct {
	ID string `json:"id"`
	rankPayload
}

type wsResponse struct {
	ID     string        `json:"id,omitempty"`
	Result *rankResponse `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type wsClient struct {
	conn   *websocket.Conn
	send   chan wsResponse
	logger logrus.FieldLogger
}

// getWS ranks every hand a client sends over a websocket
// Each reply echoes the request's id so clients can pipeline requests.
func (m *Mux) getWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			m.logger.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		id := uuid.New().String()
		client := &wsClient{
			conn: conn,
			send: make(chan wsResponse, sendBuffer),
			logger: m.logger.WithFields(logrus.Fields{
				"client":     id,
				"remoteAddr": remoteAddr(r),
			}),
		}

		client.logger.Info("client connected")

		done := make(chan bool)
		go m.webSocketWriteLoop(client, done)
		m.webSocketReadLoop(client)

		close(client.send)
		<-done
		_ = conn.Close()
		client.logger.Info("client disconnected")
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient, done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()

		// drain so the read loop never blocks on a dead connection
		for range client.send {
		}
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-client.send:
			if !ok {
				_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			msgBytes, _ := json.Marshal(msg)
			client.logger.WithField("message", string(msgBytes)).Trace("sending message to client")

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				client.logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(client *wsClient) {
	for {
		var msg wsRequest
		if err := client.conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				client.send <- wsResponse{Error: "could not parse message"}
				continue
			}

			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				client.logger.WithError(err).Error("could not read message")
			}

			return
		}

		resp := wsResponse{ID: msg.ID}
		result, err := m.rank(msg.rankPayload)
		if err != nil {
			if !isUserError(err) {
				client.logger.WithError(err).Error("could not rank hand")
			}

			resp.Error = err.Error()
		} else {
			resp.Result = result
		}

		client.send <- resp
	}
}
