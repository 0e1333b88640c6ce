package live_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/gin-gonic/gin"
	"github.com/eventhub-dev/eventhub/internal/live"
	"github.com/gorilla/websocket"
)

func newFeedServer(t *testing.T) (*live.Hub, string) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	hub := live.NewHub()
	r := gin.New()
	r.GET("/ws", hub.HandleConnection)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dialFeed(t *testing.T, url, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	header := http.Header{}
	header.Set("Origin", origin)

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	return dialer.Dial(url, header)
}

func TestFeedDeliversBroadcasts(t *testing.T) {
	c := qt.New(t)
	hub, url := newFeedServer(t)

	conn, _, err := dialFeed(t, url, "http://localhost:3000")
	c.Assert(err, qt.IsNil)
	defer conn.Close()

	c.Assert(conn.SetReadDeadline(time.Now().Add(5*time.Second)), qt.IsNil)

	var hello live.Event
	c.Assert(conn.ReadJSON(&hello), qt.IsNil)
	c.Assert(hello.Type, qt.Equals, "connected")

	// The handler registers the client before sending the hello, so the
	// broadcast below is guaranteed to reach it.
	hub.Broadcast(live.Event{Type: "media_created", Payload: map[string]interface{}{"eventId": 1}})

	var event live.Event
	c.Assert(conn.ReadJSON(&event), qt.IsNil)
	c.Assert(event.Type, qt.Equals, "media_created")
}

func TestFeedRejectsUnknownOrigin(t *testing.T) {
	c := qt.New(t)
	_, url := newFeedServer(t)

	conn, resp, err := dialFeed(t, url, "http://evil.example.com")
	if conn != nil {
		conn.Close()
	}

	c.Assert(err, qt.IsNotNil)
	c.Assert(resp, qt.IsNotNil)
	c.Assert(resp.StatusCode, qt.Equals, http.StatusForbidden)
}

func TestBroadcastWithoutClientsIsNoop(t *testing.T) {
	hub := live.NewHub()
	hub.Broadcast(live.Event{Type: "reaction_added"})
}
