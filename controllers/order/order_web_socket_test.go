package orderControllers

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/moriswala-burhanuddin/novaworks-api/models"
)

// Admins keep the feed open while orders confirm, so connects, disconnects
// and broadcasts all overlap. Run with -race.
func TestOrderFeedConcurrentBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/orders/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/admin/orders/ws"

	stop := make(chan struct{})
	var broadcasters sync.WaitGroup
	for i := 0; i < 4; i++ {
		broadcasters.Add(1)
		go func() {
			defer broadcasters.Done()
			order := models.Order{
				OrderRef: "feed-test",
				Status:   models.OrderStatusConfirmed,
			}
			for {
				select {
				case <-stop:
					return
				default:
					BroadcastOrder(order)
					time.Sleep(time.Millisecond)
				}
			}
		}()
	}

	var clients sync.WaitGroup
	for i := 0; i < 8; i++ {
		clients.Add(1)
		go func() {
			defer clients.Done()
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			if err != nil {
				t.Errorf("dial failed: %v", err)
				return
			}
			defer conn.Close()

			conn.SetReadDeadline(time.Now().Add(5 * time.Second))
			if _, msg, err := conn.ReadMessage(); err != nil {
				t.Errorf("expected a broadcast frame: %v", err)
			} else if !strings.Contains(string(msg), "feed-test") {
				t.Errorf("frame does not carry the order: %s", msg)
			}
		}()
	}

	clients.Wait()
	close(stop)
	broadcasters.Wait()
}
