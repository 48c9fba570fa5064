package live

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/nakai/internal/broadcast"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DisplaySocket upgrades GET /api/live and keeps the display subscribed to the
// daily card until it disconnects.
func DisplaySocket(hub *broadcast.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		hub.Add(conn)
		defer hub.Remove(conn)

		// displays never send anything; reading detects the disconnect
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
