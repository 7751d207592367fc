package http

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/amintouch/ledger-api/internal/infrastructure/notify"
)

// NotificationHandler streams new-entry notifications to admin dashboards
// over Server-Sent Events.
type NotificationHandler struct {
	relay *notify.Relay
}

// NewNotificationHandler builds the handler.
func NewNotificationHandler(relay *notify.Relay) *NotificationHandler {
	return &NotificationHandler{relay: relay}
}

// Stream subscribes the connection to the relay and forwards each
// notification as an SSE "message" event until the client disconnects.
// GET /api/notifications/stream
func (h *NotificationHandler) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ch, cancel := h.relay.Subscribe()
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		for n := range ch {
			payload, err := json.Marshal(n)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			// Flush failure means the client went away.
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
