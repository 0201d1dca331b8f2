package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shrutigoyal04/V-Market/internal/push"
)

const keepAliveInterval = 25 * time.Second

// HandleEventStream serves the authenticated shopkeeper's real-time feed as
// server-sent events. Each hub event becomes one SSE message whose event
// field is the hub event name and whose data is the JSON payload. Periodic
// comment lines keep idle connections from being reaped by proxies.
func HandleEventStream(hub *push.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, codeInternalError, "streaming unsupported")
			return
		}

		events, cancel := hub.Subscribe(shopkeeperID(r))
		defer cancel()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case <-keepAlive.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			case ev, open := <-events:
				if !open {
					return
				}
				data, err := json.Marshal(ev.Payload)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
				flusher.Flush()
			}
		}
	}
}
