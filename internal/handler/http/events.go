package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http/response"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/jwt"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
)

// adminFeedKey mirrors the key services broadcast admin-wide events on.
const adminFeedKey = "admin"

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type EventsHandler interface {
	GetSSEToken(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	jwtService jwt.Service
	hub        *sse.Hub
}

func NewEventsHandler(jwtService jwt.Service, hub *sse.Hub) EventsHandler {
	return &eventsHandlerImpl{
		jwtService: jwtService,
		hub:        hub,
	}
}

// GetSSEToken generates a short-lived token for SSE connections. With
// ?feed=admin it binds the token to the admin-wide feed, which requires the
// manager or admin role.
func (h *eventsHandlerImpl) GetSSEToken(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	feed := uid
	if r.URL.Query().Get("feed") == adminFeedKey {
		role, _ := claims["role"].(string)
		if role != string(user.RoleManager) && role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}
		feed = adminFeedKey
	}

	token, expiresIn, err := h.jwtService.GenerateSSEToken(feed)
	if err != nil {
		response.InternalServerError(w, "Failed to generate SSE token")
		return
	}

	response.Success(w, SSETokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Stream handles the SSE connection for live attendance and request updates
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// Get token from query parameter (SSE doesn't support custom headers)
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}

	feed, err := h.jwtService.ValidateSSEToken(tokenStr)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	events, cleanup := h.hub.Subscribe(feed)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"feed\":\"%s\"}\n\n", feed)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
