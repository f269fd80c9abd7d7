package server

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jonathan/career-planner/internal/types"
)

// EventProfileUpdated is sent on /ws after every profile mutation
const EventProfileUpdated = "profile.updated"

const (
	feedBuffer    = 16
	feedWriteWait = 10 * time.Second
)

// FeedEvent is one message on the change feed
type FeedEvent struct {
	Event   string         `json:"event"`
	Profile *types.Profile `json:"profile"`
}

// buildUpgrader creates a WebSocket upgrader that only accepts pages served
// from this machine (or clients that send no Origin at all).
func buildUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || isLoopbackOrigin(origin)
		},
	}
}

// isLoopbackOrigin reports whether an Origin header names a page on this machine
func isLoopbackOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return isLoopbackHost(u.Hostname())
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// handleFeed streams a profile.updated event for every mutation until the
// client disconnects or the server shuts down.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	log := s.logger.With().Str("component", "feed").Str("request_id", requestID(r.Context())).Logger()

	// Subscribe before upgrading so no mutation is missed once the client is connected.
	updates := make(chan *types.Profile, feedBuffer)
	unsubscribe := s.session.Subscribe(func(p *types.Profile) {
		select {
		case updates <- p:
		default:
			log.Warn().Msg("feed client too slow, dropping update")
		}
	})
	defer unsubscribe()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()
	log.Debug().Msg("feed client connected")

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case p := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := conn.WriteJSON(FeedEvent{Event: EventProfileUpdated, Profile: p}); err != nil {
				log.Debug().Err(err).Msg("feed write failed")
				return
			}
		case <-gone:
			log.Debug().Msg("feed client disconnected")
			return
		case <-s.closing:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(time.Second))
			return
		}
	}
}
