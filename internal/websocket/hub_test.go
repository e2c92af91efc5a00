package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestHubSendReachesEveryDevice(t *testing.T) {
	hub := runHub(t)
	userID := uuid.New()
	phone := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	laptop := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- phone
	hub.register <- laptop
	hub.register <- other
	require.Eventually(t, func() bool { return hub.Connected(userID) == 2 }, time.Second, 5*time.Millisecond)

	hub.Send(userID, &dto.NotificationResponse{Id: uuid.New(), Title: "Booking confirmed"})

	for _, c := range []*Client{phone, laptop} {
		select {
		case raw := <-c.Send:
			var msg struct {
				Type string                   `json:"type"`
				Data dto.NotificationResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, "notification", msg.Type)
			assert.Equal(t, "Booking confirmed", msg.Data.Title)
		case <-time.After(time.Second):
			t.Fatal("notification not delivered")
		}
	}
	assert.Empty(t, other.Send)
}

func TestHubUnregisterClosesChannel(t *testing.T) {
	hub := runHub(t)
	c := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	hub.register <- c
	hub.unregister <- c

	require.Eventually(t, func() bool { return hub.Connected(c.UserID) == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)

	assert.NotPanics(t, func() { hub.Send(c.UserID, &dto.NotificationResponse{}) })
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := runHub(t)
	c := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.Connected(c.UserID) == 1 }, time.Second, 5*time.Millisecond)

	hub.Send(c.UserID, &dto.NotificationResponse{Title: "first"})
	hub.Send(c.UserID, &dto.NotificationResponse{Title: "second"})

	require.Eventually(t, func() bool { return hub.Connected(c.UserID) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHubStoppedDoesNotBlockClients(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	require.True(t, hub.join(c))
	cancel()
	<-stopped

	left := make(chan struct{})
	go func() {
		hub.leave(c)
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("leave blocked after the hub stopped")
	}

	assert.False(t, hub.join(&Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}))
}
