package websocket

import (
	"context"
	"testing"
	"time"

	"pharmaclear-api/pkg/log"
)

func newTestClient(userID string) *Client {
	return &Client{
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
	}
}

func registerAndWait(t *testing.T, hub *Hub, c *Client, wantConns int) {
	t.Helper()
	hub.register <- c
	waitForConns(t, hub, wantConns)
}

func waitForConns(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if conns, _ := hub.Stats(); conns == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	conns, _ := hub.Stats()
	t.Fatalf("hub has %d connections, want %d", conns, want)
}

func TestHubSendToUserTargetsOnlyThatUser(t *testing.T) {
	hub := NewHub(log.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	alice1 := newTestClient("alice")
	alice2 := newTestClient("alice")
	bob := newTestClient("bob")
	registerAndWait(t, hub, alice1, 1)
	registerAndWait(t, hub, alice2, 2)
	registerAndWait(t, hub, bob, 3)

	hub.SendToUser("alice", []byte("hello"))

	for _, c := range []*Client{alice1, alice2} {
		select {
		case msg := <-c.send:
			if string(msg) != "hello" {
				t.Errorf("message = %q", msg)
			}
		case <-time.After(time.Second):
			t.Fatal("alice connection did not receive the push")
		}
	}

	select {
	case msg := <-bob.send:
		t.Fatalf("bob received %q, want nothing", msg)
	default:
	}
}

func TestHubUnregisterRemovesUser(t *testing.T) {
	hub := NewHub(log.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := newTestClient("alice")
	registerAndWait(t, hub, c, 1)

	hub.unregister <- c
	waitForConns(t, hub, 0)

	if _, users := hub.Stats(); users != 0 {
		t.Errorf("users = %d, want 0", users)
	}

	// The send channel is closed on unregister.
	if _, ok := <-c.send; ok {
		t.Error("send channel must be closed after unregister")
	}
}

func TestHubSendSkipsFullBuffers(t *testing.T) {
	hub := NewHub(log.NewNoop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	c := &Client{send: make(chan []byte), userID: "alice"}
	registerAndWait(t, hub, c, 1)

	// Nothing reads from the unbuffered channel. The send must not block.
	done := make(chan struct{})
	go func() {
		hub.SendToUser("alice", []byte("dropped"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendToUser blocked on a stalled client")
	}
}
