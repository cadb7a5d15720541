package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/friendsofgo/errors"
	goredis "github.com/redis/go-redis/v9"

	"pharmaclear-api/internal/notification"
	"pharmaclear-api/pkg/log"
	pkgRedis "pharmaclear-api/pkg/redis"
)

// Subscriber relays notifications published on Redis to the hub, so a
// notification created by any process reaches clients connected here.
type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis pkgRedis.IRedis
	hub   *Hub
	l     log.Logger

	pubsub *goredis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
}

func NewSubscriber(redisClient pkgRedis.IRedis, hub *Hub, l log.Logger) Subscriber {
	return &subscriber{
		redis: redisClient,
		hub:   hub,
		l:     l,
		quit:  make(chan struct{}),
	}
}

func (s *subscriber) Start(ctx context.Context) error {
	s.pubsub = s.redis.Subscribe(ctx, notification.PushChannel)

	// Wait for the subscription to be confirmed before starting the loop.
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return errors.Wrap(err, "subscribe to notification channel")
	}

	s.wg.Add(1)
	go s.listen(ctx)

	s.l.Infof(ctx, "notification subscriber started on channel %s", notification.PushChannel)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.l.Warnf(ctx, "notification pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Payload)
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) handleMessage(ctx context.Context, payload string) {
	var msg notification.PushMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		s.l.Warnf(ctx, "notification subscriber: malformed payload: %v", err)
		return
	}
	if msg.UserID == "" {
		return
	}
	s.hub.SendToUser(msg.UserID, []byte(payload))
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	close(s.quit)
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.l.Errorf(ctx, "close notification pubsub: %v", err)
		}
	}
	s.wg.Wait()
	s.l.Infof(ctx, "notification subscriber stopped")
	return nil
}
