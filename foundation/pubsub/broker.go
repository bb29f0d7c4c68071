// Package pubsub is a small in-process topic broker. The worker publishes
// analysis lifecycle events keyed by job ID and request handlers subscribe
// while they wait for a result.
package pubsub

import (
	"fmt"
	"sync"
)

type Broker struct {
	topics map[string][]*Subscriber
	sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		topics: make(map[string][]*Subscriber),
	}
}

// Publish delivers data to every current subscriber of the topic. A topic
// with no subscribers drops the event; a subscriber with a full channel is
// skipped rather than blocking the publisher.
func (b *Broker) Publish(topic string, data any) {
	b.RLock()
	subs := b.topics[topic]
	b.RUnlock()

	for _, sub := range subs {
		sub.Signal(data)
	}
}

func (b *Broker) Subscribe(topic string, s *Subscriber) {
	b.Lock()
	defer b.Unlock()
	{
		b.topics[topic] = append(b.topics[topic], s)
	}
}

func (b *Broker) Unsubscribe(topic string, s *Subscriber) error {
	b.Lock()
	defer b.Unlock()
	{
		subs, exists := b.topics[topic]
		if !exists {
			return fmt.Errorf("topic[%s] does not exist", topic)
		}

		subs = removeFromSlice(subs, s)
		if len(subs) == 0 {
			delete(b.topics, topic)
			return nil
		}
		b.topics[topic] = subs
	}

	return nil
}

// =====================================================================================================================

func removeFromSlice[T comparable](s []T, d T) []T {
	for i := range s {
		if s[i] == d {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}
