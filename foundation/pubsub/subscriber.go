package pubsub

type Subscriber struct {
	payload chan any
}

func NewSubscriber(channelCapacity int) *Subscriber {
	if channelCapacity > 0 {
		return &Subscriber{
			payload: make(chan any, channelCapacity),
		}
	}
	return &Subscriber{
		payload: make(chan any, 1),
	}
}

// Signal hands data to the subscriber without blocking: a subscriber that
// stopped draining its channel misses the event.
func (s *Subscriber) Signal(data any) {
	select {
	case s.payload <- data:
	default:
	}
}

func (s *Subscriber) GetChannel() <-chan any {
	return s.payload
}
