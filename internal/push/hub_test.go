package push

import (
	"sync"
	"testing"
)

func TestHub_PublishReachesOnlyOwnSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	chA, cancelA := hub.Subscribe("keeper-a")
	defer cancelA()
	chB, cancelB := hub.Subscribe("keeper-b")
	defer cancelB()

	hub.Publish("keeper-a", "notification.new", "payload")

	select {
	case ev := <-chA:
		if ev.Name != "notification.new" {
			t.Fatalf("expected notification.new, got %s", ev.Name)
		}
	default:
		t.Fatalf("expected keeper-a to receive the event")
	}

	select {
	case ev := <-chB:
		t.Fatalf("keeper-b must not receive keeper-a's event, got %s", ev.Name)
	default:
	}
}

func TestHub_MultipleSubscribersSameShopkeeper(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch1, cancel1 := hub.Subscribe("keeper-a")
	defer cancel1()
	ch2, cancel2 := hub.Subscribe("keeper-a")
	defer cancel2()

	hub.Publish("keeper-a", "notification.new", nil)

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Fatalf("subscriber %d missed the event", i)
		}
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cancel := hub.Subscribe("keeper-a")
	cancel()

	if _, open := <-ch; open {
		t.Fatalf("expected channel closed after cancel")
	}

	// Double cancel and publishing after cancel must both be safe.
	cancel()
	hub.Publish("keeper-a", "notification.new", nil)
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	_, cancel := hub.Subscribe("keeper-a")
	defer cancel()

	// Overflow the buffer; Publish must never block.
	for i := 0; i < subscriberBuffer*2; i++ {
		hub.Publish("keeper-a", "notification.new", i)
	}
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ch, cancel := hub.Subscribe("keeper-a")
			defer cancel()
			for j := 0; j < 50; j++ {
				select {
				case <-ch:
				default:
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Publish("keeper-a", "notification.new", j)
			}
		}()
	}

	wg.Wait()
}
