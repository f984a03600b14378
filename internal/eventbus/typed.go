package eventbus

// SubscribeTo narrows a bus subscription to events of type T. The returned
// stop function cancels the underlying subscription.
func SubscribeTo[T Event](bus *Bus) (<-chan T, func()) {
	raw, cancel := bus.Subscribe()
	out := make(chan T, 8)
	go func() {
		defer close(out)
		for e := range raw {
			if ev, ok := e.(T); ok {
				select {
				case out <- ev:
				default:
				}
			}
		}
	}()
	return out, cancel
}
