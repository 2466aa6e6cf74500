package statement

// Merge merges trades and corporate actions into a single chronological
// sequence. Both inputs must already be chronological.
//
// A corporate action takes effect at the start of its day: it comes before
// any trade dated the same day, whatever the trade's time and zone. Each
// input keeps its relative order.
func Merge(trades []Trade, actions []CorporateAction) []Event {
	events := make([]Event, 0, len(trades)+len(actions))
	i, j := 0, 0
	for i < len(trades) && j < len(actions) {
		if trades[i].Day().Before(actions[j].Day()) {
			events = append(events, trades[i])
			i++
		} else {
			events = append(events, actions[j])
			j++
		}
	}
	for _, t := range trades[i:] {
		events = append(events, t)
	}
	for _, a := range actions[j:] {
		events = append(events, a)
	}
	return events
}

// unsorted returns the index of the first event happening before its
// predecessor, or -1 if events are chronological.
func unsorted[E Event](events []E) int {
	for i := 1; i < len(events); i++ {
		if events[i].When().Before(events[i-1].When()) {
			return i
		}
	}
	return -1
}
