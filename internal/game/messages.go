package game

// Message is a transient HUD notification with an expiry timestamp.
type Message struct {
	Text    string
	UntilMS int64
}

// MessageQueue holds the pending transient notifications. The game loop owns
// one and passes it to whichever component needs to post; the HUD reads the
// newest live message each tick.
type MessageQueue struct {
	messages []Message
}

// Post queues a message visible until nowMS+durationMS.
func (q *MessageQueue) Post(text string, nowMS, durationMS int64) {
	q.messages = append(q.messages, Message{
		Text:    text,
		UntilMS: nowMS + durationMS,
	})
}

// Current returns the newest message still live at nowMS, or "".
func (q *MessageQueue) Current(nowMS int64) string {
	for i := len(q.messages) - 1; i >= 0; i-- {
		if nowMS < q.messages[i].UntilMS {
			return q.messages[i].Text
		}
	}
	return ""
}

// Prune drops expired messages.
func (q *MessageQueue) Prune(nowMS int64) {
	live := q.messages[:0]
	for _, m := range q.messages {
		if nowMS < m.UntilMS {
			live = append(live, m)
		}
	}
	q.messages = live
}

// Clear drops all messages.
func (q *MessageQueue) Clear() {
	q.messages = q.messages[:0]
}
