package state

// QueueDepth is the buffered channel capacity used for the
// producer/consumer message queue between whatever owns the SDK session
// callback and the render loop, mirroring the teacher's own
// `jobs := make(chan effectJob, 32)` sizing in Client.go.
const QueueDepth = 32

// Sender is the producer half of the message queue: the SDK session
// callback and whatever issues AddEffect/AddEffectLed/RemoveAllEffects
// requests hold one of these.
type Sender chan<- Message

// Receiver is the consumer half, held by the render loop.
type Receiver <-chan Message

// NewChannel builds a single-producer/single-consumer message queue.
func NewChannel() (Sender, Receiver) {
	ch := make(chan Message, QueueDepth)
	return ch, ch
}
