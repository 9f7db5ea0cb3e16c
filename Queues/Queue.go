package Queues

// Queue is a FIFO container. Pop on an empty queue returns *EmptyQueueError.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	//Peek returns the item Pop would return without removing it. The second
	//return value is false if the queue is empty.
	Peek() (T, bool)
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the underlying array to fit the current items.
	Shrink()
	//Clear all items. The underlying array is kept.
	Clear()
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
