package mem

// Buffer is a fixed-capacity region filled front to back. The initialized
// prefix is tracked by a watermark; slots past the watermark must never be
// read. Take finalizes the buffer and hands ownership of the initialized
// prefix to the caller.
type Buffer[T any] struct {
	slots []T
	n     int
	taken bool
}

// NewBuffer allocates a buffer with the given capacity. The capacity must
// not be negative.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic("mem: negative buffer capacity")
	}
	return &Buffer[T]{slots: make([]T, capacity)}
}

// Len returns the number of initialized slots.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the total capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Append initializes the next slot with v.
func (b *Buffer[T]) Append(v T) {
	b.ensureLive()
	if b.n == len(b.slots) {
		panic("mem: buffer capacity exceeded")
	}
	b.slots[b.n] = v
	b.n++
}

// AppendSlice bulk-initializes the next len(src) slots from src. The source
// must not alias the buffer's own storage.
func (b *Buffer[T]) AppendSlice(src []T) {
	b.ensureLive()
	if b.n+len(src) > len(b.slots) {
		panic("mem: buffer capacity exceeded")
	}
	b.n += copy(b.slots[b.n:], src)
}

// At returns the value in an initialized slot.
func (b *Buffer[T]) At(i int) T {
	b.ensureLive()
	if i < 0 || i >= b.n {
		panic("mem: read of uninitialized slot")
	}
	return b.slots[i]
}

// MoveFrom transfers the initialized elements of src into the next slots of
// b. After the move src is empty; ownership of the element values transfers
// rather than being duplicated.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	b.ensureLive()
	src.ensureLive()
	if b.n+src.n > len(b.slots) {
		panic("mem: buffer capacity exceeded")
	}
	b.n += copy(b.slots[b.n:], src.slots[:src.n])
	var zero T
	for i := 0; i < src.n; i++ {
		src.slots[i] = zero
	}
	src.n = 0
}

// Truncate deinitializes every slot at or above n, moving the watermark
// back. Requires 0 <= n <= Len.
func (b *Buffer[T]) Truncate(n int) {
	b.ensureLive()
	if n < 0 || n > b.n {
		panic("mem: truncate out of range")
	}
	var zero T
	for i := n; i < b.n; i++ {
		b.slots[i] = zero
	}
	b.n = n
}

// Take finalizes the buffer and returns the initialized prefix. The buffer
// must not be used afterwards. A fully empty prefix yields nil so callers
// get canonical zero-length storage.
func (b *Buffer[T]) Take() []T {
	b.ensureLive()
	b.taken = true
	if b.n == 0 {
		return nil
	}
	return b.slots[:b.n:b.n]
}

func (b *Buffer[T]) ensureLive() {
	if b.taken {
		panic("mem: buffer used after Take")
	}
}
