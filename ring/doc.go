// Package ring provides a fixed-capacity circular FIFO buffer.
//
// The slots are an array held inside the Buffer value; its length is the
// capacity. The zero value is ready to use and nothing allocates. Push,
// Pop and Peek report an empty or full buffer through ErrEmpty and
// ErrFull; PushForce, DirectPop and Front skip those checks and leave
// gating to the caller.
//
//	var q ring.Buffer[Sample, [8]Sample]
//
//	_ = q.Push(s)
//	for p := range q.All() {
//		use(*p)
//	}
//
// Copying a Buffer copies its elements. A Buffer is not safe for
// concurrent use.
package ring
