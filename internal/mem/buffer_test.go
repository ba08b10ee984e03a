package mem

import "testing"

func TestBufferAppend(t *testing.T) {
	b := NewBuffer[uint64](4)
	if b.Cap() != 4 || b.Len() != 0 {
		t.Fatalf("expected cap 4 len 0, got cap %d len %d", b.Cap(), b.Len())
	}

	b.Append(10)
	b.Append(20)
	if b.Len() != 2 {
		t.Errorf("expected len 2, got %d", b.Len())
	}
	if b.At(0) != 10 || b.At(1) != 20 {
		t.Errorf("unexpected slot values: %d, %d", b.At(0), b.At(1))
	}

	got := b.Take()
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("Take returned %v", got)
	}
}

func TestBufferAppendSlice(t *testing.T) {
	b := NewBuffer[uint64](5)
	b.Append(1)
	b.AppendSlice([]uint64{2, 3, 4})
	if b.Len() != 4 {
		t.Errorf("expected len 4, got %d", b.Len())
	}

	got := b.Take()
	for i, v := range []uint64{1, 2, 3, 4} {
		if got[i] != v {
			t.Errorf("slot %d = %d, expected %d", i, got[i], v)
		}
	}
}

func TestBufferCapacityExceeded(t *testing.T) {
	assertPanics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	assertPanics("Append past capacity", func() {
		b := NewBuffer[int](1)
		b.Append(1)
		b.Append(2)
	})
	assertPanics("AppendSlice past capacity", func() {
		b := NewBuffer[int](2)
		b.AppendSlice([]int{1, 2, 3})
	})
	assertPanics("read past watermark", func() {
		b := NewBuffer[int](2)
		b.Append(1)
		b.At(1)
	})
	assertPanics("use after Take", func() {
		b := NewBuffer[int](2)
		b.Take()
		b.Append(1)
	})
	assertPanics("negative capacity", func() {
		NewBuffer[int](-1)
	})
}

func TestBufferMoveFrom(t *testing.T) {
	src := NewBuffer[uint64](3)
	src.Append(7)
	src.Append(8)

	dst := NewBuffer[uint64](4)
	dst.Append(1)
	dst.MoveFrom(src)

	if src.Len() != 0 {
		t.Errorf("source still initialized after move: len %d", src.Len())
	}
	if dst.Len() != 3 {
		t.Errorf("expected dst len 3, got %d", dst.Len())
	}

	got := dst.Take()
	for i, v := range []uint64{1, 7, 8} {
		if got[i] != v {
			t.Errorf("slot %d = %d, expected %d", i, got[i], v)
		}
	}

	// The moved-from buffer is still usable.
	src.Append(9)
	if src.At(0) != 9 {
		t.Errorf("moved-from buffer not reusable")
	}
}

func TestBufferTruncate(t *testing.T) {
	b := NewBuffer[uint64](4)
	b.AppendSlice([]uint64{1, 2, 3, 4})
	b.Truncate(2)
	if b.Len() != 2 {
		t.Errorf("expected len 2 after truncate, got %d", b.Len())
	}

	// Truncated slots can be re-initialized.
	b.Append(9)
	if b.At(2) != 9 {
		t.Errorf("expected re-initialized slot to hold 9, got %d", b.At(2))
	}
}

func TestBufferTakeEmpty(t *testing.T) {
	b := NewBuffer[uint64](8)
	if got := b.Take(); got != nil {
		t.Errorf("empty Take should return nil, got %v", got)
	}
}

func TestBufferTakeDoesNotShareTail(t *testing.T) {
	b := NewBuffer[uint64](8)
	b.Append(1)
	got := b.Take()

	// Appending to the returned slice must not write into the buffer's
	// remaining capacity.
	_ = append(got, 99)
	if cap(got) != 1 {
		t.Errorf("Take leaked spare capacity: cap %d", cap(got))
	}
}
