package stack

import "testing"

func TestNewIsEmpty(t *testing.T) {
	t.Parallel()

	s := New[string]()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Fatalf("New() IsEmpty = %t, Size = %d, want true, 0", s.IsEmpty(), s.Size())
	}
	if got, ok := s.Peek(); ok || got != "" {
		t.Fatalf("Peek() on empty = %q, %t, want \"\", false", got, ok)
	}
	if got, ok := s.Pop(); ok || got != "" {
		t.Fatalf("Pop() on empty = %q, %t, want \"\", false", got, ok)
	}
}

func TestPushPopOrder(t *testing.T) {
	t.Parallel()

	s := New[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if s.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}

	for want := 3; want >= 1; want-- {
		if top, ok := s.Peek(); !ok || top != want {
			t.Fatalf("Peek() = %d, %t, want %d, true", top, ok, want)
		}
		if got, ok := s.Pop(); !ok || got != want {
			t.Fatalf("Pop() = %d, %t, want %d, true", got, ok, want)
		}
	}
	if !s.IsEmpty() {
		t.Fatal("IsEmpty() = false after popping everything")
	}
}

func TestPeekSharesPointer(t *testing.T) {
	t.Parallel()

	type frame struct{ n int }
	s := New[*frame]()
	s.Push(&frame{})

	top, _ := s.Peek()
	top.n = 7

	got, _ := s.Pop()
	if got.n != 7 {
		t.Fatalf("Pop().n = %d, want 7", got.n)
	}
}
