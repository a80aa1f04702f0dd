package observer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/odp/patterns/observer"
)

// recorder collects every event it receives.
type recorder struct {
	seen []int
}

func (r *recorder) Update(event int) { r.seen = append(r.seen, event) }

func TestNotify_ReachesAllAttachedInOrder(t *testing.T) {
	t.Parallel()

	subject := observer.NewSubject[int]()
	first := &recorder{}
	second := &recorder{}

	subject.Attach(first)
	subject.Attach(second)
	require.Equal(t, 2, subject.Len())

	subject.Notify(1)
	subject.Notify(2)

	assert.Equal(t, []int{1, 2}, first.seen)
	assert.Equal(t, []int{1, 2}, second.seen)
}

func TestDetach_StopsNotifications(t *testing.T) {
	t.Parallel()

	subject := observer.NewSubject[int]()
	kept := &recorder{}
	dropped := &recorder{}

	subject.Attach(kept)
	subject.Attach(dropped)

	subject.Notify(1)
	subject.Detach(dropped)
	subject.Notify(2)
	subject.Notify(3)

	assert.Equal(t, []int{1, 2, 3}, kept.seen)
	// The detached observer saw only the event published before removal.
	assert.Equal(t, []int{1}, dropped.seen)
	assert.Equal(t, 1, subject.Len())
}

func TestDetach_NeverAttachedIsNoOp(t *testing.T) {
	t.Parallel()

	subject := observer.NewSubject[int]()
	attached := &recorder{}
	stranger := &recorder{}

	subject.Attach(attached)
	subject.Detach(stranger)

	assert.Equal(t, 1, subject.Len())
	subject.Notify(7)
	assert.Equal(t, []int{7}, attached.seen)
	assert.Empty(t, stranger.seen)
}

func TestAttach_NilObserverIgnored(t *testing.T) {
	t.Parallel()

	subject := observer.NewSubject[int]()
	subject.Attach(nil)
	assert.Equal(t, 0, subject.Len())

	// Must not panic with a nil in the list.
	subject.Notify(1)
}

func TestDisplay_WritesFormattedLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := &observer.Display{Name: "desk", W: &buf}
	d.Update(observer.PriceUpdate{Symbol: "GOOG", Cents: 100})

	assert.Equal(t, "[desk] GOOG at 100 cents\n", buf.String())
}

func TestDemo_Transcript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, observer.Demo(&buf))

	want := "[lobby] GOOG at 17255 cents\n" +
		"[desk] GOOG at 17255 cents\n" +
		"lobby display detached\n" +
		"[desk] GOOG at 17310 cents\n"
	assert.Equal(t, want, buf.String())
}
