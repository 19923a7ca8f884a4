package core

import "math/rand"

// PreviewSize is the number of upcoming kinds kept in the next queue.
const PreviewSize = 5

// bag deals a shuffled permutation of all seven kinds and reshuffles
// only once the previous permutation has been fully dealt.
type bag struct {
	rng   *rand.Rand
	kinds [KindCount]Kind
	index int
}

func newBag(rng *rand.Rand) bag {
	b := bag{rng: rng, kinds: Kinds}
	b.shuffle()
	return b
}

// shuffle is a Fisher-Yates pass over the bag.
func (b *bag) shuffle() {
	for i := len(b.kinds) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	}
}

func (b *bag) next() Kind {
	k := b.kinds[b.index]
	b.index++
	if b.index == len(b.kinds) {
		b.shuffle()
		b.index = 0
	}
	return k
}

// NextQueue is the bag randomizer plus a fixed lookahead window.
// The window is a ring buffer; cursor points at the next kind to deal.
type NextQueue struct {
	bag      bag
	upcoming [PreviewSize]Kind
	cursor   int
}

// NewNextQueue creates a queue whose preview is already filled from a fresh bag.
func NewNextQueue(rng *rand.Rand) *NextQueue {
	q := &NextQueue{bag: newBag(rng)}
	for i := range q.upcoming {
		q.upcoming[i] = q.bag.next()
	}
	return q
}

// Next deals the kind under the cursor and refills its slot from the bag.
func (q *NextQueue) Next() Kind {
	k := q.upcoming[q.cursor]
	q.upcoming[q.cursor] = q.bag.next()
	q.cursor = (q.cursor + 1) % PreviewSize
	return k
}

// Upcoming returns the preview in the order the kinds will be dealt.
func (q *NextQueue) Upcoming() [PreviewSize]Kind {
	var out [PreviewSize]Kind
	for i := range out {
		out[i] = q.upcoming[(q.cursor+i)%PreviewSize]
	}
	return out
}
