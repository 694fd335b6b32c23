package game

import "golang.org/x/exp/rand"

// Bag is the 7-bag randomizer: the queue is refilled one shuffled set of all
// families at a time, so every aligned run of 7 draws holds each family once.
type Bag struct {
	queue []Family
	src   *rand.PCGSource
	rng   *rand.Rand
}

// NewBag returns a bag whose sequence is fully determined by seed.
func NewBag(seed uint64) *Bag {
	src := &rand.PCGSource{}
	src.Seed(seed)
	b := &Bag{
		queue: make([]Family, 0, 2*numFamilies+1),
		src:   src,
		rng:   rand.New(src),
	}
	b.refill()
	return b
}

func (b *Bag) refill() {
	for len(b.queue) <= numFamilies {
		set := Families
		b.rng.Shuffle(len(set), func(i, j int) {
			set[i], set[j] = set[j], set[i]
		})
		b.queue = append(b.queue, set[:]...)
	}
}

// Next removes and returns the family at the front of the queue.
func (b *Bag) Next() Family {
	b.refill()
	f := b.queue[0]
	b.queue = b.queue[1:]
	return f
}

// Peek returns up to n upcoming families without consuming them.
func (b *Bag) Peek(n int) []Family {
	n = max(0, min(n, len(b.queue)))
	next := make([]Family, n)
	copy(next, b.queue)
	return next
}

// Len returns the number of queued families.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Clone returns an independent bag that will produce the same future draws.
func (b *Bag) Clone() *Bag {
	queue := make([]Family, len(b.queue), cap(b.queue))
	copy(queue, b.queue)
	src := *b.src
	return &Bag{
		queue: queue,
		src:   &src,
		rng:   rand.New(&src),
	}
}
