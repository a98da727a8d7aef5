package policy

import (
	"container/heap"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketbft/rocket/internal/config"
	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// queuedPacket is one held packet waiting for dispatch. The release channel
// is closed exactly once, either by the dispatch loop or by a flush.
type queuedPacket struct {
	priority int
	seq      uint64
	release  chan struct{}
}

// packetHeap orders held packets by priority, sequence number as tie break so
// equal priorities dispatch first-in first-out.
type packetHeap []*queuedPacket

func (h packetHeap) Len() int { return len(h) }

func (h packetHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h packetHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *packetHeap) Push(x any) { *h = append(*h, x.(*queuedPacket)) }

func (h *packetHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PriorityQueue reorders in-flight traffic by holding every packet in a
// random-priority queue and releasing one per dispatch tick. The calling
// worker blocks until its packet is released, so delivery order is the queue
// order rather than arrival order.
type PriorityQueue struct {
	mutex   sync.Mutex
	rng     *rand.Rand
	queue   packetHeap
	counter uint64
	done    chan struct{}
	running bool
	stopped bool

	dispatchInterval time.Duration
}

func createPriorityQueue(params config.Params, env Environment) (Policy, error) {
	rng, err := newRand(params)
	if err != nil {
		return nil, err
	}
	intervalMs, err := params.IntOr("dispatch_interval_ms", 1)
	if err != nil {
		return nil, err
	}
	p := &PriorityQueue{
		rng:              rng,
		done:             make(chan struct{}),
		dispatchInterval: time.Duration(intervalMs) * time.Millisecond,
	}
	// Held packets must not straddle iterations.
	env.Tracker.RegisterResetCallback(p.flush)
	return p, nil
}

// Setup starts the dispatch loop. It is called again on every validator
// announcement, so repeat calls must not stack additional loops.
func (p *PriorityQueue) Setup() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.running || p.stopped {
		return nil
	}
	p.running = true
	go p.dispatchLoop()
	return nil
}

func (p *PriorityQueue) HandlePacket(packet *pb.Packet) ([]byte, uint32, uint32) {
	entry := &queuedPacket{release: make(chan struct{})}

	p.mutex.Lock()
	if p.stopped {
		p.mutex.Unlock()
		return packet.Data, DeliverAction, 1
	}
	entry.priority = p.rng.Intn(101)
	p.counter++
	entry.seq = p.counter
	heap.Push(&p.queue, entry)
	p.mutex.Unlock()

	select {
	case <-entry.release:
	case <-p.done:
	}
	return packet.Data, DeliverAction, 1
}

func (p *PriorityQueue) dispatchLoop() {
	ticker := time.NewTicker(p.dispatchInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			p.mutex.Lock()
			if p.queue.Len() > 0 {
				entry := heap.Pop(&p.queue).(*queuedPacket)
				close(entry.release)
			}
			p.mutex.Unlock()
		case <-p.done:
			return
		}
	}
}

// flush releases every held packet at once.
func (p *PriorityQueue) flush() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.queue.Len() > 0 {
		log.Debugf("[PriorityQueue] Flushing %d held packets", p.queue.Len())
	}
	for p.queue.Len() > 0 {
		entry := heap.Pop(&p.queue).(*queuedPacket)
		close(entry.release)
	}
}

// Stop terminates the dispatch loop and unblocks all held packets.
func (p *PriorityQueue) Stop() {
	p.mutex.Lock()
	if p.stopped {
		p.mutex.Unlock()
		return
	}
	p.stopped = true
	close(p.done)
	p.mutex.Unlock()
	p.flush()
}
