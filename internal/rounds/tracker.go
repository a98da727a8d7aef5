// Package rounds drives the test-iteration lifecycle. It tracks each node's
// validated ledger sequence, advances the iteration when every node reaches
// the configured target and falls back to a wall-clock timeout when the
// network is stuck.
package rounds

import (
	"fmt"
	"sync"
	"time"

	"github.com/rocketbft/rocket/pb"
	log "github.com/sirupsen/logrus"
)

// EventAcceptedLedger is the TMStatusChange.NewEvent code of an accepted
// ledger (neACCEPTED_LEDGER in the peer protocol enum).
const EventAcceptedLedger = 2

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
	phaseDraining
	phaseTerminated
)

// RoundState is one node's ledger-sequence clock within the current
// iteration.
type RoundState struct {
	Seq            uint32
	LastTransition time.Time
}

// ProcessController controls the intercepted process between iterations.
type ProcessController interface {
	StartNew() error
	Restart() error
	Stop()
}

// Stopper stops the host transport once the final iteration finished.
type Stopper interface {
	GracefulStop()
}

// ResultSink receives structured per-ledger validation events.
type ResultSink interface {
	StartIteration(iteration int) error
	LogLedger(iteration, nodeID int, seq uint32, validationTime time.Duration) error
	Close() error
}

// Config bounds the test run.
type Config struct {
	MaxIterations int
	MaxLedgerSeq  uint32
	Timeout       time.Duration
	// LedgerTimeout restarts the timeout on every validated ledger instead
	// of once per iteration.
	LedgerTimeout bool
}

// Tracker is the per-node ledger-sequence state machine. The whole
// read-check-update-advance path runs under one mutex: two nodes reporting
// validation near-simultaneously must never advance the iteration twice.
type Tracker struct {
	mutex  sync.Mutex
	config Config

	iteration int
	phase     phase
	nodes     map[int]*RoundState

	process        ProcessController
	server         Stopper
	sink           ResultSink
	resetCallbacks []func()
	task           ScheduledTask
	done           chan struct{}
}

// CreateTracker creates a tracker. Invalid bounds are configuration errors
// reported at setup, not at runtime.
func CreateTracker(config Config, process ProcessController, sink ResultSink) (*Tracker, error) {
	if config.MaxIterations < 1 {
		return nil, fmt.Errorf("max iterations must be at least 1, got %d", config.MaxIterations)
	}
	if config.MaxLedgerSeq < 2 {
		return nil, fmt.Errorf("max ledger sequence must be at least 2, got %d", config.MaxLedgerSeq)
	}
	if config.Timeout <= 0 {
		return nil, fmt.Errorf("iteration timeout must be positive, got %s", config.Timeout)
	}
	return &Tracker{
		config:  config,
		nodes:   make(map[int]*RoundState),
		process: process,
		sink:    sink,
		done:    make(chan struct{}),
	}, nil
}

// SetServer installs the host transport stopped on termination.
func (t *Tracker) SetServer(server Stopper) {
	t.mutex.Lock()
	t.server = server
	t.mutex.Unlock()
}

// RegisterResetCallback adds a callback run at every iteration start, used
// by policies to regenerate per-iteration state such as fault schedules.
func (t *Tracker) RegisterResetCallback(fn func()) {
	t.mutex.Lock()
	t.resetCallbacks = append(t.resetCallbacks, fn)
	t.mutex.Unlock()
}

// SetNodes re-arms the per-node state for n nodes. Tracking zero nodes is a
// configuration error: the all-nodes-reached check would be vacuously true.
func (t *Tracker) SetNodes(n int) error {
	if n < 1 {
		return fmt.Errorf("tracker needs at least one node, got %d", n)
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.resetNodesLocked(n)
	return nil
}

func (t *Tracker) resetNodesLocked(n int) {
	now := time.Now()
	t.nodes = make(map[int]*RoundState, n)
	for id := 0; id < n; id++ {
		t.nodes[id] = &RoundState{Seq: 1, LastTransition: now}
	}
}

// Start begins the first iteration: starts the intercepted process, runs the
// reset callbacks and arms the timeout.
func (t *Tracker) Start() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.phase != phaseIdle {
		return fmt.Errorf("tracker already started")
	}
	t.iteration = 1
	t.phase = phaseRunning
	if err := t.sink.StartIteration(t.iteration); err != nil {
		return err
	}
	if err := t.process.StartNew(); err != nil {
		return err
	}
	for _, fn := range t.resetCallbacks {
		fn()
	}
	log.Infof("[Tracker] Starting iteration %d", t.iteration)
	t.armTimeoutLocked()
	return nil
}

func (t *Tracker) armTimeoutLocked() {
	iteration := t.iteration
	t.task.Schedule(t.config.Timeout, func() {
		t.onTimeout(iteration)
	})
}

func (t *Tracker) onTimeout(iteration int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	// A timeout scheduled in a previous iteration fires into reset state;
	// the iteration check makes it a no-op.
	if t.phase != phaseRunning || t.iteration != iteration {
		return
	}
	log.Infof("[Tracker] Timeout reached in iteration %d", t.iteration)
	t.advanceLocked()
}

// OnStatusChange consumes one observed status-change event from node fromID.
// Sequences only ever move forward; stale or repeated reports are ignored.
func (t *Tracker) OnStatusChange(status *pb.TMStatusChange, fromID int) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if t.phase != phaseRunning || status.GetNewEvent() != EventAcceptedLedger {
		return
	}
	node, ok := t.nodes[fromID]
	if !ok {
		return
	}
	seq := status.GetLedgerSeq()
	if seq <= node.Seq {
		return
	}

	now := time.Now()
	validationTime := now.Sub(node.LastTransition)
	node.Seq = seq
	node.LastTransition = now
	log.Infof("[Tracker] Node %d validated ledger %d, time elapsed: %s", fromID, seq, validationTime)
	if err := t.sink.LogLedger(t.iteration, fromID, seq, validationTime); err != nil {
		log.Warnf("[Tracker] Failed to log ledger result: %v", err)
	}

	if t.config.LedgerTimeout {
		t.armTimeoutLocked()
	}

	if t.allNodesReachedTargetLocked() {
		t.advanceLocked()
	}
}

func (t *Tracker) allNodesReachedTargetLocked() bool {
	if len(t.nodes) == 0 {
		return false
	}
	for _, node := range t.nodes {
		if node.Seq < t.config.MaxLedgerSeq {
			return false
		}
	}
	return true
}

// advanceLocked runs the Draining transition: cancel the timer before any
// state is reset, then either start the next iteration or terminate.
func (t *Tracker) advanceLocked() {
	t.phase = phaseDraining
	t.task.Cancel()
	log.Infof("[Tracker] Finished iteration %d", t.iteration)

	if t.iteration >= t.config.MaxIterations {
		t.terminateLocked()
		return
	}

	if err := t.process.Restart(); err != nil {
		log.Errorf("[Tracker] Failed to restart intercepted process: %v", err)
		t.terminateLocked()
		return
	}
	t.resetNodesLocked(len(t.nodes))
	for _, fn := range t.resetCallbacks {
		fn()
	}
	t.iteration++
	if err := t.sink.StartIteration(t.iteration); err != nil {
		log.Warnf("[Tracker] Failed to rotate result sink: %v", err)
	}
	t.phase = phaseRunning
	log.Infof("[Tracker] Starting iteration %d", t.iteration)
	t.armTimeoutLocked()
}

func (t *Tracker) terminateLocked() {
	t.phase = phaseTerminated
	t.process.Stop()
	if err := t.sink.Close(); err != nil {
		log.Warnf("[Tracker] Failed to close result sink: %v", err)
	}
	if t.server != nil {
		// GracefulStop waits for in-flight RPCs; one of those RPCs may be
		// the call that triggered termination, so stop from a goroutine.
		go t.server.GracefulStop()
	}
	close(t.done)
	log.Info("[Tracker] Test run terminated")
}

// CurrentRound returns the node's validated ledger sequence, its logical
// clock for fault scheduling. Unknown nodes report 0.
func (t *Tracker) CurrentRound(nodeID int) uint32 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	if node, ok := t.nodes[nodeID]; ok {
		return node.Seq
	}
	return 0
}

// CurrentIteration returns the running iteration number, starting at 1.
func (t *Tracker) CurrentIteration() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.iteration
}

// Done is closed once the final iteration finished.
func (t *Tracker) Done() <-chan struct{} {
	return t.done
}
