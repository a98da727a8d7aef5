// Package process manages the packet interceptor subprocess that sits between
// the validator nodes and forwards intercepted traffic to the controller.
package process

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// stopGracePeriod is how long a terminated subprocess gets before it is
// killed.
const stopGracePeriod = 5 * time.Second

// Manager starts, restarts and stops the interceptor subprocess and relays
// its output into the controller's log.
type Manager struct {
	command string
	dir     string

	mutex   sync.Mutex
	process *exec.Cmd
	waited  chan error
}

// CreateManager creates a process manager for the given interceptor binary,
// run with dir as its working directory.
func CreateManager(command, dir string) *Manager {
	return &Manager{command: command, dir: dir}
}

// StartNew launches a fresh interceptor subprocess and spawns readers that
// relay its stdout and stderr.
func (m *Manager) StartNew() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.startLocked()
}

func (m *Manager) startLocked() error {
	if m.process != nil {
		return fmt.Errorf("interceptor is already running")
	}

	log.Info("[Process] Starting interceptor")
	cmd := exec.Command(m.command)
	cmd.Dir = m.dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("open interceptor stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("open interceptor stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start interceptor %q: %w", m.command, err)
	}

	go relay(stdout, "[Interceptor stdout]", log.DebugLevel)
	go relay(stderr, "[Interceptor stderr]", log.ErrorLevel)

	waited := make(chan error, 1)
	go func() { waited <- cmd.Wait() }()

	m.process = cmd
	m.waited = waited
	return nil
}

// relay logs every line the subprocess writes until its pipe closes.
func relay(pipe io.Reader, prefix string, level log.Level) {
	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		log.StandardLogger().Logf(level, "%s %s", prefix, scanner.Text())
	}
}

// Restart stops the running subprocess and starts a new one. Called between
// test iterations to give every iteration a fresh validator network.
func (m *Manager) Restart() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.stopLocked(); err != nil {
		return err
	}
	return m.startLocked()
}

// Stop terminates the subprocess, killing it if it ignores the termination
// signal for too long.
func (m *Manager) Stop() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if err := m.stopLocked(); err != nil {
		log.Errorf("[Process] Stopping interceptor failed: %v", err)
	}
}

func (m *Manager) stopLocked() error {
	if m.process == nil {
		return nil
	}
	log.Info("[Process] Stopping interceptor")

	if err := m.process.Process.Signal(syscall.SIGTERM); err != nil {
		log.Warnf("[Process] Signaling interceptor failed: %v", err)
	}
	select {
	case <-m.waited:
	case <-time.After(stopGracePeriod):
		log.Warn("[Process] Interceptor did not terminate in time, killing it")
		if err := m.process.Process.Kill(); err != nil {
			return fmt.Errorf("kill interceptor: %w", err)
		}
		<-m.waited
	}

	m.process = nil
	m.waited = nil
	return nil
}
