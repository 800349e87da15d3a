// Package procscan enumerates processes and their threads through /proc.
// It only works on Linux; every function fails with a read error elsewhere.
package procscan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procRoot is overridable for tests.
var procRoot = "/proc"

// Scanner defines the process enumeration operations the CLI and profile
// application depend on.
type Scanner interface {
	Threads(pid int) ([]int, error)
	Children(pid int) ([]int, error)
	Comm(pid int) (string, error)
	FindByComm(name string) ([]int, error)
}

type procScanner struct{}

// New returns a Scanner backed by /proc.
func New() Scanner {
	return &procScanner{}
}

// Threads lists the thread ids of a process.
func (s *procScanner) Threads(pid int) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(procRoot, strconv.Itoa(pid), "task"))
	if err != nil {
		return nil, fmt.Errorf("failed to read threads for pid %d: %w", pid, err)
	}
	var tids []int
	for _, e := range entries {
		if tid, err := strconv.Atoi(e.Name()); err == nil {
			tids = append(tids, tid)
		}
	}
	return tids, nil
}

// Children lists the direct child processes of a process, collected over all
// of its threads.
func (s *procScanner) Children(pid int) ([]int, error) {
	tids, err := s.Threads(pid)
	if err != nil {
		return nil, fmt.Errorf("failed to get children for pid %d: %w", pid, err)
	}
	var children []int
	for _, tid := range tids {
		content, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "task", strconv.Itoa(tid), "children"))
		if err != nil {
			continue
		}
		for _, f := range strings.Fields(string(content)) {
			if child, err := strconv.Atoi(f); err == nil {
				children = append(children, child)
			}
		}
	}
	return children, nil
}

// Comm returns the command name of a process as the kernel reports it,
// truncated to 15 characters.
func (s *procScanner) Comm(pid int) (string, error) {
	data, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "comm"))
	if err != nil {
		return "", fmt.Errorf("failed to read comm for pid %d: %w", pid, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// FindByComm returns the pids of every process whose command name matches.
// Processes that disappear during the scan are skipped.
func (s *procScanner) FindByComm(name string) ([]int, error) {
	entries, err := os.ReadDir(procRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", procRoot, err)
	}
	var pids []int
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		comm, err := s.Comm(pid)
		if err != nil {
			continue
		}
		if comm == name {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}
