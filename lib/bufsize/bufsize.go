// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bufsize

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	// DefaultMaxSize is the hard cap on any buffer size.
	DefaultMaxSize = 2 * 1024 * 1024

	// DefaultSmallSize is the maximum efficient single I/O size.
	DefaultSmallSize = 128 * 1024

	// DefaultMemoryThresholdPages is the physical page count above
	// which memory is considered abundant. 32768 pages is 128 MiB with
	// 4 KiB pages.
	DefaultMemoryThresholdPages = 32 * 1024

	// DefaultLargeMultiplier scales the small size to get the large
	// size used for regular-file output on well-provisioned machines.
	DefaultLargeMultiplier = 8
)

// Tuning holds the constants of the sizing heuristic.
type Tuning struct {
	MaxSize              int
	SmallSize            int
	MemoryThresholdPages int64
	LargeMultiplier      int
}

// DefaultTuning returns the built-in constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSize:              DefaultMaxSize,
		SmallSize:            DefaultSmallSize,
		MemoryThresholdPages: DefaultMemoryThresholdPages,
		LargeMultiplier:      DefaultLargeMultiplier,
	}
}

// Validate rejects tunings that would produce a non-positive size or a
// small size above the cap.
func (t Tuning) Validate() error {
	if t.MaxSize <= 0 {
		return fmt.Errorf("max size must be positive, got %d", t.MaxSize)
	}
	if t.SmallSize <= 0 {
		return fmt.Errorf("small size must be positive, got %d", t.SmallSize)
	}
	if t.SmallSize > t.MaxSize {
		return fmt.Errorf("small size %d exceeds max size %d", t.SmallSize, t.MaxSize)
	}
	if t.MemoryThresholdPages < 0 {
		return fmt.Errorf("memory threshold must not be negative, got %d", t.MemoryThresholdPages)
	}
	if t.LargeMultiplier <= 0 {
		return fmt.Errorf("large multiplier must be positive, got %d", t.LargeMultiplier)
	}
	return nil
}

// OutputInfo is the part of the output descriptor's fstat result the
// heuristic looks at.
type OutputInfo struct {
	Regular   bool
	BlockSize int64
}

// Facts answers the system questions the heuristic asks.
type Facts interface {
	// PhysicalPages returns the number of physical memory pages, or an
	// error when the platform cannot report it.
	PhysicalPages() (int64, error)

	// PageSize returns the system page size in bytes, or a
	// non-positive value if unknown.
	PageSize() int
}

// Choose returns the buffer size for an output described by info.
func Choose(info OutputInfo, facts Facts, tuning Tuning) int {
	if info.Regular {
		pages, err := facts.PhysicalPages()
		if err != nil || pages <= tuning.MemoryThresholdPages {
			return tuning.SmallSize
		}
		// Divide instead of multiplying so a large multiplier cannot
		// overflow.
		if tuning.SmallSize > tuning.MaxSize/tuning.LargeMultiplier {
			return tuning.MaxSize
		}
		return tuning.SmallSize * tuning.LargeMultiplier
	}

	size := info.BlockSize
	if pageSize := facts.PageSize(); pageSize > 0 && size < int64(pageSize) {
		size = int64(pageSize)
	}
	if size > int64(tuning.MaxSize) {
		size = int64(tuning.MaxSize)
	}
	if size <= 0 {
		// No page size and no block size: nothing better to go on.
		size = int64(tuning.SmallSize)
	}
	return int(size)
}

// StatOutput fstats fd and extracts the fields [Choose] needs.
func StatOutput(fd int) (OutputInfo, error) {
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return OutputInfo{}, fmt.Errorf("fstat output descriptor %d: %w", fd, err)
	}
	return OutputInfo{
		Regular:   stat.Mode&unix.S_IFMT == unix.S_IFREG,
		BlockSize: int64(stat.Blksize),
	}, nil
}

// Policy computes the buffer size for one output descriptor the first
// time [Policy.Size] is called and returns the cached value afterward.
// A failed computation is cached too: the run cannot continue without a
// buffer, so there is nothing to retry.
type Policy struct {
	fd     int
	facts  Facts
	tuning Tuning
	stat   func(fd int) (OutputInfo, error)

	once sync.Once
	size int
	err  error
}

// NewPolicy returns a policy for output descriptor fd.
func NewPolicy(fd int, facts Facts, tuning Tuning) *Policy {
	return &Policy{
		fd:     fd,
		facts:  facts,
		tuning: tuning,
		stat:   StatOutput,
	}
}

// Size returns the buffer size for the run.
func (p *Policy) Size() (int, error) {
	p.once.Do(func() {
		info, err := p.stat(p.fd)
		if err != nil {
			p.err = err
			return
		}
		p.size = Choose(info, p.facts, p.tuning)
	})
	return p.size, p.err
}
