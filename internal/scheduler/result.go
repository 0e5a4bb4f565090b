package scheduler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/century/internal/domain"
)

var (
	// ErrInvalidInput marks a request rejected before any processing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal marks a broken invariant in generated output.
	ErrInternal = errors.New("internal error")
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Result is the tagged outcome of a segmentation run. Entries holds every
// generated Block followed by its Terminator, in emission order. A warning
// may still carry entries when generation proceeded past a coverage gap.
type Result struct {
	Status  Status
	Message string
	Entries []domain.Entry
	Blocks  []*domain.Block
	Err     error
}

func okResult(entries []domain.Entry, blocks []*domain.Block) Result {
	return Result{
		Status:  StatusOK,
		Message: fmt.Sprintf("%d block(s) generated", len(blocks)),
		Entries: entries,
		Blocks:  blocks,
	}
}

func warnResult(msg string) Result {
	return Result{Status: StatusWarning, Message: msg}
}

func errResult(err error) Result {
	return Result{Status: StatusError, Message: err.Error(), Err: err}
}

// ParseLimits converts the starting block number and year limit typed by a
// user into integers.
func ParseLimits(startBlock, yearLimit string) (int, int, error) {
	sb, err := strconv.Atoi(strings.TrimSpace(startBlock))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: starting block number must be an integer, got %q", ErrInvalidInput, startBlock)
	}
	yl, err := strconv.Atoi(strings.TrimSpace(yearLimit))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: year limit must be an integer, got %q", ErrInvalidInput, yearLimit)
	}
	return sb, yl, nil
}
