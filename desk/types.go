package desk

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/on-the-ground/tally/memo"
)

var (
	// ErrClosed is returned for work submitted to, or stranded in, a closed desk.
	ErrClosed = errors.New("desk: closed")
	// ErrBadOptions indicates invalid worker or buffer settings.
	ErrBadOptions = errors.New("desk: invalid options")
)

// Options configures a Desk.
//
// Fields:
//   - Workers: number of workers, each with its own cache.
//   - BufferSize: pending requests buffered per worker.
//   - Cache: options for every worker cache.
type Options struct {
	Workers    int
	BufferSize int
	Cache      memo.Options
}

func DefaultOptions() Options {
	return Options{
		Workers:    4,
		BufferSize: 16,
		Cache:      memo.DefaultOptions(),
	}
}

func (o Options) Validate() error {
	if o.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadOptions, o.Workers)
	}
	if o.BufferSize < 0 {
		return fmt.Errorf("%w: buffer size must not be negative, got %d", ErrBadOptions, o.BufferSize)
	}
	return o.Cache.Validate()
}

// Request asks for Value compounded at Rate percent for Steps periods.
type Request struct {
	ID     uuid.UUID
	Series string
	Value  float64
	Rate   float64
	Steps  int
}

// NewRequest returns a Request with a fresh random ID.
func NewRequest(series string, value, rate float64, steps int) Request {
	return Request{
		ID:     uuid.New(),
		Series: series,
		Value:  value,
		Rate:   rate,
		Steps:  steps,
	}
}

// Response carries the forecast and the serving worker's cache size after it.
type Response struct {
	ID        uuid.UUID
	Series    string
	Value     float64
	CacheSize int
}

type jobKind int

const (
	jobForecast jobKind = iota
	jobClear
)

type job struct {
	kind  jobKind
	req   Request
	reply chan Response
}

func (j job) PartitionKey() string { return j.req.Series }
