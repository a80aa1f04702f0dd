// Package singleton illustrates the Singleton pattern: one lazily
// constructed Config shared by every caller.
//
// Instance is the only way to obtain the Config. The first call constructs
// it under sync.Once; every later call returns the same pointer. New exists
// only to show the other half of the contract: attempting to construct a
// Config directly is rejected with a typed error.
package singleton

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// Config is the process-wide configuration object guarded by Instance.
//
// InstanceID is assigned once at construction; two Config values with the
// same ID are the same instance.
type Config struct {
	Env        string
	InstanceID string
}

var (
	once     sync.Once
	instance *Config
)

// DirectConstructionError is returned by New to reject bypassing the
// single-instance contract.
type DirectConstructionError struct{}

// Error implements the error interface.
func (DirectConstructionError) Error() string {
	return "singleton: direct construction is not allowed, use Instance"
}

// New always fails. It exists to make the contract explicit: callers must
// go through Instance.
func New() (*Config, error) {
	return nil, DirectConstructionError{}
}

// Instance returns the singleton Config, constructing it on first use.
//
// It is safe for concurrent callers; all of them observe the same pointer.
func Instance() *Config {
	once.Do(func() {
		instance = &Config{
			Env:        "local",
			InstanceID: uuid.NewString(),
		}
	})
	return instance
}

// Demo exercises the pattern and writes the transcript to w.
//
// The IDs themselves are random, so the transcript reports identity checks
// rather than raw values.
func Demo(w io.Writer) error {
	if _, err := New(); err != nil {
		if _, werr := fmt.Fprintf(w, "direct construction rejected: %v\n", err); werr != nil {
			return werr
		}
	}

	first := Instance()
	second := Instance()

	if _, err := fmt.Fprintf(w, "same instance: %t\n", first == second); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "same instance id: %t\n", first.InstanceID == second.InstanceID)
	return err
}
