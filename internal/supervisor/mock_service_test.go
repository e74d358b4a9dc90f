// CineAPI - Movie Metadata and Content-Based Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineapi

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// fakeService is a suture.Service that fails a scripted number of times
// and then runs until its context ends.
type fakeService struct {
	name     string
	failures int32
	starts   atomic.Int32
	stops    atomic.Int32
}

func newFakeService(name string, failures int) *fakeService {
	return &fakeService{name: name, failures: int32(failures)}
}

func (f *fakeService) Serve(ctx context.Context) error {
	n := f.starts.Add(1)
	defer f.stops.Add(1)

	if n <= f.failures {
		return errors.New("simulated failure")
	}

	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeService) String() string {
	return f.name
}
