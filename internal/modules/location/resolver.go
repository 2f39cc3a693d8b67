package location

import (
	"context"
	"sync"
	"time"
)

type Source string

const (
	SourceDevice  Source = "device"
	SourceManual  Source = "manual"
	SourceDefault Source = "default"
)

// Sample is one resolved coordinate with its provenance.
type Sample struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Source Source  `json:"source"`
	Sticky bool    `json:"sticky"`
}

// DefaultSample is the fallback coordinate when no fix is available
// (Armenia, Quindío city center).
var DefaultSample = Sample{Lat: 4.5339, Lon: -75.6811, Source: SourceDefault}

// FixProvider produces a device-grade position fix. Implementations must
// respect the context deadline.
type FixProvider interface {
	Fix(ctx context.Context) (lat, lon float64, err error)
}

// Resolver holds one session's location state. Precedence is
// manual(sticky) > last device fix > default constant. A manual choice wins
// until Reset, no matter how many device fixes arrive in between.
type Resolver struct {
	mutex    sync.Mutex
	provider FixProvider
	timeout  time.Duration

	manual *Sample
	device *Sample
}

func NewResolver(provider FixProvider, timeout time.Duration) *Resolver {
	return &Resolver{provider: provider, timeout: timeout}
}

// ReportDevice records a device fix as last-known. It does not displace an
// active sticky manual sample.
func (r *Resolver) ReportDevice(lat, lon float64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.device = &Sample{Lat: lat, Lon: lon, Source: SourceDevice}
}

// SetManual records a user-chosen coordinate and marks it sticky.
func (r *Resolver) SetManual(lat, lon float64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.manual = &Sample{Lat: lat, Lon: lon, Source: SourceManual, Sticky: true}
}

// Reset clears the sticky flag, reverting to device/default precedence.
func (r *Resolver) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.manual = nil
}

// Current returns the session's authoritative sample.
func (r *Resolver) Current() Sample {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.manual != nil {
		return *r.manual
	}
	if r.device != nil {
		return *r.device
	}
	return DefaultSample
}

// Refresh attempts one bounded fix acquisition. On timeout or provider error
// the state is left as-is, so Current falls back to the last known fix and
// then to the default. The sticky-manual rule applies: a fresh fix is
// recorded but does not change the resolved location while a manual sample
// is active. No retry loop; callers may re-trigger at will.
func (r *Resolver) Refresh(ctx context.Context) Sample {
	if r.provider != nil {
		fixCtx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		if lat, lon, err := r.provider.Fix(fixCtx); err == nil {
			r.ReportDevice(lat, lon)
		}
	}
	return r.Current()
}
