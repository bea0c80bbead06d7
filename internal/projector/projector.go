// Package projector maps a work start time to the end times of the
// minimum and maximum work thresholds.
package projector

import (
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// Projector computes end times from a fixed threshold policy.
type Projector struct {
	minimum model.Threshold
	maximum model.Threshold
}

// New returns a projector for the given policies. Missing kinds fall back
// to the default policy.
func New(thresholds []model.Threshold) *Projector {
	p := &Projector{}
	defaults := model.DefaultThresholds()
	p.minimum, p.maximum = defaults[0], defaults[1]
	for _, t := range thresholds {
		switch t.Kind {
		case model.ThresholdMinimum:
			p.minimum = t
		case model.ThresholdMaximum:
			p.maximum = t
		}
	}
	return p
}

// Default returns a projector for the statutory 7.6h / 9h policy.
func Default() *Projector {
	return New(model.DefaultThresholds())
}

// Threshold returns the policy for kind.
func (p *Projector) Threshold(kind model.ThresholdKind) model.Threshold {
	if kind == model.ThresholdMaximum {
		return p.maximum
	}
	return p.minimum
}

// Thresholds returns both policies in display order.
func (p *Projector) Thresholds() []model.Threshold {
	return []model.Threshold{p.minimum, p.maximum}
}

// End returns start shifted by the offset of kind, modulo 24h.
func (p *Projector) End(start model.ClockTime, kind model.ThresholdKind) model.ClockTime {
	return start.Add(p.Threshold(kind).Offset())
}

// Project computes both end times for start. The absolute targets are
// anchored on day's calendar date and computed on the wall clock, so they
// always read MinEnd and MaxEnd; an end past midnight lands on the next day.
func (p *Projector) Project(start model.ClockTime, day time.Time) model.Projection {
	return model.Projection{
		Start:       start,
		MinEnd:      p.End(start, model.ThresholdMinimum),
		MaxEnd:      p.End(start, model.ThresholdMaximum),
		StartAt:     start.On(day),
		MinTargetAt: start.OnAfter(day, p.minimum.Offset()),
		MaxTargetAt: start.OnAfter(day, p.maximum.Offset()),
	}
}
