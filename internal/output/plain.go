package output

import (
	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// PlainFormatter writes unstyled, line-oriented output for scripts.
type PlainFormatter struct {
	*Formatter
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(f *Formatter) *PlainFormatter {
	return &PlainFormatter{Formatter: f}
}

// PrintProjection prints "start", "min" and "max" lines.
func (p *PlainFormatter) PrintProjection(proj model.Projection) {
	p.Printf("start %s\n", proj.Start)
	for _, kind := range model.ThresholdKinds {
		p.Printf("%s %s\n", kind, proj.End(kind))
	}
}

// PrintCountdown prints "<kind> <target> <remaining>[ finished]".
func (p *PlainFormatter) PrintCountdown(cd *model.Countdown) {
	line := cd.Kind.String() + " " + cd.TargetTime.String() + " " + cd.Display()
	if cd.Finished {
		line += " finished"
	}
	p.Println(line)
}
