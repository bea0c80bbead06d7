package output

import (
	"time"

	"github.com/manav03panchal/arbeitszeit/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ThresholdOutput represents one computed end time in JSON.
type ThresholdOutput struct {
	Kind          string `json:"kind"`
	Label         string `json:"label"`
	End           string `json:"end"`
	TargetAt      string `json:"target_at"`
	WorkMinutes   int64  `json:"work_minutes"`
	BreakMinutes  int64  `json:"break_minutes"`
	OffsetMinutes int64  `json:"offset_minutes"`
}

// ProjectionResponse represents the calc command output in JSON.
type ProjectionResponse struct {
	Status     string             `json:"status"`
	Start      string             `json:"start"`
	MinEnd     string             `json:"min_end"`
	MaxEnd     string             `json:"max_end"`
	Thresholds []*ThresholdOutput `json:"thresholds"`
}

// NewProjectionResponse creates a ProjectionResponse from a projection.
func NewProjectionResponse(p model.Projection, thresholds []model.Threshold) *ProjectionResponse {
	resp := &ProjectionResponse{
		Status:     "ok",
		Start:      p.Start.String(),
		MinEnd:     p.MinEnd.String(),
		MaxEnd:     p.MaxEnd.String(),
		Thresholds: make([]*ThresholdOutput, 0, len(thresholds)),
	}
	for _, th := range thresholds {
		resp.Thresholds = append(resp.Thresholds, &ThresholdOutput{
			Kind:          th.Kind.String(),
			Label:         th.Label(),
			End:           p.End(th.Kind).String(),
			TargetAt:      FormatInstant(p.TargetAt(th.Kind)),
			WorkMinutes:   int64(th.Work / time.Minute),
			BreakMinutes:  int64(th.Break / time.Minute),
			OffsetMinutes: int64(th.Offset() / time.Minute),
		})
	}
	return resp
}

// CountdownOutput represents a countdown in JSON output.
type CountdownOutput struct {
	ID               string `json:"id"`
	Kind             string `json:"kind"`
	Target           string `json:"target"`
	TargetAt         string `json:"target_at"`
	Remaining        string `json:"remaining"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Finished         bool   `json:"finished"`
}

// NewCountdownOutput creates a CountdownOutput from a Countdown.
func NewCountdownOutput(cd *model.Countdown) *CountdownOutput {
	return &CountdownOutput{
		ID:               cd.ID,
		Kind:             cd.Kind.String(),
		Target:           cd.TargetTime.String(),
		TargetAt:         FormatInstant(cd.TargetAt),
		Remaining:        cd.Display(),
		RemainingSeconds: int64(cd.Remaining / time.Second),
		Finished:         cd.Finished,
	}
}

// ConfigOutput represents the effective configuration in JSON.
type ConfigOutput struct {
	Path            string `json:"path"`
	MinimumWork     string `json:"minimum_work"`
	MaximumWork     string `json:"maximum_work"`
	Break           string `json:"break"`
	TickInterval    string `json:"tick_interval"`
	TransitionDelay string `json:"transition_delay"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintProjection outputs a projection in JSON format.
func (j *JSONFormatter) PrintProjection(p model.Projection, thresholds []model.Threshold) error {
	return j.JSON(NewProjectionResponse(p, thresholds))
}

// PrintCountdown outputs a countdown in JSON format.
func (j *JSONFormatter) PrintCountdown(cd *model.Countdown) error {
	return j.JSON(NewCountdownOutput(cd))
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}
