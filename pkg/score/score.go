// Package score holds the fixed scoring values the mock service reports.
package score

// Known bias labels. Anything else falls through to the neutral score.
const (
	LabelLeft   = "left"
	LabelCenter = "center"
	LabelRight  = "right"
)

// Result is the payload returned for every request, fixed at startup.
type Result struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// ForLabel maps a bias label to its canned score.
func ForLabel(label string) float64 {
	switch label {
	case LabelLeft:
		return -1.0
	case LabelRight:
		return 1.0
	case LabelCenter:
		return 0.0
	default:
		return 0.0
	}
}

// NewResult builds the immutable response payload for the given label.
// The label is echoed back verbatim, recognized or not.
func NewResult(label string) Result {
	return Result{
		Score: ForLabel(label),
		Label: label,
	}
}
