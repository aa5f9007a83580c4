package scaffold

import (
	"fmt"
	"io"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/style"
)

// Reporter prints numbered progress lines. The counter is owned by the
// reporter and only ever grows.
type Reporter struct {
	w          io.Writer
	styles     *style.Styles
	labelStyle string
	step       int
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:          w,
		styles:     style.ForWriter(w),
		labelStyle: style.StepLabel,
	}
}

// WithDimLabels renders labels faint, as the follow-up scripts do
func (r *Reporter) WithDimLabels() *Reporter {
	r.labelStyle = style.StepLabelDim
	return r
}

// Step increments the counter and prints "STEP <n>: <label>"
func (r *Reporter) Step(label string) {
	r.step++
	prefix := r.styles.Render(style.StepPrefix, fmt.Sprintf("STEP %d:", r.step))
	fmt.Fprintf(r.w, "%s %s\n", prefix, r.styles.Render(r.labelStyle, label))
}

// Count returns the number of the last reported step
func (r *Reporter) Count() int {
	return r.step
}
