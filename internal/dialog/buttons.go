package dialog

import "strings"

// Layout is the ordered set of buttons a backend shows for one canonical
// result type. The same layout is used to place the default button and to
// decode the pressed button, so both directions always agree.
type Layout[T comparable] struct {
	Labels  []string
	Results []T
}

// NewLayout pairs labels with results. Both slices must have the same length.
func NewLayout[T comparable](labels []string, results []T) Layout[T] {
	if len(labels) != len(results) {
		panic("dialog: layout labels and results differ in length")
	}
	return Layout[T]{Labels: labels, Results: results}
}

// Index returns the button index that produces r.
func (l Layout[T]) Index(r T) (int, bool) {
	for i, v := range l.Results {
		if v == r {
			return i, true
		}
	}
	return NoDefault, false
}

// Label returns the label of the button that produces r.
func (l Layout[T]) Label(r T) string {
	if i, ok := l.Index(r); ok {
		return l.Labels[i]
	}
	return ""
}

// At decodes a pressed button index.
func (l Layout[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(l.Results) {
		return zero, false
	}
	return l.Results[i], true
}

// Lookup decodes a pressed button label, ignoring case and surrounding space.
func (l Layout[T]) Lookup(label string) (T, bool) {
	label = strings.TrimSpace(label)
	for i, s := range l.Labels {
		if strings.EqualFold(s, label) {
			return l.Results[i], true
		}
	}
	var zero T
	return zero, false
}

// Box builds the concrete message box for m with def as default button.
func (l Layout[T]) Box(m Message, def T) MessageBox {
	idx, ok := l.Index(def)
	if !ok {
		idx = NoDefault
	}
	labels := make([]string, len(l.Labels))
	copy(labels, l.Labels)
	return MessageBox{Message: m, Buttons: labels, DefaultButton: idx}
}

// Common layouts in reading order. Backends with a different native order
// declare their own.
var (
	OkCancelLayout    = NewLayout([]string{"OK", "Cancel"}, []OkCancel{Ok, Cancel})
	YesNoLayout       = NewLayout([]string{"Yes", "No"}, []YesNo{Yes, No})
	YesNoCancelLayout = NewLayout([]string{"Yes", "No", "Cancel"}, []YesNoCancel{YesNoCancelYes, YesNoCancelNo, YesNoCancelCancel})
)
