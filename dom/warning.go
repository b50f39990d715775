package dom

import "fmt"

// Warning records a suspect event the builder tolerated, such as a
// leave event naming a kind other than the node it closed.
type Warning struct {
	format string
	args   []interface{}
}

func (w *Warning) String() string {
	return fmt.Sprintf(w.format, w.args...)
}

func (b *Builder) warn(format string, args ...interface{}) {
	b.warnings = append(b.warnings, &Warning{format: format, args: args})
	b.log.Warn().Msgf(format, args...)
}

// Warnings returns the warnings recorded since the last Reset.
func (b *Builder) Warnings() []*Warning {
	return b.warnings
}
