package renderer

import "strings"

// ConditionalBlock lets a renderer fully write a block and decide at the end
// whether to keep it. If the block function returns true the content is
// appended to r, otherwise it is discarded. Section headers are only worth
// printing when the section has rows.
func ConditionalBlock(r *mdRenderer, block func(*mdRenderer) bool) {
	buffered := &mdRenderer{Builder: &strings.Builder{}}
	if block(buffered) {
		r.WriteString(buffered.String())
	}
}
