// SPDX-License-Identifier: EPL-2.0

package audio

// Processor transforms the input of a Context into its output.
//
// Process runs on the audio callback: it must not allocate, block or take a
// lock, and it has no way to fail. Every output sample it visits is written
// once; samples beyond the active length are left alone.
type Processor interface {
	Process(ctx *Context)
}

// ProcessorFunc adapts a plain function to a Processor.
type ProcessorFunc func(ctx *Context)

// Process calls f(ctx).
func (f ProcessorFunc) Process(ctx *Context) { f(ctx) }
