// Package transform provides the buffer-manipulation node catalog:
// concatenation, overlay, normalization, silence removal, slicing, fades,
// repetition, channel conversion, multi-track mixing, tone generation, and
// sample-rate conversion. Every node follows the same shape: decode the
// referenced audio, apply one operation, re-encode through the context.
package transform
