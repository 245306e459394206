// Package asset provides a concrete engine context backed by a
// content-addressed blob store. It decodes WAV, AIFF, MP3 and Ogg Vorbis
// assets into clips, encodes results back to 16-bit WAV, and optionally
// mirrors every blob into a directory so exported segments survive the
// process. Tests and the command line tool use it as the graph.Context
// implementation; a real workflow engine would supply its own.
package asset
