// Package analysis provides the spectral-analysis node catalog: STFT and
// mel/MFCC/chroma/contrast/centroid features, amplitude/power/decibel
// conversions, Griffin-Lim reconstruction, and spectrogram plotting. Each
// node is a parameter record validated at construction and executed once
// against an engine context.
package analysis
