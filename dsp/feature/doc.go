// Package feature derives perceptual and statistical descriptors from
// magnitude spectrograms: mel filterbanks, MFCCs, chromagrams, spectral
// contrast, spectral centroid, and the amplitude/power/decibel scale
// conversions that connect them.
//
// Spectrogram inputs are indexed [frame][bin] as produced by the stft
// package; matrix-valued outputs keep the same orientation.
package feature
