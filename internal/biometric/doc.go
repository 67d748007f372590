// Package biometric converts raw face images and voice recordings into
// fixed-length feature vectors.
//
// Face captures are decoded with the image package (plus the bmp, tiff and
// webp decoders from golang.org/x/image), searched with a pigo cascade and
// reduced to 1000 values. Voice captures are RIFF/WAVE recordings reduced to
// a 195-value spectral signature.
package biometric
