// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

import (
	"bytes"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/MKhiriev/go-bio-console/models"
)

const (
	voiceSampleRate  = 16000
	minVoiceDuration = 0.3 // seconds
	spectrumBins     = 96
	minFrameLength   = 512
	maxFrameLength   = 2048
)

func extractVoice(raw []byte) ([]float64, error) {
	samples, sampleRate, err := decodeWAV(raw)
	if err != nil {
		return nil, err
	}

	samples = resample(samples, sampleRate, voiceSampleRate)
	if float64(len(samples)) < minVoiceDuration*voiceSampleRate {
		return nil, fmt.Errorf("%w: %.2fs", ErrCaptureTooShort, float64(len(samples))/voiceSampleRate)
	}

	if !normalizeSignal(samples) {
		return nil, ErrSilentCapture
	}

	return voiceVector(samples, voiceSampleRate), nil
}

// decodeWAV returns the mono waveform of a RIFF/WAVE capture and its sample
// rate. Channels are averaged.
func decodeWAV(raw []byte) ([]float64, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: not a RIFF/WAVE capture", ErrDecode)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate <= 0 {
		return nil, 0, fmt.Errorf("%w: missing audio format", ErrDecode)
	}

	channels := buf.Format.NumChannels
	mono := make([]float64, len(buf.Data)/channels)
	for i := range mono {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		mono[i] = sum / float64(channels)
	}

	return mono, buf.Format.SampleRate, nil
}

// resample converts samples to the target rate by linear interpolation.
func resample(samples []float64, from, to int) []float64 {
	if from == to || len(samples) == 0 {
		return samples
	}

	n := int(float64(len(samples)) * float64(to) / float64(from))
	out := make([]float64, n)
	step := float64(from) / float64(to)
	last := len(samples) - 1
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= last {
			out[i] = samples[last]
			continue
		}
		frac := pos - float64(j)
		out[i] = samples[j]*(1-frac) + samples[j+1]*frac
	}
	return out
}

// normalizeSignal removes the DC offset and scales the peak to 1 in place.
// It reports false for a signal with no variation.
func normalizeSignal(samples []float64) bool {
	var mean float64
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	var peak float64
	for i := range samples {
		samples[i] -= mean
		peak = math.Max(peak, math.Abs(samples[i]))
	}
	if peak == 0 {
		return false
	}

	for i := range samples {
		samples[i] /= peak
	}
	return true
}

// voiceVector computes 96 mean and 96 deviation spectrum bins, energy,
// zero-crossing rate and normalized spectral centroid, L2-normalized.
func voiceVector(samples []float64, sampleRate int) []float64 {
	frameLen := frameLength(sampleRate)
	hop := frameLen / 2
	window := hamming(frameLen)
	fft := fourier.NewFFT(frameLen)

	bins := frameLen/2 + 1
	sum := make([]float64, bins)
	sumSq := make([]float64, bins)

	frame := make([]float64, frameLen)
	var coeffs []complex128
	frames := 0
	for start := 0; start+frameLen <= len(samples); start += hop {
		for i := range frame {
			frame[i] = samples[start+i] * window[i]
		}
		coeffs = fft.Coefficients(coeffs, frame)
		for k, c := range coeffs {
			m := cmplx.Abs(c)
			sum[k] += m
			sumSq[k] += m * m
		}
		frames++
	}

	mean := make([]float64, bins)
	std := make([]float64, bins)
	if frames > 0 {
		for k := range mean {
			mean[k] = sum[k] / float64(frames)
			std[k] = math.Sqrt(math.Max(sumSq[k]/float64(frames)-mean[k]*mean[k], 0))
		}
	}

	vector := make([]float64, 0, models.VoiceVectorLength)
	vector = append(vector, interpolate(mean, spectrumBins)...)
	vector = append(vector, interpolate(std, spectrumBins)...)
	vector = append(vector,
		energy(samples),
		zeroCrossingRate(samples),
		spectralCentroid(mean, sampleRate, frameLen)/(float64(sampleRate)/2),
	)

	return l2Normalize(vector)
}

func frameLength(sampleRate int) int {
	n := int(0.03 * float64(sampleRate))
	return min(max(n, minFrameLength), maxFrameLength)
}

func hamming(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// interpolate resamples values to n points spread over the same range.
func interpolate(values []float64, n int) []float64 {
	out := make([]float64, n)
	if len(values) == 0 {
		return out
	}
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}

	scale := float64(len(values)-1) / float64(n-1)
	last := len(values) - 1
	for i := range out {
		pos := float64(i) * scale
		j := int(pos)
		if j >= last {
			out[i] = values[last]
			continue
		}
		frac := pos - float64(j)
		out[i] = values[j]*(1-frac) + values[j+1]*frac
	}
	return out
}

func energy(samples []float64) float64 {
	var e float64
	for _, s := range samples {
		e += s * s
	}
	return e / float64(len(samples))
}

func zeroCrossingRate(samples []float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(samples)-1)
}

func spectralCentroid(magnitudes []float64, sampleRate, frameLen int) float64 {
	var weighted, total float64
	for k, m := range magnitudes {
		weighted += float64(k) * float64(sampleRate) / float64(frameLen) * m
		total += m
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

func l2Normalize(v []float64) []float64 {
	norm := floats.Norm(v, 2)
	if norm == 0 {
		return v
	}
	floats.Scale(1/norm, v)
	return v
}
