// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV audio into an audio.Source, for sound collection
// variants named with a ".wav" extension. It parses the canonical
// RIFF/WAVE/fmt/data header layout directly rather than through a RIFF
// library, and accepts only the canonical 44-byte header: "fmt " right
// after the RIFF header and "data" right after a 16-byte fmt chunk.
//
// # Supported formats
//
//   - PCM 16-bit (most common WAV format)
//   - Mono and stereo
//   - Any sample rate
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("explosion.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in [-1.0, 1.0]. engine.DefaultDecoderRegistry registers this
// Decoder under "wav", and engine.decodeAndResample picks it by the sample
// filename's ".wav" extension.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: unsupported WAV file structure
//
//	source, err := decoder.Decode(file)
//	if err == wav.ErrNotWavFile {
//	    fmt.Println("Not a WAV file")
//	}
package wav
