package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/NoelToby/pindrop/utils"
)

// ResampleToMono16PCM runs src through the resample-then-downmix pipeline
// (NewResampler followed by NewMonoMixer) and collects the result as
// interleaved little-endian 16-bit PCM at targetRate — the exact byte
// layout a Mixer.PlayChannel buffer voice expects. bufferSize sizes the
// intermediate float32 read buffer; it does not bound the output.
//
// This is the pipeline every sound variant goes through on first load (see
// engine.decodeAndResample); callers that need the float32 samples
// themselves, rather than encoded PCM, should build the same pipeline from
// NewResampler and NewMonoMixer directly.
func ResampleToMono16PCM(src Source, targetRate int, bufferSize int) ([]byte, error) {
	resampler := NewResampler(src, targetRate)
	mono := NewMonoMixer(resampler)

	pcm := make([]byte, 0, bufferSize*2)
	buf := make([]float32, bufferSize)
	var sampleBuf [2]byte

	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint16(sampleBuf[:], uint16(utils.Float32ToInt16(buf[i])))
			pcm = append(pcm, sampleBuf[0], sampleBuf[1])
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("resampling: %w", err)
		}
	}

	return pcm, nil
}
