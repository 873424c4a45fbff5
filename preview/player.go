// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// Player plays transient mono previews through the default output
// device. Playback runs on its own goroutine so drawing input is never
// frozen while audio plays; starting a new preview stops the one in
// flight without waiting for it to finish.
type Player struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewPlayer initializes the audio subsystem. Close must be called to
// release it.
func NewPlayer() (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing audio: %w", err)
	}

	return &Player{}, nil
}

// Play starts playback of samples at sampleRate, cancelling any preview
// already playing. The samples slice is not retained beyond the
// playback that was started; callers pass a snapshot copy.
func (p *Player) Play(samples []float64, sampleRate int) error {
	p.Stop()

	buf := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, &buf)
	if err != nil {
		return fmt.Errorf("opening output stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("starting output stream: %w", err)
	}

	stop := make(chan struct{})
	done := make(chan struct{})

	p.mu.Lock()
	p.stop = stop
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		defer stream.Close()
		defer stream.Stop()

		for offset := 0; offset < len(samples); offset += framesPerBuffer {
			select {
			case <-stop:
				return
			default:
			}

			for i := range buf {
				if offset+i < len(samples) {
					buf[i] = float32(samples[offset+i])
				} else {
					buf[i] = 0 // zero-pad the tail
				}
			}

			if err := stream.Write(); err != nil {
				// an output error ends the preview; nothing to salvage
				return
			}
		}
	}()

	return nil
}

// Stop cancels the current preview, if any, and waits for its goroutine
// to release the stream.
func (p *Player) Stop() {
	p.mu.Lock()
	stop, done := p.stop, p.done
	p.stop, p.done = nil, nil
	p.mu.Unlock()

	if stop == nil {
		return
	}

	select {
	case <-stop:
		// already cancelled
	default:
		close(stop)
	}
	<-done
}

// Close stops playback and terminates the audio subsystem.
func (p *Player) Close() error {
	p.Stop()

	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("terminating audio: %w", err)
	}
	return nil
}
