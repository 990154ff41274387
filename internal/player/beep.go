package player

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"

	"github.com/desertthunder/podx/internal/shared"
)

// resampleQuality trades CPU for fidelity; 4 is fine for realtime speech.
const resampleQuality = 4

// tickInterval is how often the position goroutine reports playback time.
const tickInterval = 200 * time.Millisecond

// speakerOnce guards speaker.Init, which may only run once per process.
var speakerOnce sync.Once

// BeepMedia implements Media for an MP3 file on disk. The decoded stream is
// wrapped in a beep.Ctrl for pausing and a beep.Resampler for live rate
// changes, then queued on the speaker paused. All stream mutation happens
// under the speaker lock.
type BeepMedia struct {
	streamer  beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	resampler *beep.Resampler

	events   chan Event
	done     chan struct{}
	tickDone chan struct{}
	closed   sync.Once
}

// OpenMP3 decodes the MP3 at path and queues it on the speaker without
// starting playback. The episode duration is emitted as an EventMetadata
// before OpenMP3 returns.
func OpenMP3(path string) (*BeepMedia, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlayback, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to decode %s: %v", shared.ErrPlayback, path, err)
	}

	var initErr error
	speakerOnce.Do(func() {
		initErr = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	})
	if initErr != nil {
		streamer.Close()
		return nil, fmt.Errorf("%w: failed to init speaker: %v", shared.ErrPlayback, initErr)
	}

	m := &BeepMedia{
		streamer: streamer,
		format:   format,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
		tickDone: make(chan struct{}),
	}
	m.ctrl = &beep.Ctrl{Streamer: streamer, Paused: true}
	m.resampler = beep.ResampleRatio(resampleQuality, 1.0, m.ctrl)

	speaker.Play(beep.Seq(m.resampler, beep.Callback(func() {
		m.send(Event{Kind: EventEnded})
	})))

	m.send(Event{Kind: EventMetadata, Duration: format.SampleRate.D(streamer.Len()).Seconds()})

	go m.tick()
	return m, nil
}

// Events returns the channel backend state changes are reported on.
func (m *BeepMedia) Events() <-chan Event {
	return m.events
}

// Play unpauses the stream. The speaker honors the flag as soon as the lock
// releases, so the flip is reported as the play event.
func (m *BeepMedia) Play() error {
	speaker.Lock()
	m.ctrl.Paused = false
	speaker.Unlock()
	m.send(Event{Kind: EventPlay})
	return nil
}

// Pause silences the stream without losing position.
func (m *BeepMedia) Pause() error {
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
	m.send(Event{Kind: EventPause})
	return nil
}

// Seek jumps to the given position in seconds, clamped to the stream bounds.
func (m *BeepMedia) Seek(seconds float64) error {
	speaker.Lock()
	defer speaker.Unlock()

	n := m.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	if n < 0 {
		n = 0
	}
	if n > m.streamer.Len() {
		n = m.streamer.Len()
	}

	if err := m.streamer.Seek(n); err != nil {
		return fmt.Errorf("%w: seek failed: %v", shared.ErrPlayback, err)
	}

	m.send(Event{Kind: EventTimeUpdate, Time: m.format.SampleRate.D(m.streamer.Position()).Seconds()})
	return nil
}

// SetRate adjusts playback speed by changing the resample ratio in place.
func (m *BeepMedia) SetRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %g", shared.ErrInvalidRate, rate)
	}
	speaker.Lock()
	m.resampler.SetRatio(rate)
	speaker.Unlock()
	return nil
}

// Close stops the position goroutine, clears the speaker queue, and closes
// the decoder. The event channel is closed last, once no sender is left, so
// readers blocked on Events wake up. Safe to call more than once.
func (m *BeepMedia) Close() error {
	var err error
	m.closed.Do(func() {
		close(m.done)
		<-m.tickDone
		speaker.Clear()
		err = m.streamer.Close()
		close(m.events)
	})
	return err
}

// tick reports playback position while the stream is running.
func (m *BeepMedia) tick() {
	defer close(m.tickDone)

	t := time.NewTicker(tickInterval)
	defer t.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-t.C:
			speaker.Lock()
			paused := m.ctrl.Paused
			pos := m.format.SampleRate.D(m.streamer.Position()).Seconds()
			speaker.Unlock()

			if !paused {
				m.send(Event{Kind: EventTimeUpdate, Time: pos})
			}
		}
	}
}

// send reports an event without blocking. A full channel drops the update,
// matching the progress reporting discipline elsewhere.
func (m *BeepMedia) send(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}
