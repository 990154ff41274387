// package player implements playback control for generated episodes.
//
// The core abstraction is [Media], a backend that plays audio and reports
// state changes on an event channel. [Player] is a controller over a Media:
// it asks the backend to play, pause, seek, or change rate, and updates its
// own state from the backend's events rather than assuming the request took
// effect. Seeking is the one optimistic operation. [BeepMedia] is the
// concrete backend for local MP3 files.
package player

import (
	"fmt"
	"math"

	"github.com/desertthunder/podx/internal/shared"
)

// EventKind identifies a state change reported by a media backend.
type EventKind int

const (
	EventPlay EventKind = iota
	EventPause
	EventTimeUpdate
	EventMetadata
	EventEnded
	EventError
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventTimeUpdate:
		return "timeupdate"
	case EventMetadata:
		return "loadedmetadata"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single media event. Time and Duration are seconds.
type Event struct {
	Kind     EventKind
	Time     float64
	Duration float64
	Err      error
}

// Media is the playback backend a Player drives. Implementations report
// state changes on the Events channel; the Player treats those reports as
// the source of truth for play state.
type Media interface {
	Play() error
	Pause() error
	Seek(seconds float64) error
	SetRate(rate float64) error
	Events() <-chan Event
	Close() error
}

// Rates returns the supported playback rates in cycling order.
func Rates() []float64 {
	return []float64{0.5, 1.0, 1.5, 2.0}
}

// Player tracks playback state for a single episode.
type Player struct {
	media       Media
	playing     bool
	currentTime float64
	duration    float64
	rate        float64
	err         error
}

// New creates a Player over the given backend. A nil backend yields a
// display-only controller that still tracks state from events.
func New(m Media) *Player {
	return &Player{media: m, rate: 1.0}
}

// PlayPause asks the backend to play if paused and pause if playing. The
// playing flag is untouched here; it flips when the backend reports the
// change through HandleEvent.
//
// Playing again after the episode ended rewinds to the start first.
func (p *Player) PlayPause() error {
	if p.media == nil {
		return nil
	}
	if p.playing {
		return p.media.Pause()
	}
	if p.duration > 0 && p.currentTime >= p.duration {
		if err := p.Seek(0); err != nil {
			return err
		}
	}
	return p.media.Play()
}

// HandleEvent applies a backend event to the controller state.
func (p *Player) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventPlay:
		p.playing = true
	case EventPause:
		p.playing = false
	case EventTimeUpdate:
		p.currentTime = ev.Time
	case EventMetadata:
		p.duration = ev.Duration
	case EventEnded:
		p.playing = false
		p.currentTime = p.duration
	case EventError:
		p.playing = false
		p.err = ev.Err
	}
}

// OnTimeUpdate records the backend's playback position.
func (p *Player) OnTimeUpdate(seconds float64) {
	p.HandleEvent(Event{Kind: EventTimeUpdate, Time: seconds})
}

// OnMetadataLoaded records the episode duration once the backend knows it.
func (p *Player) OnMetadataLoaded(seconds float64) {
	p.HandleEvent(Event{Kind: EventMetadata, Duration: seconds})
}

// Seek moves playback to the given position, clamped to [0, duration]. The
// position updates immediately rather than waiting for a backend event.
func (p *Player) Seek(seconds float64) error {
	target := seconds
	if target < 0 || math.IsNaN(target) {
		target = 0
	}
	if target > p.duration {
		target = p.duration
	}
	p.currentTime = target
	if p.media == nil {
		return nil
	}
	return p.media.Seek(target)
}

// SetRate switches playback speed to one of Rates.
func (p *Player) SetRate(rate float64) error {
	supported := false
	for _, r := range Rates() {
		if r == rate {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: %g", shared.ErrInvalidRate, rate)
	}
	p.rate = rate
	if p.media == nil {
		return nil
	}
	return p.media.SetRate(rate)
}

// NextRate returns the rate after the current one, wrapping around from the
// fastest back to the slowest.
func (p *Player) NextRate() float64 {
	rates := Rates()
	for i, r := range rates {
		if r == p.rate {
			return rates[(i+1)%len(rates)]
		}
	}
	return 1.0
}

// Playing reports whether the backend last reported itself as playing.
func (p *Player) Playing() bool { return p.playing }

// CurrentTime returns the playback position in seconds.
func (p *Player) CurrentTime() float64 { return p.currentTime }

// Duration returns the episode length in seconds, zero until metadata loads.
func (p *Player) Duration() float64 { return p.duration }

// Rate returns the current playback rate.
func (p *Player) Rate() float64 { return p.rate }

// Err returns the last playback error reported by the backend.
func (p *Player) Err() error { return p.err }

// Close releases the backend.
func (p *Player) Close() error {
	if p.media == nil {
		return nil
	}
	return p.media.Close()
}

// FormatTime renders a playback position in seconds as M:SS for transport
// displays. See [shared.FormatDuration] for the exact rules.
func FormatTime(seconds float64) string {
	return shared.FormatDuration(seconds)
}
