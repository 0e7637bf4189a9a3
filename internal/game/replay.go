package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// replayVersion is bumped whenever the on-disk layout changes.
const replayVersion = 1

// ErrReplayVersion is returned when a replay was written by an incompatible build.
var ErrReplayVersion = errors.New("unsupported replay version")

// ReplayFrame is one recorded Step call.
type ReplayFrame struct {
	ElapsedUS int64 `msgpack:"e"`
	Input     uint8 `msgpack:"i"`
}

// Replay is a recorded session: the level name, the config and every frame's
// elapsed time and input. Replaying it against the same level reproduces the
// session exactly since Step is deterministic.
type Replay struct {
	Version int           `msgpack:"v"`
	Level   string        `msgpack:"level"`
	Config  Config        `msgpack:"config"`
	Frames  []ReplayFrame `msgpack:"frames"`
}

// Recorder accumulates frames while a session is played.
type Recorder struct {
	replay Replay
}

// NewRecorder starts a recording for a session on level with cfg.
func NewRecorder(level string, cfg Config) *Recorder {
	return &Recorder{replay: Replay{Version: replayVersion, Level: level, Config: cfg}}
}

// Record appends one frame.
func (r *Recorder) Record(elapsed time.Duration, in InputState) {
	r.replay.Frames = append(r.replay.Frames, ReplayFrame{
		ElapsedUS: elapsed.Microseconds(),
		Input:     in.Bits(),
	})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.replay.Frames) }

// Replay returns the recording so far.
func (r *Recorder) Replay() *Replay {
	out := r.replay
	out.Frames = append([]ReplayFrame(nil), r.replay.Frames...)
	return &out
}

// Encode writes the recording in msgpack form.
func (r *Recorder) Encode(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(&r.replay)
}

// Save writes the recording to a file.
func (r *Recorder) Save(file string) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create replay file %s: %w", file, err)
	}
	if err := r.Encode(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write replay file %s: %w", file, err)
	}
	return f.Close()
}

// DecodeReplay reads a msgpack-encoded replay.
func DecodeReplay(rd io.Reader) (*Replay, error) {
	var rp Replay
	if err := msgpack.NewDecoder(rd).Decode(&rp); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if rp.Version != replayVersion {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrReplayVersion, rp.Version, replayVersion)
	}
	return &rp, nil
}

// LoadReplay reads a replay file.
func LoadReplay(file string) (*Replay, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file %s: %w", file, err)
	}
	defer f.Close()
	return DecodeReplay(f)
}

// Drive feeds every recorded frame into s. It stops early at game over and
// returns the number of frames applied.
func (rp *Replay) Drive(s *Sim) int {
	n := 0
	for _, f := range rp.Frames {
		res := s.Step(time.Duration(f.ElapsedUS)*time.Microsecond, InputFromBits(f.Input))
		n++
		if res.GameOver {
			break
		}
	}
	return n
}

// Duration returns the total recorded wall-clock time.
func (rp *Replay) Duration() time.Duration {
	var us int64
	for _, f := range rp.Frames {
		us += f.ElapsedUS
	}
	return time.Duration(us) * time.Microsecond
}
