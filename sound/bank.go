package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

var ErrUnknownSound = errors.New("sound: unknown effect")

// Bank resolves effect names to decoded audio. Sources are searched in
// order for "<name>.wav"; built-in synthesized effects come last. Decoded
// effects are cached for the life of the bank.
type Bank struct {
	sources []fs.FS
	rate    beep.SampleRate

	mu    sync.Mutex
	cache map[string]*beep.Buffer
}

// NewBank creates a bank. rate is used for the built-in effects.
func NewBank(rate beep.SampleRate, sources ...fs.FS) *Bank {
	return &Bank{
		sources: sources,
		rate:    rate,
		cache:   make(map[string]*beep.Buffer),
	}
}

// Source returns a fresh streamer over the named effect and its format.
func (b *Bank) Source(name string) (beep.Streamer, beep.Format, error) {
	buf, err := b.load(name)
	if err != nil {
		return nil, beep.Format{}, err
	}
	return buf.Streamer(0, buf.Len()), buf.Format(), nil
}

// Preload decodes names ahead of the first pickup.
func (b *Bank) Preload(names ...string) error {
	var errs []error
	for _, name := range names {
		if _, err := b.load(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *Bank) load(name string) (*beep.Buffer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if buf, ok := b.cache[name]; ok {
		return buf, nil
	}

	file := name + ".wav"
	if name == "" || !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
	}

	for _, src := range b.sources {
		data, err := fs.ReadFile(src, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("sound: read %s: %w", file, err)
		}
		buf, err := decodeWAV(data)
		if err != nil {
			return nil, fmt.Errorf("sound: decode %s: %w", file, err)
		}
		b.cache[name] = buf
		return buf, nil
	}

	if gen, ok := builtins[name]; ok {
		buf := beep.NewBuffer(beep.Format{SampleRate: b.rate, NumChannels: 2, Precision: 2})
		buf.Append(gen(b.rate))
		b.cache[name] = buf
		return buf, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSound, name)
}

func decodeWAV(data []byte) (*beep.Buffer, error) {
	s, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer s.Close()

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}
