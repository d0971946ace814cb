package subtitle

import (
	"time"

	"github.com/mgpai22/srtlint/internal/logging"
)

// represents single sealed subtitle block
type Record struct {
	ID    uint64
	Start time.Duration
	End   time.Duration
	Text  []string
}

// Options controls both pipeline stages.
type Options struct {
	// Verbose enables informational notes about internal actions.
	Verbose bool
	// Strict enables padding, first-counter, equal-timestamp and markup checks.
	Strict bool
	Logger *logging.Logger
}

func (o Options) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

// working buffer for the record under construction; every field starts unset
type recordBuffer struct {
	id       uint64
	start    time.Duration
	end      time.Duration
	hasID    bool
	hasStart bool
	hasEnd   bool
}

func (b *recordBuffer) complete() bool {
	return b.hasID && b.hasStart && b.hasEnd
}

func (b *recordBuffer) seal(text []string) Record {
	return Record{
		ID:    b.id,
		Start: b.start,
		End:   b.end,
		Text:  text,
	}
}

func (b *recordBuffer) reset() {
	*b = recordBuffer{}
}
