package remote

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/paint"
)

// Replay applies a newline-delimited JSON event stream to c and returns the
// number of events applied. Event failures are logged at debug level and
// skipped; a malformed stream stops the replay with an error.
func Replay(c *paint.Controller, r io.Reader, log *slog.Logger) (int, error) {
	if log == nil {
		log = paint.Logger()
	}
	dec := json.NewDecoder(r)
	n := 0
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, fmt.Errorf("remote: replay event %d: %w", n+1, err)
		}
		n++
		if err := Apply(c, ev); err != nil {
			log.Debug("remote: replayed event failed",
				slog.Int("event", n), slog.String("type", ev.Type), slog.Any("err", err))
		}
	}
}
