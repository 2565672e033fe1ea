package trace

import (
	"context"

	"github.com/ib-77/cond/pkg/cond"
)

type OptionKey string

const RecorderOptionKey OptionKey = "recorder_options"

type RecorderOptions struct {
	Recorder *Recorder
}

func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, RecorderOptionKey, RecorderOptions{Recorder: r})
}

func FromContext(ctx context.Context) (*Recorder, bool) {
	options, ok := ctx.Value(RecorderOptionKey).(RecorderOptions)
	if ok && options.Recorder != nil {
		return options.Recorder, true
	}
	return nil, false
}

// Watch records p on the context's recorder. Without one p is returned as is.
func Watch(ctx context.Context, label string, p cond.Predicate) cond.Predicate {
	if r, ok := FromContext(ctx); ok {
		return r.Watch(label, p)
	}
	return p
}
