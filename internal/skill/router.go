package skill

import (
	"context"

	"go.uber.org/zap"
)

// HandlerFunc handles one intent turn. A returned error is mapped by the
// router to the fixed spoken message for its kind; handlers never leave a
// turn without a response.
type HandlerFunc func(ctx context.Context, req *RequestEnvelope) (*ResponseEnvelope, error)

// IntentRecorder records intent dispatch outcomes for metrics.
type IntentRecorder interface {
	RecordIntent(intent, status string)
}

// Router dispatches request envelopes to intent handlers.
type Router struct {
	intents  map[string]HandlerFunc
	launch   HandlerFunc
	recorder IntentRecorder
	logger   *zap.Logger
}

// NewRouter creates a router. recorder may be nil.
func NewRouter(logger *zap.Logger, recorder IntentRecorder) *Router {
	return &Router{
		intents:  make(map[string]HandlerFunc),
		recorder: recorder,
		logger:   logger,
	}
}

// HandleLaunch registers the handler for LaunchRequest turns.
func (r *Router) HandleLaunch(h HandlerFunc) {
	r.launch = h
}

// HandleIntent registers a handler for the named intent.
func (r *Router) HandleIntent(name string, h HandlerFunc) {
	r.intents[name] = h
}

// Dispatch routes one turn and always returns a response envelope.
func (r *Router) Dispatch(ctx context.Context, req *RequestEnvelope) *ResponseEnvelope {
	switch req.Request.Type {
	case RequestTypeLaunch:
		return r.run(ctx, "launch", r.launch, req)
	case RequestTypeSessionEnded:
		// The platform ignores the body of a session-ended response.
		return End()
	case RequestTypeIntent:
		name := req.Request.Intent.Name
		handler, ok := r.intents[name]
		if !ok {
			r.logger.Warn("Unknown intent", zap.String("intent", name))
			r.record(name, "unknown")
			return Speak(msgUnknown)
		}
		return r.run(ctx, name, handler, req)
	default:
		r.logger.Warn("Unknown request type", zap.String("type", req.Request.Type))
		return Speak(msgUnknown)
	}
}

func (r *Router) run(ctx context.Context, name string, handler HandlerFunc, req *RequestEnvelope) *ResponseEnvelope {
	if handler == nil {
		r.record(name, "unhandled")
		return Speak(msgUnknown)
	}

	resp, err := handler(ctx, req)
	if err != nil {
		r.logger.Error("Intent handler failed",
			zap.String("intent", name),
			zap.String("sessionID", req.Session.SessionID),
			zap.Error(err))
		r.record(name, "error")
		return Speak(errorMessage(err))
	}

	r.record(name, "ok")
	return resp
}

func (r *Router) record(intent, status string) {
	if r.recorder != nil {
		r.recorder.RecordIntent(intent, status)
	}
}
