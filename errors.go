package polgame

import "errors"

// Errors returned by polgame. They are wrapped with context, so compare with
// errors.Is.
var (
	// ErrUnknownAttribute is returned by Box.Change for a field the Box does
	// not have, or a value of the wrong type for that field.
	ErrUnknownAttribute = errors.New("polgame: unknown attribute")
	// ErrRadiusShape is returned when a border radius has a length other
	// than 0, 1, 2, 3 or 4.
	ErrRadiusShape = errors.New("polgame: invalid border radius shape")
	// ErrAssetLoad is returned when an image source is missing or cannot be
	// decoded.
	ErrAssetLoad = errors.New("polgame: asset load failed")
	// ErrUnsupportedEvent is returned when listening for an event type that
	// is declared but never raised.
	ErrUnsupportedEvent = errors.New("polgame: unsupported event type")
	// ErrComparison is returned when an Event is compared with a value that
	// is neither an Event nor an EventType.
	ErrComparison = errors.New("polgame: invalid event comparison")
	// ErrNotAnEntity is returned by Game.Expose for values that cannot be
	// hit-tested.
	ErrNotAnEntity = errors.New("polgame: not an entity")
	// ErrUnsupportedDrawable is returned by Game.Update when the draw list
	// holds a value the renderer does not know how to paint.
	ErrUnsupportedDrawable = errors.New("polgame: unsupported drawable")
	// ErrInvalidConfig is returned by NewGame for unusable settings.
	ErrInvalidConfig = errors.New("polgame: invalid config")
)
