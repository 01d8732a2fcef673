package lrb

import (
	"github.com/ddvk/lrtrack/track"
)

// ModReader decodes a mod payload. The cursor is bounded to the payload, so
// a handler for a mod without extra data sees an empty window.
type ModReader func(d *BinaryDeserializer, b *track.TrackBuilder) error

// ModWriter encodes the payload of a mod for t. It returns false when t has
// nothing for this mod and the table entry should be omitted.
type ModWriter func(s *BinarySerializer, t *track.Track) (bool, error)

type ModHandler struct {
	Name    string
	Version uint16
	Flags   ModFlags
	Read    ModReader
	Write   ModWriter
}

type modKey struct {
	name    string
	version uint16
}

// Registry maps (name, version) to the handler for that mod. Membership is
// what makes a mod supported.
type Registry struct {
	handlers map[modKey]ModHandler
	order    []modKey
}

func NewRegistry(handlers ...ModHandler) *Registry {
	r := &Registry{handlers: make(map[modKey]ModHandler)}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

// Register adds h, replacing any handler for the same name and version
func (r *Registry) Register(h ModHandler) {
	key := modKey{h.Name, h.Version}
	if _, ok := r.handlers[key]; !ok {
		r.order = append(r.order, key)
	}
	r.handlers[key] = h
}

func (r *Registry) Lookup(name string, version uint16) (ModHandler, bool) {
	h, ok := r.handlers[modKey{name, version}]
	return h, ok
}

// Handlers in registration order
func (r *Registry) Handlers() []ModHandler {
	handlers := make([]ModHandler, 0, len(r.order))
	for _, key := range r.order {
		handlers = append(handlers, r.handlers[key])
	}
	return handlers
}

func (r *Registry) Len() int {
	return len(r.order)
}

// DefaultRegistry holds the base mods
func DefaultRegistry() *Registry {
	return NewRegistry(
		gridVersionMod,
		labelMod,
		startOffsetMod,
		simLineMod,
		sceneryLineMod,
		zeroStartMod,
	)
}
