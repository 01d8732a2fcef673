package track

import (
	"fmt"
	"slices"
)

// FrameBoundsTrigger fires while the frame is inside [Start, End].
type FrameBoundsTrigger struct {
	Start uint32
	End   uint32
}

type FrameReachedTrigger struct {
	Frame uint32
}

// LineHitTrigger fires when the rider touches line LineID; the event is
// then applied over Frames frames.
type LineHitTrigger struct {
	LineID uint32
	Frames uint32
}

type CameraZoomEvent struct {
	Zoom float64
}

type BackgroundColorEvent struct {
	Color RGBColor
}

type LineColorEvent struct {
	Color RGBColor
}

type Trigger interface {
	FrameBoundsTrigger | FrameReachedTrigger | LineHitTrigger
}

type Event interface {
	CameraZoomEvent | BackgroundColorEvent | LineColorEvent
}

type TriggeredEvent[T Trigger, E Event] struct {
	trigger T
	event   E
}

func (t TriggeredEvent[T, E]) Trigger() T {
	return t.trigger
}

func (t TriggeredEvent[T, E]) Event() E {
	return t.event
}

func (t TriggeredEvent[T, E]) String() string {
	return fmt.Sprintf("%+v -> %+v", t.trigger, t.event)
}

type TriggeredEventBuilder[T Trigger, E Event] struct {
	trigger *T
	event   *E
}

func (b *TriggeredEventBuilder[T, E]) Trigger(trigger T) *TriggeredEventBuilder[T, E] {
	b.trigger = &trigger
	return b
}

func (b *TriggeredEventBuilder[T, E]) Event(event E) *TriggeredEventBuilder[T, E] {
	b.event = &event
	return b
}

func (b *TriggeredEventBuilder[T, E]) build() (TriggeredEvent[T, E], error) {
	if b.trigger == nil {
		return TriggeredEvent[T, E]{}, &UninitializedFieldError{Entity: "TriggeredEvent", Field: "trigger"}
	}
	if b.event == nil {
		return TriggeredEvent[T, E]{}, &UninitializedFieldError{Entity: "TriggeredEvent", Field: "event"}
	}
	return TriggeredEvent[T, E]{trigger: *b.trigger, event: *b.event}, nil
}

// TriggerFeature has no members yet; trigger groups keep a feature set so
// they compose like every other group.
type TriggerFeature uint8

func (f TriggerFeature) String() string {
	return fmt.Sprintf("TriggerFeature(%d)", uint8(f))
}

type TriggerGroup[T Trigger, E Event] struct {
	features Features[TriggerFeature]
	triggers []TriggeredEvent[T, E]
}

func (g *TriggerGroup[T, E]) Features() Features[TriggerFeature] {
	return g.features
}

func (g *TriggerGroup[T, E]) Triggers() []TriggeredEvent[T, E] {
	return slices.Clone(g.triggers)
}

type TriggerGroupBuilder[T Trigger, E Event] struct {
	groupBase[TriggerFeature]
	name     string
	triggers []*TriggeredEventBuilder[T, E]
}

func (b *TriggerGroupBuilder[T, E]) EnableFeature(feature TriggerFeature) *TriggerGroupBuilder[T, E] {
	b.enable(feature)
	return b
}

func (b *TriggerGroupBuilder[T, E]) AddTrigger() *TriggeredEventBuilder[T, E] {
	tb := &TriggeredEventBuilder[T, E]{}
	b.triggers = append(b.triggers, tb)
	return tb
}

func (b *TriggerGroupBuilder[T, E]) Triggers() []*TriggeredEventBuilder[T, E] {
	return b.triggers
}

func (b *TriggerGroupBuilder[T, E]) Build() (*TriggerGroup[T, E], error) {
	group := &TriggerGroup[T, E]{
		features: b.features,
		triggers: make([]TriggeredEvent[T, E], 0, len(b.triggers)),
	}
	name := b.name
	if name == "" {
		name = "trigger_group"
	}
	for i, tb := range b.triggers {
		triggered, err := tb.build()
		if err != nil {
			return nil, subError(name, "triggers", i, err)
		}
		group.triggers = append(group.triggers, triggered)
	}
	return group, nil
}

type (
	BackgroundColorGroup         = TriggerGroup[FrameBoundsTrigger, BackgroundColorEvent]
	BackgroundColorGroupBuilder  = TriggerGroupBuilder[FrameBoundsTrigger, BackgroundColorEvent]
	LineColorGroup               = TriggerGroup[FrameBoundsTrigger, LineColorEvent]
	LineColorGroupBuilder        = TriggerGroupBuilder[FrameBoundsTrigger, LineColorEvent]
	CameraZoomGroup              = TriggerGroup[FrameBoundsTrigger, CameraZoomEvent]
	CameraZoomGroupBuilder       = TriggerGroupBuilder[FrameBoundsTrigger, CameraZoomEvent]
	LegacyCameraZoomGroup        = TriggerGroup[LineHitTrigger, CameraZoomEvent]
	LegacyCameraZoomGroupBuilder = TriggerGroupBuilder[LineHitTrigger, CameraZoomEvent]
)
