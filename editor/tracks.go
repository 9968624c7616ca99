package editor

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"gioui.org/f32"
)

type (
	// Track is one row of a TrackList. Its canonical index is its position
	// in the list's order and is not stored in the track; DisplayY is where
	// the track is drawn right now, relative to the top of the list, and
	// differs from the canonical offset only while a drag or an animation is
	// in progress.
	Track struct {
		id       string
		name     string
		list     *TrackList
		drag     *Drag
		displayY float32
		dragging bool
		preview  bool
		removed  bool
	}

	// TrackList owns the canonical order of a list of tracks and mediates
	// the one drag that may be active among them. While a track is dragged,
	// it follows the pointer and the tracks it would displace slide into
	// their would-be slots; on release the new order is committed in one
	// step and every track slides to its canonical slot.
	TrackList struct {
		// AnimationDuration is the duration of preview and settle animations.
		AnimationDuration time.Duration

		broker   *Broker
		pointer  PointerSource
		animator *Animator
		geometry TrackGeometry

		order  []string
		tracks map[string]*Track

		dragged   *Track
		from      int
		target    int
		previewed map[*Track]bool

		destroyed   bool
		unsubscribe func()
	}
)

const DefaultAnimationDuration = 180 * time.Millisecond

func NewTrackList(broker *Broker, pointer PointerSource, animator *Animator, geometry TrackGeometry) *TrackList {
	l := &TrackList{
		AnimationDuration: DefaultAnimationDuration,
		broker:            broker,
		pointer:           pointer,
		animator:          animator,
		geometry:          geometry,
		tracks:            map[string]*Track{},
		previewed:         map[*Track]bool{},
	}
	l.unsubscribe = broker.Drag.Subscribe(l.handleDrag)
	return l
}

// Track methods

func (t *Track) ID() string          { return t.id }
func (t *Track) Name() string        { return t.name }
func (t *Track) DisplayY() float32   { return t.displayY }
func (t *Track) Dragging() bool      { return t.dragging }
func (t *Track) PreviewTarget() bool { return t.preview }
func (t *Track) Removed() bool       { return t.removed }
func (t *Track) Drag() *Drag         { return t.drag }

// Index returns the canonical index of the track, or -1 if it has been
// removed.
func (t *Track) Index() int {
	if t.removed {
		return -1
	}
	return slices.Index(t.list.order, t.id)
}

// StartDrag starts dragging the track from the press ev. It is ignored if the
// track has been removed or another track of the list is being dragged.
func (t *Track) StartDrag(ev PointerEvent) bool {
	if t.removed || t.list.dragged != nil {
		return false
	}
	return t.drag.Start(ev, f32.Pt(0, t.displayY))
}

func (t *Track) setDisplayY(v float32) bool {
	if t.removed {
		return false
	}
	t.displayY = v
	return true
}

// TrackList methods

// Add appends a track to the end of the list. Adding an id that is already
// in the list fails with ErrDuplicateID.
func (l *TrackList) Add(id, name string) (*Track, error) {
	if l.destroyed {
		return nil, fmt.Errorf("adding track %q: %w", id, ErrDestroyed)
	}
	if id == "" {
		return nil, fmt.Errorf("adding track: %w", ErrEmptyID)
	}
	if _, ok := l.tracks[id]; ok {
		return nil, fmt.Errorf("adding track %q: %w", id, ErrDuplicateID)
	}
	t := &Track{
		id:       id,
		name:     name,
		list:     l,
		displayY: l.geometry.Offset(len(l.order)),
	}
	t.drag = NewDrag(DragTarget{Owner: id, Part: PartTrackHandle}, l.pointer, &l.broker.Drag)
	l.tracks[id] = t
	l.order = append(slices.Clip(l.order), id)
	l.broker.Track.Publish(TrackAdded{ID: id, Index: len(l.order) - 1})
	return t, nil
}

// Remove deletes a track. A drag in progress is canceled first; the
// remaining tracks slide up to close the gap. Removing an unknown id fails
// with ErrUnknownID and changes nothing.
func (l *TrackList) Remove(id string) error {
	t, ok := l.tracks[id]
	if !ok {
		return fmt.Errorf("removing track %q: %w", id, ErrUnknownID)
	}
	if l.dragged != nil {
		l.dragged.drag.Cancel()
	}
	i := slices.Index(l.order, id)
	l.order = slices.Delete(slices.Clone(l.order), i, i+1)
	delete(l.tracks, id)
	delete(l.previewed, t)
	t.removed = true
	l.animator.Cancel(t)
	l.settle()
	l.broker.Track.Publish(TrackRemoved{ID: id})
	return nil
}

// Track returns the track with the given id.
func (l *TrackList) Track(id string) (*Track, bool) {
	t, ok := l.tracks[id]
	return t, ok
}

// Len returns the number of tracks.
func (l *TrackList) Len() int { return len(l.order) }

// Order returns a copy of the canonical order of track ids.
func (l *TrackList) Order() []string { return slices.Clone(l.order) }

// Tracks iterates the tracks in canonical order.
func (l *TrackList) Tracks() iter.Seq2[int, *Track] {
	return func(yield func(int, *Track) bool) {
		for i, id := range l.order {
			if !yield(i, l.tracks[id]) {
				return
			}
		}
	}
}

// Dragged returns the track being dragged, if any.
func (l *TrackList) Dragged() (*Track, bool) {
	return l.dragged, l.dragged != nil
}

func (l *TrackList) Geometry() TrackGeometry { return l.geometry }

// SetGeometry changes the slot geometry, e.g. after the host has been
// resized or zoomed. Tracks that are not dragged jump to their new slots;
// during a drag the slot under the pointer is looked up again and the
// displaced tracks slide into their would-be slots.
func (l *TrackList) SetGeometry(g TrackGeometry) {
	if l.geometry == g {
		return
	}
	l.geometry = g
	for i, id := range l.order {
		t := l.tracks[id]
		if t == l.dragged {
			continue
		}
		l.animator.Cancel(t)
		t.preview = false
		t.displayY = g.Offset(i)
	}
	clear(l.previewed)
	if l.dragged == nil {
		return
	}
	i := g.IndexAt(l.dragged.drag.latest.Y, len(l.order))
	changed := i != l.target
	l.target = i
	l.preview()
	if changed {
		l.broker.Track.Publish(TrackPreviewed{ID: l.dragged.id, TargetIndex: i})
	}
}

// MoveTrack moves a track by delta slots, clamped to the ends of the list,
// and commits the new order like a drag released there would. It does
// nothing while a drag is in progress.
func (l *TrackList) MoveTrack(id string, delta int) bool {
	if l.dragged != nil {
		return false
	}
	from := slices.Index(l.order, id)
	if from < 0 {
		return false
	}
	to := min(max(from+delta, 0), len(l.order)-1)
	if to == from {
		return false
	}
	l.order = moveID(l.order, from, to)
	l.settle()
	l.broker.Track.Publish(TrackReordered{TrackID: id, NewIndex: to})
	return true
}

// SetOrder replaces the canonical order. ids must be a permutation of the
// current track ids. A drag in progress is canceled.
func (l *TrackList) SetOrder(ids []string) error {
	if len(ids) != len(l.order) {
		return fmt.Errorf("setting track order: got %d ids, have %d tracks", len(ids), len(l.order))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := l.tracks[id]; !ok {
			return fmt.Errorf("setting track order %q: %w", id, ErrUnknownID)
		}
		if seen[id] {
			return fmt.Errorf("setting track order %q: %w", id, ErrDuplicateID)
		}
		seen[id] = true
	}
	if l.dragged != nil {
		l.dragged.drag.Cancel()
	}
	l.order = slices.Clone(ids)
	l.settle()
	return nil
}

// Destroy cancels any drag and animation and removes all tracks.
func (l *TrackList) Destroy() {
	if l.destroyed {
		return
	}
	if l.dragged != nil {
		l.dragged.drag.Cancel()
	}
	l.destroyed = true
	for _, t := range l.tracks {
		t.removed = true
		l.animator.Cancel(t)
	}
	clear(l.tracks)
	clear(l.previewed)
	l.order = nil
	l.unsubscribe()
}

func (l *TrackList) handleDrag(msg DragMsg) {
	target := TargetOf(msg)
	if target.Part != PartTrackHandle {
		return
	}
	t, ok := l.tracks[target.Owner]
	if !ok || SourceOf(msg) != t.drag {
		return
	}
	switch msg := msg.(type) {
	case DragStarted:
		if l.dragged != nil {
			t.drag.Cancel()
			return
		}
		l.dragged = t
		t.dragging = true
		l.from = slices.Index(l.order, t.id)
		l.target = l.from
		// the dragged track follows the pointer and is never animated
		l.animator.Cancel(t)
	case DragMoved:
		if l.dragged != t {
			return
		}
		t.displayY = msg.EntityOrigin.Y + msg.Delta.Y
		if i := l.geometry.IndexAt(msg.Pointer.Y, len(l.order)); i != l.target {
			l.target = i
			l.preview()
			l.broker.Track.Publish(TrackPreviewed{ID: t.id, TargetIndex: i})
		}
	case DragEnded:
		if l.dragged != t {
			return
		}
		to := l.from
		if !msg.Canceled {
			to = l.geometry.IndexAt(msg.Pointer.Y, len(l.order))
		}
		l.dragged = nil
		t.dragging = false
		if to != l.from {
			l.order = moveID(l.order, l.from, to)
		}
		l.settle()
		if to != l.from {
			l.broker.Track.Publish(TrackReordered{TrackID: t.id, NewIndex: to})
		}
	}
}

// preview slides every track that the dragged track would displace if it
// were dropped at l.target into its would-be slot, and slides the tracks
// that are no longer displaced back home.
func (l *TrackList) preview() {
	canonical := make(map[string]int, len(l.order))
	for i, id := range l.order {
		canonical[id] = i
	}
	displaced := map[*Track]bool{}
	for i, id := range moveID(l.order, l.from, l.target) {
		t := l.tracks[id]
		if t == l.dragged || i == canonical[id] {
			continue
		}
		displaced[t] = true
		t.preview = true
		l.animateTo(t, i)
	}
	for t := range l.previewed {
		if !displaced[t] {
			t.preview = false
			l.animateTo(t, canonical[t.id])
		}
	}
	l.previewed = displaced
}

// settle slides every track, wherever it currently is, to its canonical
// slot.
func (l *TrackList) settle() {
	for i, id := range l.order {
		t := l.tracks[id]
		if t == l.dragged {
			continue
		}
		t.preview = false
		l.animateTo(t, i)
	}
	clear(l.previewed)
}

func (l *TrackList) animateTo(t *Track, index int) {
	y := l.geometry.Offset(index)
	if to, ok := l.animator.Target(t); ok && to == y {
		return
	}
	from, ok := l.animator.Value(t)
	if !ok {
		if t.displayY == y {
			return
		}
		from = t.displayY
	}
	l.animator.Animate(t, from, y, l.AnimationDuration, t.setDisplayY)
}

// moveID returns a new slice with the element at from moved to index to.
func moveID(order []string, from, to int) []string {
	ret := make([]string, 0, len(order))
	ret = append(ret, order[:from]...)
	ret = append(ret, order[from+1:]...)
	return slices.Insert(ret, to, order[from])
}
