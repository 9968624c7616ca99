/*
Package editor contains the spatial direct-manipulation engine of the surface
editor: floating windows that are moved and resized by dragging, and a track
list that is reordered by dragging a track to its new place.

The Model composes the engines of one surface. Every surface has its own
Broker, on which the engines publish messages: a Drag turns raw pointer
events of a handle into DragStarted, DragMoved and DragEnded messages on the
drag bus, the WindowManager and TrackList react to those and publish
WindowMsg and TrackMsg messages about committed changes.

Animations are driven by a single Animator shared by all entities of a
surface. The host calls Animator.Tick once per display frame, and only while
the Animator has asked for frames.

The package knows nothing about the GUI toolkit. The host supplies the
global pointer stream (PointerSource), the frame clock (FrameRequester) and
the visual part of the windows (Chrome); package editor/gioui is the Gio
host.
*/
package editor
