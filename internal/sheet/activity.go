package sheet

// Activity is the handle of the one operation allowed to move the sheet:
// a drag, a post-release settle, or a programmatic animation. Starting a
// new activity cancels the previous handle.
type Activity struct {
	onCanceled func()
	slot       *activitySlot
	canceled   bool
	finished   bool
}

// activitySlot is shared by an extent and every copy made from it, so the
// single-activity rule survives extent replacement.
type activitySlot struct {
	current *Activity
}

// Cancel runs the cancellation callback, once. It is safe on a nil handle
// and after the operation finished on its own.
func (a *Activity) Cancel() {
	if a == nil || a.canceled {
		return
	}
	a.canceled = true
	if a.slot.current == a {
		a.slot.current = nil
	}
	if a.onCanceled != nil {
		a.onCanceled()
	}
}

// Finish marks the operation as complete. The handle stays registered so
// the callback still runs when the next activity replaces it.
func (a *Activity) Finish() {
	if a != nil {
		a.finished = true
	}
}

// Live reports whether the activity has neither finished nor been canceled.
func (a *Activity) Live() bool {
	return a != nil && !a.canceled && !a.finished
}
