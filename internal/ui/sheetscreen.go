package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/dragsheet/internal/gesture"
	"github.com/depeter/dragsheet/internal/physics"
	"github.com/depeter/dragsheet/internal/scroll"
	"github.com/depeter/dragsheet/internal/sheet"
)

// SheetOptions are the host-side settings of the sheet screen.
type SheetOptions struct {
	Rows            int
	ExpandToContent bool
	Curve           physics.Curve
	Duration        time.Duration
	Help            []HelpEntry
}

// SheetScreen shows a bottom sheet over a backdrop. The sheet holds a
// scrollable list of rows; dragging the sheet resizes it until it reaches
// its bounds and then scrolls the list.
type SheetScreen struct {
	sheet   *sheet.Sheet
	ctrl    *sheet.Controller
	list    *scroll.List
	focus   *scroll.Focus
	pointer *Pointer
	Status  Status

	opts          SheetOptions
	width, height float64

	lastEvent      sheet.SizeEvent
	events         int
	closed         bool
	removeObserver func()
}

func NewSheetScreen(s *sheet.Sheet, ctrl *sheet.Controller, list *scroll.List, opts SheetOptions) *SheetScreen {
	ss := &SheetScreen{
		sheet: s,
		ctrl:  ctrl,
		list:  list,
		focus: scroll.NewFocus(list),
		opts:  opts,
	}
	if ss.opts.Curve == nil {
		ss.opts.Curve = physics.FastOutSlowIn
	}
	if ss.opts.Duration <= 0 {
		ss.opts.Duration = 300 * time.Millisecond
	}
	rec := gesture.NewRecognizer(s.Coordinator(), ss.hitSheet)
	ss.pointer = NewPointer(rec)
	list.SetRows(opts.Rows, RowHeight)
	return ss
}

func (ss *SheetScreen) Name() string { return "Sheet" }

func (ss *SheetScreen) OnEnter() {
	if ss.removeObserver == nil {
		ss.removeObserver = ss.sheet.OnSizeChanged(ss.onSizeChanged)
	}
}

func (ss *SheetScreen) OnExit() {
	ss.pointer.Cancel()
}

// Close stops the sheet and unregisters the screen's observer.
func (ss *SheetScreen) Close() {
	if ss.removeObserver != nil {
		ss.removeObserver()
		ss.removeObserver = nil
	}
	ss.sheet.Close()
}

func (ss *SheetScreen) onSizeChanged(ev sheet.SizeEvent) {
	ss.lastEvent = ev
	ss.events++
}

// SetSize records the window size from the host's layout pass.
func (ss *SheetScreen) SetSize(w, h int) {
	ss.width, ss.height = float64(w), float64(h)
}

// SetRows replaces the list content, as after a config reload.
func (ss *SheetScreen) SetRows(n int) {
	ss.opts.Rows = n
	ss.list.SetRows(n, RowHeight)
	ss.focus.Clamp()
}

func (ss *SheetScreen) SetExpandToContent(on bool)   { ss.opts.ExpandToContent = on }
func (ss *SheetScreen) SetHelp(entries []HelpEntry) { ss.opts.Help = entries }

func (ss *SheetScreen) SetAnimation(curve physics.Curve, d time.Duration) {
	ss.opts.Curve, ss.opts.Duration = curve, d
}

func (ss *SheetScreen) Update() (*ScreenTransition, error) {
	ss.layout()
	if ss.Status.Update() {
		return nil, nil
	}

	if ss.closed {
		_, _, clicked := MouseJustClicked()
		if clicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			ss.Reset()
		}
		return nil, nil
	}

	ss.pointer.Update(time.Second / time.Duration(ebiten.TPS()))
	if ss.pointer.Dragging() {
		ss.focus.Clear()
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		ss.handleClick(mx, my)
	}
	if _, wy := MouseWheelDelta(); wy != 0 {
		cx, cy := ebiten.CursorPosition()
		if ss.hitSheet(float64(cx), float64(cy)) {
			ss.list.Wheel(wy)
		}
	}

	move, back := InputState()
	if back {
		ss.focus.Clear()
	}
	ss.focus.Move(move)
	ss.handleDigits()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && len(ss.opts.Help) > 0 {
		return &ScreenTransition{Type: TransitionPush, Screen: NewHelpScreen(ss.opts.Help)}, nil
	}

	ss.checkClose()
	return nil, nil
}

// layout runs the sheet's layout pass against the window and measures the
// content.
func (ss *SheetScreen) layout() {
	ss.sheet.Layout(ss.height)
	content := HandleAreaHeight + ss.list.ContentHeight()
	ss.sheet.OnContentMeasured(content, ss.opts.ExpandToContent)
	ss.list.SetViewport(ss.viewport())
}

func (ss *SheetScreen) sheetTop() float64 {
	return ss.height - ss.sheet.Extent().CurrentPixels()
}

func (ss *SheetScreen) viewport() float64 {
	px := ss.sheet.Extent().CurrentPixels()
	if math.IsInf(px, 1) {
		return 0
	}
	return max(px-HandleAreaHeight, 0)
}

func (ss *SheetScreen) hitSheet(_, y float64) bool {
	return !ss.closed && y >= ss.sheetTop()
}

func (ss *SheetScreen) handleClick(mx, my int) {
	top := ss.sheetTop()
	y := float64(my)
	if y < top {
		ss.Collapse()
		return
	}
	listTop := top + HandleAreaHeight
	if y < listTop || mx < 0 || float64(mx) > ss.width {
		return
	}
	row := int((y - listTop + ss.list.Offset()) / RowHeight)
	if row >= 0 && row < ss.list.Rows() {
		ss.focus.Focused = row
	}
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	ebiten.KeyDigit0,
}

// handleDigits jumps to tenths of the window: 1 is 10%, 0 is 100%.
func (ss *SheetScreen) handleDigits() {
	if IsModifierPressed() {
		return
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			ss.JumpTo(float64(i+1) / 10)
			return
		}
	}
}

// checkClose closes the sheet once a user drag leaves it resting at its
// minimum and the config asks for it.
func (ss *SheetScreen) checkClose() {
	e := ss.sheet.Extent()
	if !e.Config().ShouldCloseOnMinExtent || !e.HasDragged() || !e.IsAtMin() {
		return
	}
	if ss.pointer.Dragging() || ss.sheet.Coordinator().Settling() {
		return
	}
	ss.closed = true
	ss.focus.Clear()
}

func (ss *SheetScreen) Expand() {
	ss.animateTo(ss.sheet.Extent().MaxSize())
}

func (ss *SheetScreen) Collapse() {
	ss.animateTo(ss.sheet.Extent().MinSize())
}

func (ss *SheetScreen) animateTo(size float64) {
	if ss.closed {
		return
	}
	if _, err := ss.ctrl.AnimateTo(size, ss.opts.Duration, ss.opts.Curve); err != nil {
		ss.report("Animate", err)
	}
}

func (ss *SheetScreen) JumpTo(size float64) {
	if ss.closed {
		return
	}
	if err := ss.ctrl.JumpTo(size); err != nil {
		ss.report("Jump", err)
	}
}

// Reset returns the sheet to its initial size and the list to its top,
// reopening a closed sheet.
func (ss *SheetScreen) Reset() {
	ss.closed = false
	ss.focus.Clear()
	if err := ss.ctrl.Reset(); err != nil {
		ss.report("Reset", err)
	}
}

// ToggleSnap flips snapping by reconfiguring the sheet.
func (ss *SheetScreen) ToggleSnap() {
	cfg := ss.sheet.Config()
	cfg.Snap = !cfg.Snap
	if err := ss.sheet.Configure(cfg); err != nil {
		ss.report("Toggle snap", err)
		return
	}
	if cfg.Snap {
		ss.Status.Show("Snapping on")
	} else {
		ss.Status.Show("Snapping off")
	}
}

func (ss *SheetScreen) report(action string, err error) {
	log.Printf("%s failed: %v", action, err)
	ss.Status.ShowError(fmt.Errorf("%s: %w", action, err))
}

func (ss *SheetScreen) Draw(dst *ebiten.Image) {
	ss.drawBackground(dst)
	if ss.closed {
		DrawTextCentered(dst, "Sheet closed. Click or press Space to reopen.",
			ss.width/2, ss.height-60, FontSizeBody, ColorTextSecondary)
		ss.Status.Draw(dst, ss.width)
		return
	}

	e := ss.sheet.Extent()
	if span := e.MaxSize() - e.MinSize(); span > 0 {
		t := (e.CurrentSize() - e.MinSize()) / span
		dim := ColorBackdrop
		dim.A = uint8(float64(dim.A) * min(max(t, 0), 1))
		vector.DrawFilledRect(dst, 0, 0, float32(ss.width), float32(ss.height), dim, false)
	}

	top := ss.sheetTop()
	ss.drawSheet(dst, top)
	ss.drawRows(dst, top+HandleAreaHeight)
	ss.drawSnapMarks(dst)
	ss.Status.Draw(dst, ss.width)
}

func (ss *SheetScreen) drawBackground(dst *ebiten.Image) {
	x := float64(SheetSidePadding)
	y := 48.0
	DrawText(dst, "DragSheet", x, y, FontSizeTitle, ColorText)
	y += FontSizeTitle + 16
	hint := "Drag the sheet, scroll its rows, or use the keyboard. F1 for keys."
	DrawTextWrapped(dst, hint, x, y, ss.width-2*x, FontSizeBody, ColorTextSecondary)
}

func (ss *SheetScreen) drawSheet(dst *ebiten.Image, top float64) {
	w := float32(ss.width)
	r := float32(SheetCornerRadius)
	t := float32(top)
	h := float32(ss.height - top)
	if h <= 0 {
		return
	}
	r = min(r, h)

	vector.DrawFilledRect(dst, 0, t+r, w, h-r, ColorSurface, false)
	vector.DrawFilledRect(dst, r, t, w-2*r, r, ColorSurface, false)
	vector.DrawFilledCircle(dst, r, t+r, r, ColorSurface, true)
	vector.DrawFilledCircle(dst, w-r, t+r, r, ColorSurface, true)

	hx := (w - HandleWidth) / 2
	hy := t + (HandleAreaHeight-HandleHeight)/2.0
	clr := ColorHandle
	if ss.pointer.Dragging() {
		clr = ColorPrimary
	}
	vector.DrawFilledRect(dst, hx, hy, HandleWidth, HandleHeight, clr, false)
}

func (ss *SheetScreen) drawRows(dst *ebiten.Image, listTop float64) {
	if listTop >= ss.height {
		return
	}
	clip := image.Rect(0, int(listTop), int(ss.width), int(ss.height))
	sub, ok := dst.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	first, last := ss.list.VisibleRows()
	for i := first; i < last; i++ {
		y := listTop + float64(i)*RowHeight - ss.list.Offset()
		ss.drawRow(sub, i, y)
	}

	if over := ss.list.Overscroll(); over > 0 {
		msg := "Release to settle"
		DrawTextCentered(sub, msg, ss.width/2, ss.height-over/2, FontSizeSmall, ColorTextMuted)
	}
}

func (ss *SheetScreen) drawRow(dst *ebiten.Image, i int, y float64) {
	x := float32(SheetSidePadding / 2)
	w := float32(ss.width) - 2*x
	h := float32(RowHeight - RowGap)

	var bg color.Color = ColorSurface
	if i%2 == 1 {
		bg = ColorSurfaceHover
	}
	vector.DrawFilledRect(dst, x, float32(y), w, h, bg, false)
	if i == ss.focus.Focused {
		vector.StrokeRect(dst, x, float32(y), w, h, 2, ColorFocusBorder, false)
	}

	label := fmt.Sprintf("Item %02d", i+1)
	DrawText(dst, label, float64(x)+RowPadding, y+10, FontSizeBody, ColorText)
	caption := fmt.Sprintf("%.0f px from the top of the list", float64(i)*RowHeight)
	caption = truncateText(caption, float64(w)-2*RowPadding, FontSizeCaption)
	DrawText(dst, caption, float64(x)+RowPadding, y+32, FontSizeCaption, ColorTextSecondary)
}

// drawSnapMarks ticks the snap stops at the right edge while snapping is on.
func (ss *SheetScreen) drawSnapMarks(dst *ebiten.Image) {
	e := ss.sheet.Extent()
	if !e.Config().Snap {
		return
	}
	for _, px := range e.SnapPixels() {
		y := float32(ss.height - px)
		vector.StrokeLine(dst, float32(ss.width)-SnapMarkWidth, y, float32(ss.width), y, 2, ColorSnapMark, false)
	}
}

// DebugLines describes the sheet for the debug overlay.
func (ss *SheetScreen) DebugLines() []string {
	e := ss.sheet.Extent()
	c := ss.sheet.Coordinator()
	mode := c.Mode()
	if mode == "" {
		mode = "-"
	}
	snaps := ""
	for i, s := range e.SnapSizes() {
		if i > 0 {
			snaps += " "
		}
		snaps += fmt.Sprintf("%.3f", s)
	}
	ev := ss.lastEvent
	return []string{
		fmt.Sprintf("extent   %.3f  [%.3f, %.3f]  initial %.3f", e.CurrentSize(), e.MinSize(), e.MaxSize(), e.InitialSize()),
		fmt.Sprintf("pixels   %.1f of %.0f  content %.0f", e.CurrentPixels(), e.AvailablePixels(), e.ContentPixels()),
		fmt.Sprintf("flags    dragged=%t changed=%t closed=%t", e.HasDragged(), e.HasChanged(), ss.closed),
		fmt.Sprintf("snap     %t  stops %s", e.Config().Snap, snaps),
		fmt.Sprintf("drag     mode=%s settling=%t", mode, c.Settling()),
		fmt.Sprintf("list     offset %.1f/%.0f  %s  v=%.0f", ss.list.Offset(), ss.list.MaxOffset(), ss.list.Phase(), ss.list.Velocity()),
		fmt.Sprintf("focus    %d", ss.focus.Focused),
		fmt.Sprintf("event    #%d extent %.3f close=%t", ss.events, ev.Extent, ev.ShouldCloseOnMinExtent),
	}
}
