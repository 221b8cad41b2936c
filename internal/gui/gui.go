// Package gui lays out the desktop board and applies its input. The window
// itself is owned by cmd/taskboard-ui.
package gui

import (
	"context"
	"fmt"
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"taskboard/internal/board"
	"taskboard/internal/session"
	"taskboard/internal/view"
)

// Pages
const (
	pageBoard = iota
	pageCounter
)

var (
	grey  = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	green = color.NRGBA{R: 0x00, G: 0xC0, B: 0x00, A: 0xFF}
	red   = color.NRGBA{R: 0xC0, G: 0x30, B: 0x30, A: 0xFF}
)

// NewTheme returns the dark theme used by the window.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Bg = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
	th.Palette.Fg = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	th.Palette.ContrastBg = color.NRGBA{R: 0x30, G: 0x60, B: 0xA0, A: 0xFF}
	th.Palette.ContrastFg = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	return th
}

type taskWidgets struct {
	check  widget.Bool
	delete widget.Clickable
}

// UI holds the widget state of the window. All methods run on the window's
// event goroutine.
type UI struct {
	ctx   context.Context
	sess  *session.Session
	theme *material.Theme

	currentPage int

	// Nav buttons
	navBoard   widget.Clickable
	navCounter widget.Clickable

	// Board
	editor     widget.Editor
	addBtn     widget.Clickable
	filterBtns map[board.Filter]*widget.Clickable
	taskList   widget.List
	rows       map[string]*taskWidgets

	// Counter
	incBtn   widget.Clickable
	decBtn   widget.Clickable
	resetBtn widget.Clickable
}

// New builds the window state over sess. Slot writes keep ctx's values but
// not its cancellation, so clicks handled while the window closes still land.
func New(ctx context.Context, sess *session.Session, th *material.Theme) *UI {
	ui := &UI{
		ctx:        context.WithoutCancel(ctx),
		sess:       sess,
		theme:      th,
		filterBtns: make(map[board.Filter]*widget.Clickable),
		rows:       make(map[string]*taskWidgets),
	}
	for _, f := range board.Filters {
		ui.filterBtns[f] = new(widget.Clickable)
	}
	ui.taskList.Axis = layout.Vertical
	ui.editor.SingleLine = true
	ui.editor.Submit = true
	if pending := sess.Board.PendingInput(); pending != "" {
		ui.editor.SetText(pending)
	}
	return ui
}

// Frame handles the input of one frame, then lays out the window.
func (ui *UI) Frame(gtx layout.Context) layout.Dimensions {
	ui.handleEvents(gtx)
	return ui.Layout(gtx)
}

func (ui *UI) handleEvents(gtx layout.Context) {
	if ui.navBoard.Clicked(gtx) {
		ui.currentPage = pageBoard
	}
	if ui.navCounter.Clicked(gtx) {
		ui.currentPage = pageCounter
	}

	for {
		ev, ok := ui.editor.Update(gtx)
		if !ok {
			break
		}
		switch ev.(type) {
		case widget.ChangeEvent:
			ui.sess.Board.SetPendingInput(ui.editor.Text())
		case widget.SubmitEvent:
			ui.submit()
		}
	}
	if ui.addBtn.Clicked(gtx) {
		ui.submit()
	}

	for _, f := range board.Filters {
		if ui.filterBtns[f].Clicked(gtx) {
			ui.sess.Board.SetFilter(f)
		}
	}

	for _, t := range ui.sess.Board.Tasks() {
		row, ok := ui.rows[t.ID]
		if !ok {
			continue
		}
		row.check.Value = t.Completed
		if row.check.Update(gtx) {
			ui.sess.Board.ToggleTask(ui.ctx, t.ID)
		}
		if row.delete.Clicked(gtx) {
			ui.sess.Board.DeleteTask(ui.ctx, t.ID)
		}
	}

	if ui.incBtn.Clicked(gtx) {
		ui.sess.Increment(ui.ctx)
	}
	if ui.decBtn.Clicked(gtx) {
		ui.sess.Decrement(ui.ctx)
	}
	if ui.resetBtn.Clicked(gtx) {
		ui.sess.Reset(ui.ctx)
	}
}

// submit adds the editor text as a task and clears the editor on success.
func (ui *UI) submit() {
	ui.sess.Board.SetPendingInput(ui.editor.Text())
	if _, ok := ui.sess.Board.Submit(ui.ctx); ok {
		ui.editor.SetText("")
	}
}

// syncRows keeps one widget row per task id and drops rows of deleted tasks.
func (ui *UI) syncRows(tasks []board.Task) {
	live := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		live[t.ID] = true
		if _, ok := ui.rows[t.ID]; !ok {
			ui.rows[t.ID] = &taskWidgets{}
		}
	}
	for id := range ui.rows {
		if !live[id] {
			delete(ui.rows, id)
		}
	}
}

// Layout draws the current page.
func (ui *UI) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(ui.layoutNav),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				if ui.currentPage == pageCounter {
					return ui.layoutCounter(gtx)
				}
				return ui.layoutBoard(gtx)
			})
		}),
	)
}

func (ui *UI) layoutNav(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Top: unit.Dp(8), Left: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{}.Layout(gtx,
			layout.Rigid(ui.tabBtn(&ui.navBoard, "Tasks", ui.currentPage == pageBoard)),
			layout.Rigid(ui.tabBtn(&ui.navCounter, "Counter", ui.currentPage == pageCounter)),
		)
	})
}

func (ui *UI) tabBtn(btn *widget.Clickable, label string, active bool) layout.Widget {
	th := ui.theme
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			b := material.Button(th, btn, label)
			if active {
				b.Background = th.Palette.ContrastBg
			} else {
				b.Background = color.NRGBA{A: 0}
			}
			b.Color = th.Palette.Fg
			return b.Layout(gtx)
		})
	}
}

func (ui *UI) layoutBoard(gtx layout.Context) layout.Dimensions {
	th := ui.theme
	tasks := ui.sess.Board.Tasks()
	ui.syncRows(tasks)
	v := view.Project(tasks, ui.sess.Board.Filter())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(th, "TaskBoard").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return material.Editor(th, &ui.editor, "What needs to be done?").Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.Button(th, &ui.addBtn, "Add").Layout(gtx)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			children := make([]layout.FlexChild, 0, len(board.Filters))
			for _, f := range board.Filters {
				children = append(children, layout.Rigid(ui.tabBtn(ui.filterBtns[f], filterLabel(f), f == v.Filter)))
			}
			return layout.Flex{}.Layout(gtx, children...)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !v.ShowProgress {
				return layout.Dimensions{}
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return material.ProgressBar(th, float32(v.ProgressPercent)/100).Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					label := material.Caption(th, progressCaption(v))
					label.Color = grey
					return label.Layout(gtx)
				}),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if len(v.Items) == 0 {
				label := material.Body1(th, v.EmptyMessage)
				label.Color = grey
				return label.Layout(gtx)
			}
			return material.List(th, &ui.taskList).Layout(gtx, len(v.Items), func(gtx layout.Context, i int) layout.Dimensions {
				return ui.layoutTask(gtx, v.Items[i])
			})
		}),
	)
}

func (ui *UI) layoutTask(gtx layout.Context, item view.Item) layout.Dimensions {
	th := ui.theme
	row := ui.rows[item.ID]
	row.check.Value = item.Completed

	return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				cb := material.CheckBox(th, &row.check, item.Text)
				if item.Completed {
					cb.Color = grey
					cb.IconColor = green
				}
				return cb.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Caption(th, item.CreatedAt)
				label.Color = grey
				label.Font.Style = font.Italic
				return label.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				btn := material.Button(th, &row.delete, "Delete")
				btn.Background = red
				return btn.Layout(gtx)
			}),
		)
	})
}

func (ui *UI) layoutCounter(gtx layout.Context) layout.Dimensions {
	th := ui.theme
	c := ui.sess.Counter

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return material.H5(th, "Counter").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.H3(th, fmt.Sprintf("%d", c.Value()))
			label.Font.Weight = font.Bold
			return label.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(material.Button(th, &ui.decBtn, "-").Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(material.Button(th, &ui.resetBtn, "Reset").Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(material.Button(th, &ui.incBtn, "+").Layout),
			)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
	}
	for _, msg := range c.Messages() {
		children = append(children, layout.Rigid(material.Body1(th, msg).Layout))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func filterLabel(f board.Filter) string {
	switch f {
	case board.FilterActive:
		return "Active"
	case board.FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

func progressCaption(v view.Board) string {
	return fmt.Sprintf("%d of %d done (%d%%)", v.CompletedCount, v.Total, v.ProgressPercent)
}
