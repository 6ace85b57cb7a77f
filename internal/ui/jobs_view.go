package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voidplay/internal/format"
	"github.com/ytget/voidplay/internal/jobs"
	"github.com/ytget/voidplay/internal/model"
)

// JobsView is the admin job board
type JobsView struct {
	board        *jobs.Board
	totalVideos  func() int
	localization *Localization
	window       fyne.Window

	jobs       []model.Job
	statsLabel *widget.Label
	list       *widget.List
	root       fyne.CanvasObject
}

// NewJobsView creates the admin board view
func NewJobsView(board *jobs.Board, totalVideos func() int, localization *Localization, window fyne.Window) *JobsView {
	jv := &JobsView{
		board:        board,
		totalVideos:  totalVideos,
		localization: localization,
		window:       window,
	}

	jv.statsLabel = widget.NewLabel("")
	jv.statsLabel.TextStyle = fyne.TextStyle{Bold: true}

	jv.list = widget.NewList(
		func() int { return len(jv.jobs) },
		jv.createRow,
		jv.updateRow,
	)

	jv.root = container.NewBorder(jv.statsLabel, nil, nil, nil, jv.list)
	jv.Render()
	return jv
}

// Container returns the view
func (jv *JobsView) Container() fyne.CanvasObject {
	return jv.root
}

// Render reloads jobs and counters. It must run on the UI goroutine.
func (jv *JobsView) Render() {
	jv.jobs = jv.board.GetAll()

	stats := jv.board.Stats(jv.totalVideos())
	jv.statsLabel.SetText(fmt.Sprintf(jv.localization.GetText(KeyJobStats),
		format.Count(stats.Pending),
		format.Count(stats.Processing),
		format.Count(stats.Failed),
		format.Count(stats.Completed),
		format.Count(stats.TotalVideos),
	))
	jv.list.Refresh()
}

func (jv *JobsView) createRow() fyne.CanvasObject {
	status := canvas.NewText("", ColorMuted)
	status.TextStyle = fyne.TextStyle{Bold: true}
	status.TextSize = 11
	title := widget.NewLabel("")
	detail := widget.NewLabel("")
	detail.Truncation = fyne.TextTruncateEllipsis
	progress := widget.NewProgressBar()
	progress.Max = 100
	retry := widget.NewButton("", nil)
	cancel := widget.NewButton("", nil)
	cancel.Importance = widget.LowImportance

	info := container.NewVBox(container.NewHBox(status, title), detail)
	return container.NewBorder(nil, progress, nil, container.NewHBox(layout.NewSpacer(), retry, cancel), info)
}

func (jv *JobsView) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(jv.jobs) {
		return
	}
	job := jv.jobs[id]

	row := obj.(*fyne.Container)
	info := row.Objects[0].(*fyne.Container)
	progress := row.Objects[1].(*widget.ProgressBar)
	buttons := row.Objects[2].(*fyne.Container)

	head := info.Objects[0].(*fyne.Container)
	status := head.Objects[0].(*canvas.Text)
	title := head.Objects[1].(*widget.Label)
	detail := info.Objects[1].(*widget.Label)
	retry := buttons.Objects[1].(*widget.Button)
	cancel := buttons.Objects[2].(*widget.Button)

	status.Text = strings.ToUpper(job.Status.String())
	status.Color = ToneColor(format.StatusTone(job.Status.String()))
	status.Refresh()
	title.SetText(job.ID + MiddleDotSeparator + job.VideoID)

	parts := []string{fmt.Sprintf(jv.localization.GetText(KeyAttempts), job.Attempts, job.MaxAttempts)}
	if job.Error != "" {
		parts = append(parts, job.Error)
	}
	detail.SetText(strings.Join(parts, MiddleDotSeparator))
	progress.SetValue(float64(job.Progress))

	retry.SetText(jv.localization.GetText(KeyRetry))
	retry.OnTapped = func() { jv.onRetry(job.ID) }
	if job.CanRetry() {
		retry.Enable()
	} else {
		retry.Disable()
	}

	cancel.SetText(jv.localization.GetText(KeyCancel))
	cancel.OnTapped = func() { jv.onCancel(job.ID) }
	if job.Status.IsActive() {
		cancel.Disable()
	} else {
		cancel.Enable()
	}
}

func (jv *JobsView) onRetry(id string) {
	if _, err := jv.board.Retry(id); err != nil {
		log.Printf("Retry job %s: %v", id, err)
		dialog.ShowError(err, jv.window)
	}
}

func (jv *JobsView) onCancel(id string) {
	if err := jv.board.Cancel(id); err != nil {
		log.Printf("Cancel job %s: %v", id, err)
		dialog.ShowError(err, jv.window)
	}
}
