// Package tui renders the goal form as an interactive terminal app.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/saltyhana/goalie/internal/api"
	"github.com/saltyhana/goalie/internal/goal"
	"github.com/saltyhana/goalie/internal/log"
	"github.com/saltyhana/goalie/internal/store"
	"github.com/saltyhana/goalie/internal/tui/theme"
)

const directoryTimeout = 15 * time.Second

// DirectoryMsg is sent when the account and product fetches complete.
type DirectoryMsg struct {
	Accounts []api.Account
	Products []api.Product
}

// ImageCroppedMsg is sent when an image crop finishes.
type ImageCroppedMsg struct {
	Gen     uint64
	DataURI string
	Err     error
}

// SubmitDoneMsg is sent when the goal submission completes.
type SubmitDoneMsg struct {
	Err error
}

// Cropper turns a file on disk into a circular PNG data URI.
type Cropper func(path string, size int) (string, error)

// Options wires the app's collaborators.
type Options struct {
	Client   *api.Client
	Drafts   *store.Drafts // nil disables draft persistence
	Logger   *log.Logger
	Session  *goal.Form
	Crop     Cropper
	CropSize int
}

// App is the root Bubble Tea model for the goal form.
type App struct {
	opts    Options
	session *goal.Form

	accounts []api.Account
	products []api.Product
	loaded   bool

	vals *formValues
	ui   *huh.Form

	spinner    spinner.Model
	submitting bool
	done       bool
	doneEdit   bool
	failText   string

	width  int
	height int
}

// NewApp creates the goal-form TUI.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		opts:    opts,
		session: opts.Session,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadDirectoryCmd())
}

// loadDirectoryCmd fetches accounts and products in parallel. Either
// fetch failing degrades to an empty list; the form still opens.
func (a App) loadDirectoryCmd() tea.Cmd {
	client := a.opts.Client
	logger := a.opts.Logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), directoryTimeout)
		defer cancel()

		var msg DirectoryMsg
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			accounts, err := client.Accounts(ctx)
			if err != nil {
				logger.Warn("fetching accounts failed", log.FieldError, err)
				return nil
			}
			msg.Accounts = accounts
			return nil
		})
		g.Go(func() error {
			products, err := client.Products(ctx)
			if err != nil {
				logger.Warn("fetching products failed", log.FieldError, err)
				return nil
			}
			msg.Products = products
			return nil
		})
		_ = g.Wait()
		return msg
	}
}

// cropImageCmd crops the picked file off the update loop. The
// generation lets the session drop results from superseded uploads.
func (a App) cropImageCmd(gen uint64, path string) tea.Cmd {
	crop := a.opts.Crop
	size := a.opts.CropSize
	return func() tea.Msg {
		dataURI, err := crop(path, size)
		return ImageCroppedMsg{Gen: gen, DataURI: dataURI, Err: err}
	}
}

func (a App) submitCmd() tea.Cmd {
	session := a.session
	client := a.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), directoryTimeout)
		defer cancel()
		return SubmitDoneMsg{Err: session.Submit(ctx, client)}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.saveDraft()
			return a, tea.Quit
		case "enter":
			if a.done {
				return a, tea.Quit
			}
		}

	case DirectoryMsg:
		a.accounts = msg.Accounts
		a.products = msg.Products
		a.loaded = true
		a.vals = valuesFromSession(a.session)
		a.ui = a.buildForm()
		return a, a.ui.Init()

	case ImageCroppedMsg:
		if msg.Err != nil {
			a.opts.Logger.Warn("image crop failed", log.FieldError, msg.Err)
			a.submitting = false
			a.failText = "이미지 처리에 실패했습니다."
			a.reopenForm()
			return a, a.ui.Init()
		}
		a.session.CompleteUpload(msg.Gen, msg.DataURI)
		return a, a.submitCmd()

	case SubmitDoneMsg:
		a.submitting = false
		if msg.Err != nil {
			return a.handleSubmitError(msg.Err)
		}
		a.done = true
		a.doneEdit = a.session.IsEdit()
		a.deleteDraft()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.submitting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.loaded && a.ui != nil && !a.submitting && !a.done {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.ui.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.ui = f
	}

	if a.ui.State == huh.StateAborted {
		a.saveDraft()
		return a, tea.Quit
	}

	if a.ui.State == huh.StateCompleted {
		if !a.vals.Confirmed {
			a.saveDraft()
			return a, tea.Quit
		}

		a.syncSession()
		a.failText = ""
		a.submitting = true

		// A newly picked image is cropped first; the submit follows
		// from the crop completion.
		if path := strings.TrimSpace(a.vals.ImagePath); path != "" {
			gen := a.session.StartUpload()
			return a, tea.Batch(a.spinner.Tick, a.cropImageCmd(gen, path))
		}
		return a, tea.Batch(a.spinner.Tick, a.submitCmd())
	}

	return a, cmd
}

func (a App) handleSubmitError(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, goal.ErrMissingFields):
		a.failText = goal.ErrMissingFields.Error()
	case a.session.IsEdit():
		a.failText = "목표 수정에 실패했습니다."
	default:
		a.failText = "목표 등록에 실패했습니다."
	}
	a.opts.Logger.Warn("goal submission failed", log.FieldError, err)
	a.reopenForm()
	return a, a.ui.Init()
}

// reopenForm rebuilds the huh form with the current bindings so the
// user lands back on an interactive form after a failure.
func (a *App) reopenForm() {
	a.vals.Confirmed = false
	a.vals.ImagePath = ""
	a.ui = a.buildForm()
}

func (a App) saveDraft() {
	if a.opts.Drafts == nil || a.vals == nil {
		return
	}
	a.syncSession()
	s := a.session
	draft := store.Draft{
		GoalID:       s.GoalID(),
		Name:         s.Name(),
		Amount:       s.Amount(),
		StartDate:    s.StartDate(),
		EndDate:      s.EndDate(),
		Category:     s.Category(),
		AccountID:    s.AccountID(),
		Icon:         s.SelectedIcon(),
		Image:        s.Image(),
		SelectedDate: s.SelectedDate(),
	}
	if draft.Name == "" && draft.Amount == "" && draft.EndDate == "" {
		return
	}
	if err := a.opts.Drafts.Save(draft); err != nil {
		a.opts.Logger.Warn("saving draft failed", log.FieldError, err)
	}
}

func (a App) deleteDraft() {
	if a.opts.Drafts == nil {
		return
	}
	if err := a.opts.Drafts.Delete(a.session.GoalID()); err != nil {
		a.opts.Logger.Warn("deleting draft failed", log.FieldError, err)
	}
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return "\n  " + a.spinner.View() + "  계좌 정보를 불러오는 중...\n"
	}

	if a.submitting {
		return "\n  " + a.spinner.View() + "  목표를 전송하는 중...\n"
	}

	if a.done {
		ok := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
		hint := lipgloss.NewStyle().Foreground(t.TextMuted)
		var b strings.Builder
		b.WriteString("\n")
		if a.doneEdit {
			b.WriteString(ok.Render("  목표가 수정되었어요!"))
		} else {
			b.WriteString(ok.Render("  목표가 등록되었어요!"))
		}
		b.WriteString("\n\n")
		b.WriteString(hint.Render("  캘린더에서 확인할 수 있어요. Enter를 눌러 종료합니다."))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if a.failText != "" {
		alert := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		b.WriteString("\n  ")
		b.WriteString(alert.Render(a.failText))
		b.WriteString("\n")
	}
	b.WriteString(a.ui.View())
	if line := a.productsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// productsLine shows a few recommended products under the form, the
// terminal stand-in for the web app's recommendation carousel.
func (a App) productsLine() string {
	if len(a.products) == 0 {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(theme.Active.TextMuted)

	names := make([]string, 0, 3)
	for i, p := range a.products {
		if i == 3 {
			break
		}
		names = append(names, p.Name)
	}
	return muted.Render("  추천 상품: " + strings.Join(names, " · "))
}
