package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/saltyhana/goalie/internal/config"
	"github.com/saltyhana/goalie/internal/goal"
	"github.com/saltyhana/goalie/internal/imaging"
	"github.com/saltyhana/goalie/internal/log"
	"github.com/saltyhana/goalie/internal/store"
	"github.com/saltyhana/goalie/internal/tui"
)

var flagDate string

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Create or edit a savings goal",
}

var goalNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Open the form for a new goal",
	RunE:  runGoalNew,
}

var goalEditCmd = &cobra.Command{
	Use:   "edit <goal-id>",
	Short: "Open the form for an existing goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalEdit,
}

func init() {
	goalNewCmd.Flags().StringVar(&flagDate, "date", "", "Pre-selected start date (YYYY-MM-DD), as handed over from the calendar")
	goalCmd.AddCommand(goalNewCmd)
	goalCmd.AddCommand(goalEditCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalNew(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger().WithComponent("goal-form")

	session := goal.NewForm(goal.WithSelectedDate(flagDate))

	drafts := openDrafts(cfg, logger)
	if drafts != nil {
		defer func() { _ = drafts.Close() }()
		restoreDraft(session, drafts, 0, logger)
	}

	return runForm(cfg, session, drafts, logger)
}

func runGoalEdit(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid goal id %q", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger().WithComponent("goal-form")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	prior, err := buildClient(cfg).Goal(ctx, id)
	if err != nil {
		return fmt.Errorf("fetching goal %d: %w", id, err)
	}

	session := goal.NewForm(goal.ForEdit(id, prior))

	drafts := openDrafts(cfg, logger)
	if drafts != nil {
		defer func() { _ = drafts.Close() }()
	}

	return runForm(cfg, session, drafts, logger)
}

func runForm(cfg config.Config, session *goal.Form, drafts *store.Drafts, logger *log.Logger) error {
	cropSize := cfg.Form.CropSize
	if cropSize <= 0 {
		cropSize = imaging.DefaultSize
	}

	app := tui.NewApp(tui.Options{
		Client:   buildClient(cfg),
		Drafts:   drafts,
		Logger:   logger,
		Session:  session,
		Crop:     imaging.ProcessFile,
		CropSize: cropSize,
	})

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}

// openDrafts opens the draft store unless drafts are disabled. A
// broken drafts db only costs the draft feature, never the form.
func openDrafts(cfg config.Config, logger *log.Logger) *store.Drafts {
	if flagNoDrafts || !cfg.Form.KeepDrafts {
		return nil
	}
	drafts, err := store.Open(config.DraftsPath())
	if err != nil {
		logger.Warn("draft store unavailable", log.FieldError, err)
		return nil
	}
	return drafts
}

// restoreDraft seeds the session from a saved draft, if one exists.
func restoreDraft(session *goal.Form, drafts *store.Drafts, goalID int64, logger *log.Logger) {
	draft, ok, err := drafts.Load(goalID)
	if err != nil {
		logger.Warn("loading draft failed", log.FieldError, err)
		return
	}
	if !ok {
		return
	}

	session.SetName(draft.Name)
	session.SetAmount(draft.Amount)
	session.SetStartDate(draft.StartDate)
	session.SetEndDate(draft.EndDate)
	session.SetCategory(draft.Category)
	session.SetAccountID(draft.AccountID)
	if draft.Icon != "" {
		session.SelectIcon(draft.Icon)
	}
	if draft.Image != "" {
		gen := session.StartUpload()
		session.CompleteUpload(gen, draft.Image)
	}
	logger.Info("restored draft", "saved_at", draft.SavedAt)
}
