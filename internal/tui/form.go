package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/saltyhana/goalie/internal/cli"
	"github.com/saltyhana/goalie/internal/goal"
	"github.com/saltyhana/goalie/internal/savings"
)

const dateLayout = "2006-01-02"

// formValues are the huh field bindings. The goal.Form session stays
// the source of truth; these are pushed into it when the user submits.
type formValues struct {
	Name      string
	Amount    string
	StartDate string
	EndDate   string
	Category  string
	AccountID string
	Icon      string
	ImagePath string
	KeepImage bool
	Confirmed bool
}

// valuesFromSession seeds the bindings from the form session, so edit
// mode and restored drafts show their prior values.
func valuesFromSession(f *goal.Form) *formValues {
	return &formValues{
		Name:      f.Name(),
		Amount:    f.DisplayAmount(),
		StartDate: f.StartDate(),
		EndDate:   f.EndDate(),
		Category:  f.Category(),
		AccountID: f.AccountID(),
		Icon:      f.SelectedIcon(),
		KeepImage: true,
	}
}

// buildForm assembles the huh form for one goal session.
func (a *App) buildForm() *huh.Form {
	v := a.vals

	title := "목표 설정하기"
	confirm := "등록하기"
	if a.session.IsEdit() {
		title = "목표 수정하기"
		confirm = "수정하기"
	}

	fields := []huh.Field{
		huh.NewNote().Title(title),
		huh.NewInput().
			Title("목표 이름").
			Placeholder("이름을 입력해주세요.").
			Value(&v.Name).
			Validate(validateRequired("목표 이름")),
		huh.NewInput().
			Title("목표 금액 (원)").
			Placeholder("목표 금액을 입력해주세요.").
			Value(&v.Amount).
			Validate(validateAmount),
		huh.NewSelect[string]().
			Title("종류").
			Options(huh.NewOptions(goal.Categories()...)...).
			Value(&v.Category),
		huh.NewInput().
			Title("목표 시작 날짜").
			Placeholder(startPlaceholder(a.session.SelectedDate())).
			Value(&v.StartDate).
			Validate(validateDate(false)),
		huh.NewInput().
			Title("목표 종료 날짜").
			Placeholder("YYYY-MM-DD").
			Value(&v.EndDate).
			Validate(validateDate(true)),
	}

	if len(a.accounts) > 0 {
		opts := make([]huh.Option[string], 0, len(a.accounts))
		for _, acct := range a.accounts {
			label := cli.FormatAccount(acct.AccountAlias, acct.AccountNumber)
			opts = append(opts, huh.NewOption(label, strconv.FormatInt(acct.ID, 10)))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("입금 계좌 선택").
			Options(opts...).
			Value(&v.AccountID))
	} else {
		fields = append(fields, huh.NewNote().
			Description("불러올 수 있는 계좌가 없습니다."))
	}

	selection := []huh.Field{
		huh.NewNote().DescriptionFunc(a.projectionLine, v),
		huh.NewSelect[string]().
			Title("아이콘").
			Description("커스텀 이미지를 올리면 아이콘 선택은 해제돼요.").
			Options(iconOptions()...).
			Value(&v.Icon),
	}

	if a.offerImageRemoval() {
		selection = append(selection, huh.NewConfirm().
			Title("등록된 커스텀 이미지").
			Description("이미 커스텀 이미지가 등록되어 있어요.").
			Affirmative("유지하기").
			Negative("지우기").
			Value(&v.KeepImage))
	}

	selection = append(selection,
		huh.NewFilePicker().
			Title("커스텀 이미지").
			AllowedTypes([]string{".png", ".jpg", ".jpeg", ".gif"}).
			Value(&v.ImagePath),
		huh.NewConfirm().
			Title("이대로 진행할까요?").
			Affirmative(confirm).
			Negative("취소").
			Value(&v.Confirmed),
	)

	return huh.NewForm(
		huh.NewGroup(fields...),
		huh.NewGroup(selection...),
	)
}

// offerImageRemoval reports whether the form shows the keep-or-remove
// choice for an already attached custom image.
func (a *App) offerImageRemoval() bool {
	return a.session.Image() != ""
}

func iconOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("(선택 안 함)", "")}
	for _, name := range goal.Icons() {
		opts = append(opts, huh.NewOption(name, name))
	}
	return opts
}

func startPlaceholder(selectedDate string) string {
	if selectedDate != "" {
		return selectedDate
	}
	return "YYYY-MM-DD"
}

// projectionLine is the live daily-savings hint under the form. The
// current bindings are pushed into the session so the projection always
// comes from the same state machine that submits.
func (a *App) projectionLine() string {
	v := a.vals
	if !a.session.SetAmount(v.Amount) {
		return savings.PromptMessage
	}
	a.session.SetStartDate(strings.TrimSpace(v.StartDate))
	a.session.SetEndDate(strings.TrimSpace(v.EndDate))

	r := a.session.Projection(time.Now())
	if r.Kind != savings.Projected {
		return r.Message()
	}
	return cli.FormatNumber(int64(r.Days)) + "일 동안 하루에 " +
		cli.FormatWon(r.Daily) + "씩 모으면 돼요!"
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + "을(를) 입력해주세요.")
		}
		return nil
	}
}

func validateAmount(s string) error {
	stripped := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if stripped == "" {
		return errors.New("목표 금액을 입력해주세요.")
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return errors.New("금액은 숫자만 입력할 수 있어요.")
		}
	}
	return nil
}

func validateDate(required bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if required {
				return errors.New("날짜를 입력해주세요.")
			}
			return nil
		}
		if _, err := time.ParseInLocation(dateLayout, s, time.Local); err != nil {
			return errors.New("YYYY-MM-DD 형식으로 입력해주세요.")
		}
		return nil
	}
}

// syncSession pushes the completed bindings into the form session.
// The session enforces the icon/image exclusivity, amount stripping,
// and request validation; the bindings are just the view.
func (a *App) syncSession() {
	s := a.session
	s.SetName(strings.TrimSpace(a.vals.Name))
	s.SetAmount(a.vals.Amount)
	s.SetStartDate(strings.TrimSpace(a.vals.StartDate))
	s.SetEndDate(strings.TrimSpace(a.vals.EndDate))
	s.SetCategory(a.vals.Category)
	if a.vals.AccountID != "" {
		s.SetAccountID(a.vals.AccountID)
	}
	if !a.vals.KeepImage {
		s.ClearImage()
	}

	// Icon changes go through the toggle semantics: clear the old
	// selection first when the user picked something different.
	if cur := s.SelectedIcon(); cur != a.vals.Icon {
		if cur != "" {
			s.SelectIcon(cur) // toggle off
		}
		if a.vals.Icon != "" {
			s.SelectIcon(a.vals.Icon)
		}
	}
}
