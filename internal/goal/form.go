package goal

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/saltyhana/goalie/internal/cli"
	"github.com/saltyhana/goalie/internal/savings"
)

var (
	// ErrMissingFields indicates a submit attempt with required fields empty.
	ErrMissingFields = errors.New("필수 정보(목표 이름, 금액, 날짜, 종류, 계좌)를 모두 입력해주세요.")
	// ErrSubmitInFlight indicates a submit while a prior one is outstanding.
	ErrSubmitInFlight = errors.New("goal: submit already in flight")
)

// selection is the icon-or-image choice. Modeling it as a variant
// makes "both set" unrepresentable.
type selectionKind int

const (
	selectNone selectionKind = iota
	selectIcon
	selectImage
)

type selection struct {
	kind  selectionKind
	icon  string // icon name when kind == selectIcon
	image string // png data uri when kind == selectImage
}

// Submitter sends an assembled request to the backend.
type Submitter interface {
	CreateGoal(ctx context.Context, req Request) error
	UpdateGoal(ctx context.Context, id int64, req Request) error
}

// Form holds one goal-form session. All mutations go through the
// mutex; the TUI drives it from its update loop, but background
// commands (image crops, submits) complete on other goroutines.
type Form struct {
	mu sync.Mutex

	name      string
	amount    string // digits only; display formatting is derived
	startDate string
	endDate   string
	category  string
	accountID string
	sel       selection

	selectedDate string // calendar-provided fallback start date
	edit         bool
	goalID       int64

	uploadGen  uint64 // latest upload generation; stale crops are dropped
	submitting bool
}

// Option configures a new Form.
type Option func(*Form)

// WithSelectedDate supplies the calendar's currently selected date as
// the fallback start date.
func WithSelectedDate(date string) Option {
	return func(f *Form) { f.selectedDate = date }
}

// ForEdit seeds the form from a previously stored goal record.
func ForEdit(id int64, prior Goal) Option {
	return func(f *Form) {
		f.edit = true
		f.goalID = id
		f.name = prior.GoalName
		if prior.GoalMoney > 0 {
			f.amount = strconv.FormatInt(prior.GoalMoney, 10)
		}
		f.startDate = prior.StartDate
		f.endDate = prior.EndDate
		f.category = CategoryName(prior.GoalType)
		if prior.ConnectedAccount > 0 {
			f.accountID = strconv.FormatInt(prior.ConnectedAccount, 10)
		}
		// A stored record carries goalImg or iconId, never both; the
		// image wins so the icon stays unselected alongside it.
		switch {
		case prior.GoalImg != nil && *prior.GoalImg != "":
			f.sel = selection{kind: selectImage, image: *prior.GoalImg}
		case prior.IconID != nil:
			if name := IconName(*prior.IconID); name != "" {
				f.sel = selection{kind: selectIcon, icon: name}
			}
		}
	}
}

// NewForm creates a goal-form session.
func NewForm(opts ...Option) *Form {
	f := &Form{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsEdit reports whether this session updates an existing goal.
func (f *Form) IsEdit() bool { return f.edit }

// GoalID returns the goal being edited, or 0 for a new goal.
func (f *Form) GoalID() int64 { return f.goalID }

// SetName sets the goal label.
func (f *Form) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
}

// SetStartDate sets the start date (YYYY-MM-DD, may be empty).
func (f *Form) SetStartDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startDate = date
}

// SetEndDate sets the end date (YYYY-MM-DD, may be empty).
func (f *Form) SetEndDate(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endDate = date
}

// SetCategory sets the savings category label.
func (f *Form) SetCategory(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.category = category
}

// SetAccountID sets the linked account id (string form).
func (f *Form) SetAccountID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountID = id
}

// SetAmount takes raw user input, strips thousands separators, and
// stores the digit string. Input that is not a non-negative number is
// rejected and the amount is left unchanged. Empty input clears it.
func (f *Form) SetAmount(raw string) bool {
	stripped := strings.ReplaceAll(raw, ",", "")
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.amount = stripped
	return true
}

// DisplayAmount is the locale-formatted view of the amount. It is
// recomputed from the stored digits every time, never cached.
func (f *Form) DisplayAmount() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.amount == "" {
		return ""
	}
	n, err := strconv.ParseInt(f.amount, 10, 64)
	if err != nil {
		return ""
	}
	return cli.FormatNumber(n)
}

// SelectIcon toggles the named icon. While a custom image is attached
// the icon grid is disabled and this is a no-op. Selecting the current
// icon deselects it; selecting another replaces it. Names outside the
// catalog are ignored.
func (f *Form) SelectIcon(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sel.kind == selectImage {
		return
	}
	if f.sel.kind == selectIcon && f.sel.icon == name {
		f.sel = selection{}
		return
	}
	if _, ok := IconCode(name); !ok {
		return
	}
	f.sel = selection{kind: selectIcon, icon: name}
}

// SelectedIcon returns the selected icon name, or "".
func (f *Form) SelectedIcon() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sel.kind != selectIcon {
		return ""
	}
	return f.sel.icon
}

// StartUpload marks the beginning of an image upload and returns its
// generation. Only the matching CompleteUpload call may attach a
// result, so a slow crop can never clobber a newer one.
func (f *Form) StartUpload() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadGen++
	return f.uploadGen
}

// CompleteUpload attaches the cropped image for the given generation.
// As a side effect any selected icon is cleared. Stale generations are
// dropped; the return value reports whether the image was applied.
func (f *Form) CompleteUpload(gen uint64, dataURI string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.uploadGen {
		return false
	}
	f.sel = selection{kind: selectImage, image: dataURI}
	return true
}

// ClearImage removes the attached image. A previously selected icon is
// not restored.
func (f *Form) ClearImage() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sel.kind == selectImage {
		f.sel = selection{}
	}
}

// Image returns the attached image data URI, or "".
func (f *Form) Image() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sel.kind != selectImage {
		return ""
	}
	return f.sel.image
}

// Name returns the goal label.
func (f *Form) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

// Amount returns the digit-only amount string.
func (f *Form) Amount() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.amount
}

// StartDate returns the start date.
func (f *Form) StartDate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.startDate
}

// EndDate returns the end date.
func (f *Form) EndDate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.endDate
}

// Category returns the category label.
func (f *Form) Category() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// AccountID returns the linked account id.
func (f *Form) AccountID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.accountID
}

// SelectedDate returns the calendar fallback date.
func (f *Form) SelectedDate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedDate
}

// Projection computes the daily-savings projection from the current
// fields. Pure view; nothing is cached.
func (f *Form) Projection(now time.Time) savings.Result {
	f.mu.Lock()
	amount, start, end, fallback := f.amount, f.startDate, f.endDate, f.selectedDate
	f.mu.Unlock()
	return savings.Project(amount, start, end, fallback, now)
}

// BuildRequest validates the required fields and assembles the
// backend request. On a validation failure it returns ErrMissingFields
// and nothing is sent.
func (f *Form) BuildRequest() (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buildRequestLocked()
}

func (f *Form) buildRequestLocked() (Request, error) {
	start := f.startDate
	if start == "" {
		start = f.selectedDate
	}

	required := []string{f.name, f.amount, start, f.endDate, f.category, f.accountID}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return Request{}, ErrMissingFields
		}
	}

	money, err := strconv.ParseInt(f.amount, 10, 64)
	if err != nil {
		return Request{}, ErrMissingFields
	}
	account, err := strconv.ParseInt(strings.TrimSpace(f.accountID), 10, 64)
	if err != nil {
		return Request{}, ErrMissingFields
	}
	goalType, ok := CategoryCode(f.category)
	if !ok {
		return Request{}, ErrMissingFields
	}

	req := Request{
		GoalName:         f.name,
		GoalMoney:        money,
		StartDate:        start,
		EndDate:          f.endDate,
		GoalType:         goalType,
		ConnectedAccount: account,
	}

	switch f.sel.kind {
	case selectImage:
		img := f.sel.image
		req.GoalImg = &img
	case selectIcon:
		if code, ok := IconCode(f.sel.icon); ok {
			req.IconID = &code
		}
	}

	return req, nil
}

// Submit assembles the request and dispatches it as a create or an
// update, according to how the session was initialized. A second
// submit while one is outstanding returns ErrSubmitInFlight instead of
// issuing a duplicate request.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	req, err := f.buildRequestLocked()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.submitting = true
	edit, id := f.edit, f.goalID
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if edit {
		return s.UpdateGoal(ctx, id, req)
	}
	return s.CreateGoal(ctx, req)
}
