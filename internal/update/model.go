package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sandeepkv93/tasklite/internal/model"
	"github.com/sandeepkv93/tasklite/internal/projector"
	"github.com/sandeepkv93/tasklite/internal/storage"
	"github.com/sandeepkv93/tasklite/internal/tasks"
	"github.com/sandeepkv93/tasklite/internal/translator"
	"github.com/sandeepkv93/tasklite/internal/views"
)

type FocusField int

const (
	FocusText FocusField = iota
	FocusDate
	FocusTime
	FocusList
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Help     string
	Palette  string
	DarkMode string
	Theme    string
	Quit     string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// ShakeState drives the input-error animation. Frame indexes shakeOffsets;
// the animation is idle once Frame reaches the end.
type ShakeState struct {
	Frame int
}

func (s ShakeState) Active() bool { return s.Frame < len(shakeOffsets) }

func (s ShakeState) Offset() int {
	if !s.Active() {
		return 0
	}
	return shakeOffsets[s.Frame]
}

// Dependencies are the collaborators the UI drives. Prefs holds the dark
// mode preference; Now defaults to time.Now.
type Dependencies struct {
	Store      *tasks.Store
	Prefs      storage.KV
	Translator *translator.Translator
	Logger     *zap.Logger
	Now        func() time.Time
}

type Model struct {
	Filter      model.Filter
	Priority    model.Priority
	Projection  projector.Projection
	Stats       projector.Stats
	Cursor      int
	Focus       FocusField
	Palette     CommandPaletteState
	HelpVisible bool
	DarkMode    bool
	ThemeIndex  int
	Shake       ShakeState
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	store      *tasks.Store
	prefs      storage.KV
	tr         *translator.Translator
	logger     *zap.Logger
	listHeight int
	offset     int
	// Bubble components used for the input widgets
	textInput    textinput.Model
	dateInput    textinput.Model
	timeInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type AddTaskMsg struct {
	Text     string
	Priority model.Priority
	Date     string
	Time     string
}

type ToggleTaskMsg struct {
	ID int64
}

type DeleteTaskMsg struct {
	ID int64
}

type SetFilterMsg struct {
	Filter model.Filter
}

type ShakeMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(deps Dependencies, cfg RuntimeConfig) Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	tr := deps.Translator
	if tr == nil {
		// the embedded catalogs always load
		tr, _ = translator.New(cfg.Language, logger)
	}
	priority, err := model.ParsePriority(cfg.DefaultPriority)
	if err != nil {
		priority = model.PriorityHigh
	}
	themeIndex := views.PaletteIndex(cfg.ColorTheme)
	if themeIndex < 0 {
		themeIndex = 0
	}
	listHeight := cfg.ListHeight
	if listHeight <= 0 {
		listHeight = DefaultRuntimeConfig().ListHeight
	}

	m := Model{
		Filter:     model.FilterAll,
		Priority:   priority,
		Focus:      FocusText,
		ThemeIndex: themeIndex,
		Shake:      ShakeState{Frame: len(shakeOffsets)},
		Keys: GlobalKeyMap{
			Help:     "?",
			Palette:  "/",
			DarkMode: "m",
			Theme:    "c",
			Quit:     "q",
		},
		store:      deps.Store,
		prefs:      deps.Prefs,
		tr:         tr,
		logger:     logger,
		listHeight: listHeight,
	}
	m.DarkMode = m.loadDarkMode()
	m.initBubbleComponents(now())
	m.refresh()
	return m
}

func (m *Model) initBubbleComponents(now time.Time) {
	m.textInput = textinput.New()
	m.textInput.Prompt = "> "
	m.textInput.Placeholder = m.tr.T("InputPlaceholder")
	m.textInput.CharLimit = 280
	m.textInput.Width = 60
	m.textInput.Focus()

	m.dateInput = textinput.New()
	m.dateInput.Prompt = "date: "
	m.dateInput.Placeholder = model.DateLayout
	m.dateInput.CharLimit = len(model.DateLayout)
	m.dateInput.Width = len(model.DateLayout)
	m.dateInput.SetValue(now.Format(model.DateLayout))

	m.timeInput = textinput.New()
	m.timeInput.Prompt = "time: "
	m.timeInput.Placeholder = model.TimeLayout
	m.timeInput.CharLimit = len(model.TimeLayout)
	m.timeInput.Width = len(model.TimeLayout)
	m.timeInput.SetValue(now.Format(model.TimeLayout))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.Placeholder = "add <text> p:high due:2024-01-01 at:09:00"

	m.helpModel = help.New()
}
