// Package translator localizes the strings the task list shows, including
// the short date shown next to scheduled tasks.
package translator

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/sandeepkv93/tasklite/internal/model"
)

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

//go:embed locales/*.toml
var localeFiles embed.FS

type Translator struct {
	localizer *i18n.Localizer
	lang      language.Tag
	logger    *zap.Logger
}

// New loads the embedded catalogs and localizes for lang, falling back to
// English for unknown tags and missing messages.
func New(lang string, logger *zap.Logger) (*Translator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFiles, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(localeFiles, name); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", name, err)
		}
	}

	tag, err := language.Parse(lang)
	if err != nil {
		logger.Warn("unknown language, using english", zap.String("lang", lang), zap.Error(err))
		tag = language.English
	}
	matcher := language.NewMatcher(bundle.LanguageTags())
	_, idx, _ := matcher.Match(tag)
	matched := bundle.LanguageTags()[idx]

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, matched.String(), LanguageEn),
		lang:      matched,
		logger:    logger,
	}, nil
}

// Language reports the catalog actually in use.
func (t *Translator) Language() string {
	base, _ := t.lang.Base()
	return base.String()
}

func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		t.logger.Warn("translation not found", zap.String("lang", t.lang.String()), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}

// Count localizes a plural message whose template uses {{.Count}}.
func (t *Translator) Count(id string, n int) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		t.logger.Warn("translation not found", zap.String("lang", t.lang.String()), zap.String("message_id", id), zap.Error(err))
		return fmt.Sprintf("%d %s", n, id)
	}
	return msg
}

func (t *Translator) Filter(f model.Filter) string {
	switch f {
	case model.FilterActive:
		return t.T("FilterActive")
	case model.FilterCompleted:
		return t.T("FilterCompleted")
	default:
		return t.T("FilterAll")
	}
}

func (t *Translator) Priority(p model.Priority) string {
	switch p {
	case model.PriorityLow:
		return t.T("PriorityLow")
	case model.PriorityMedium:
		return t.T("PriorityMedium")
	default:
		return t.T("PriorityHigh")
	}
}

// FormatDue renders a task date as day, abbreviated month and year, with
// " • HH:MM" appended when clock is set. An empty date yields "". A date
// that does not parse is returned as stored.
func (t *Translator) FormatDue(date, clock string) string {
	if date == "" {
		return ""
	}
	out := date
	if d, err := time.Parse(model.DateLayout, date); err == nil {
		out = fmt.Sprintf("%d %s %d", d.Day(), t.T(fmt.Sprintf("Month%d", int(d.Month()))), d.Year())
	}
	if clock != "" {
		out += " • " + clock
	}
	return out
}
