package logging

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/upxgui/tui/theme"
	"github.com/sirupsen/logrus"
)

// TextFormatter renders entries as
//
//	2024-01-02 15:04:05 [WARN] [config] message key=value command="\"upx\" -9"
type TextFormatter struct {
	Config FormatConfig
}

func levelStyle(level logrus.Level) lipgloss.Style {
	t := theme.DefaultTheme
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return t.Error
	case logrus.WarnLevel:
		return t.Warning
	case logrus.InfoLevel:
		return t.Info
	}
	return t.Muted
}

func levelName(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

// fieldValue quotes values that would otherwise be ambiguous on one line.
func fieldValue(v interface{}) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(levelStyle(entry.Level).Render("[" + levelName(entry.Level) + "]"))

	if component, ok := entry.Data["component"]; ok && !f.Config.DisableComponent {
		fmt.Fprintf(&b, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
	}
	if entry.HasCaller() {
		fmt.Fprintf(&b, " [%s:%d %s]",
			filepath.Base(entry.Caller.File), entry.Caller.Line, filepath.Base(entry.Caller.Function))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != "component" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%s", key, fieldValue(entry.Data[key]))
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}
