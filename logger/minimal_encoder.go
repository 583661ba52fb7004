package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette holds the ANSI colors for one theme
type palette struct {
	fg        string
	time      string
	component string
	key       string
	value     string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

var themes = map[string]palette{
	// Everforest Dark (natural forest greens)
	"everforest": {
		fg:        "\x1b[38;5;223m",
		time:      "\x1b[38;5;107m",
		component: "\x1b[38;5;208m",
		key:       "\x1b[38;5;65m",
		value:     "\x1b[38;5;108m",
		warn:      "\x1b[38;5;179m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;52m",
	},
	// Gruvbox Dark (warm, muted)
	"gruvbox": {
		fg:        "\x1b[38;5;223m",
		time:      "\x1b[38;5;108m",
		component: "\x1b[38;5;214m",
		key:       "\x1b[38;5;109m",
		value:     "\x1b[38;5;175m",
		warn:      "\x1b[38;5;214m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;88m",
	},
	// No colors (pipes, CI)
	"plain": {},
}

// Current active theme
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output.
// Unknown themes are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

func paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + colorReset
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  WARN  axis  Axis not defined  domain=character axis=mood"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := buffer.NewPool().Get()

	final.AppendString(paint(c.time, ent.Time.Format("15:04:05")))

	// Level: only show for non-INFO with bold + background
	if lvl := levelString(ent.Level, c); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(paint(c.component, ent.LoggerName))
	}

	final.AppendString("  ")
	final.AppendString(paint(c.fg, ent.Message))

	if kv := encodeFields(fields, c); kv != "" {
		final.AppendString("  ")
		final.AppendString(kv)
	}

	final.AppendString("\n")
	return final, nil
}

// levelString returns bold + colored + background for levels other than INFO
func levelString(level zapcore.Level, c palette) string {
	switch level {
	case zapcore.InfoLevel:
		return ""
	case zapcore.DebugLevel:
		return paint(c.key, "DEBUG")
	case zapcore.WarnLevel:
		return paint(bold(c.warnBg+c.warn), "WARN")
	default:
		return paint(bold(c.errBg+c.err), level.CapitalString())
	}
}

func bold(color string) string {
	if color == "" {
		return ""
	}
	return colorBold + color
}

// encodeFields renders every field as key=value in call order.
// Fields are never dropped: anything zap can encode is shown.
func encodeFields(fields []zapcore.Field, c palette) string {
	if len(fields) == 0 {
		return ""
	}

	m := zapcore.NewMapObjectEncoder()
	var keys []string
	for _, f := range fields {
		if f.Type == zapcore.SkipType {
			continue
		}
		f.AddTo(m)
		keys = append(keys, f.Key)
	}

	parts := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		v, ok := m.Fields[k]
		if !ok {
			continue
		}
		parts = append(parts, paint(c.key, k)+"="+paint(c.value, formatValue(v)))
	}
	return strings.Join(parts, " ")
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []interface{}:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = formatValue(item)
		}
		return "[" + strings.Join(items, ",") + "]"
	default:
		return fmt.Sprintf("%v", val)
	}
}
