package logger

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/secrets"

	"github.com/lmittmann/tint"
	"github.com/m-mizutani/masq"
)

// Initialize sets up the global slog logger based on the environment
func Initialize(env constants.Environment, level slog.Level) *slog.Logger {
	var handler slog.Handler

	switch env {
	case constants.Production:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: redactAttr,
		})
	default:
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:       level,
			TimeFormat:  time.TimeOnly,
			ReplaceAttr: replaceAttrForDev,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "env", env, "level", level)

	return logger
}

// valueRedactor masks tokens that show up in otherwise harmless attributes.
var valueRedactor = masq.New(
	masq.WithRegex(secrets.BearerPattern),
	masq.WithRegex(secrets.JWTPattern),
)

// maskValue runs a nested map value through valueRedactor.
func maskValue(value string) string {
	return valueRedactor(nil, slog.String("", value)).Value.String()
}

// redactAttr masks credential values, including those nested in map attributes.
func redactAttr(groups []string, a slog.Attr) slog.Attr {
	if secrets.IsSecretKey(a.Key) {
		return slog.String(a.Key, secrets.Redacted)
	}
	if a.Value.Kind() != slog.KindAny {
		return valueRedactor(groups, a)
	}

	switch m := a.Value.Any().(type) {
	case map[string]any:
		return slog.Any(a.Key, secrets.RedactMap(m, maskValue))
	case map[string]string:
		return slog.Any(a.Key, secrets.RedactStringMap(m, maskValue))
	default:
		return valueRedactor(groups, a)
	}
}

// replaceAttrForDev redacts secrets, then flattens map attributes into
// key=value pairs so nested context maps stay readable on a terminal.
func replaceAttrForDev(groups []string, a slog.Attr) slog.Attr {
	a = redactAttr(groups, a)
	if a.Value.Kind() != slog.KindAny {
		return a
	}

	switch a.Value.Any().(type) {
	case map[string]string, map[string]any:
		return slog.String(a.Key, flattenMapAttr(a.Key, a.Value.Any()))
	default:
		return a
	}
}

// flattenMapAttr renders maps as sorted, space separated prefix.key=value pairs.
// Non-map values are formatted with %v.
func flattenMapAttr(prefix string, value any) string {
	var pairs []string

	join := func(key string) string {
		if prefix == "" {
			return key
		}
		return prefix + "." + key
	}

	switch m := value.(type) {
	case map[string]string:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			pairs = append(pairs, join(k)+"="+m[k])
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			switch nested := m[k].(type) {
			case map[string]string, map[string]any:
				pairs = append(pairs, flattenMapAttr(join(k), nested))
			default:
				pairs = append(pairs, fmt.Sprintf("%s=%v", join(k), nested))
			}
		}
	default:
		return fmt.Sprintf("%v", value)
	}

	return strings.Join(pairs, " ")
}
