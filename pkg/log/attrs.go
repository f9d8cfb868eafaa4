package log

import "log/slog"

func SessionID[T ~string](id T) slog.Attr {
	return slog.String("session_id", string(id))
}

func SolutionID[T ~string](id T) slog.Attr {
	return slog.String("solution_id", string(id))
}

func Locale(locale string) slog.Attr {
	return slog.String("locale", locale)
}

func ContentType(ct string) slog.Attr {
	return slog.String("content_type", ct)
}

func DocumentKey(key string) slog.Attr {
	return slog.String("document_key", key)
}

func Error(err error) slog.Attr {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return slog.String("error", msg)
}

func ErrorString(msg string) slog.Attr {
	return slog.String("error", msg)
}
