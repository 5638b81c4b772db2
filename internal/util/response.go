package util

type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"error": message}
}

// ErrorCode attaches a stable machine-readable code alongside the
// human-readable message so clients can branch without string matching.
func ErrorCode(code, message string) Envelope {
	return Envelope{"code": code, "error": message}
}

func Data(key string, value any) Envelope {
	return Envelope{key: value}
}
