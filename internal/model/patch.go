package model

// Coercion helpers for partial updates. Request bodies decode into
// map[string]any, so numbers arrive as float64 and dates as strings.
// A value that does not coerce to the field's type is ignored, the same
// way unknown keys are.

func setString(dst *string, v any) {
	if s, ok := v.(string); ok {
		*dst = s
	}
}

func setInt(dst *int, v any) {
	switch n := v.(type) {
	case float64:
		*dst = int(n)
	case int:
		*dst = n
	}
}

func setFloat(dst *float64, v any) {
	switch n := v.(type) {
	case float64:
		*dst = n
	case int:
		*dst = float64(n)
	}
}

func setBool(dst *bool, v any) {
	if b, ok := v.(bool); ok {
		*dst = b
	}
}

func setDate(dst *Date, v any) {
	if s, ok := v.(string); ok {
		if d, err := ParseDate(s); err == nil {
			*dst = d
		}
	}
}
