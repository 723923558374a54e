package ptr

func Int(v int) *int {
	return &v
}

func String(v string) *string {
	return &v
}

func EqualInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
