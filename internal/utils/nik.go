package utils

// ValidNIK reports whether s is a well-formed 16-digit NIK.
func ValidNIK(s string) bool {
	if len(s) != 16 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
