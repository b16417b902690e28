package utils

import "strconv"

// ToUint parses path params like /tasks/:id.
func ToUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
