package util

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id is not an integer")

// ParseID reads an entity id. An empty string is id 0, which no stored entity has.
func ParseID(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}

// FirstNonEmpty returns the first value that is not "".
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
