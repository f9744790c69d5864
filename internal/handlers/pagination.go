package handlers

import (
	"errors"
	"strconv"
)

func parsePaginationParams(limitStr, skipStr string) (int64, int64, error) {
	limit := int64(50)
	skip := int64(0)

	if limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 {
			return 0, 0, errors.New("invalid limit")
		}
		if l > 100 {
			l = 100
		}
		limit = l
	}

	if skipStr != "" {
		s, err := strconv.ParseInt(skipStr, 10, 64)
		if err != nil || s < 0 {
			return 0, 0, errors.New("invalid skip")
		}
		skip = s
	}

	return limit, skip, nil
}
