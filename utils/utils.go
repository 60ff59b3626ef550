package utils

import (
	"os"
	"strings"
)

func AbsoluteURL(origin, path string) string {
	// Eliminate trailing slashes to canonicalize the origin before joining
	origin = strings.TrimRight(origin, "/")
	if path == "" {
		return origin
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}

func PathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}
