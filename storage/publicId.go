package storage

import (
	"net/url"
	"path"
	"strings"
)

// PublicIDFromURL recovers the public id of a Cloudinary delivery URL, e.g.
// https://res.cloudinary.com/demo/image/upload/v1712/nagaralert/users/abc.jpg
// yields nagaralert/users/abc. It returns "" for URLs it does not recognise.
func PublicIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	idx := -1
	for i, p := range parts {
		if p == "upload" {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(parts) {
		return ""
	}
	rest := parts[idx+1:]
	if len(rest) > 1 && strings.HasPrefix(rest[0], "v") && isDigits(rest[0][1:]) {
		rest = rest[1:]
	}
	joined := strings.Join(rest, "/")
	return strings.TrimSuffix(joined, path.Ext(joined))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
