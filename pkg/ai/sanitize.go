package ai

import "strings"

const fence = "```"

// Sanitize strips an optional markdown code fence wrapping the model's reply.
//
// The reply is trimmed first. When it opens with a fence, the whole opening
// line (fence plus optional language tag) is dropped, along with a closing
// fence on its own final line. Content between the fences is returned as is.
// Replies that do not match this shape come back trimmed but otherwise
// untouched; Sanitize never fails.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, fence) {
		return s
	}

	nl := strings.IndexByte(s, '\n')
	if nl == -1 {
		return s
	}
	body := s[nl+1:]

	if body == fence {
		return ""
	}
	if strings.HasSuffix(body, "\n"+fence) {
		body = strings.TrimSuffix(body[:len(body)-len(fence)-1], "\r")
	}
	return body
}
