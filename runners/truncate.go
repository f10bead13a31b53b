package runners

import "unicode/utf8"

// TruncationNotice is appended verbatim whenever output is cut. The
// wording is part of the contract observed by the model consuming tool
// output and must not vary per call.
const TruncationNotice = `<response clipped><NOTE>To save on context only part of this output has been shown to you. You should retry this tool after you have searched inside the output with ` + "`grep -n`" + ` in order to find the line numbers of what you are looking for.</NOTE>`

// Truncate bounds content to at most after bytes plus the fixed notice,
// never splitting a multi-byte rune at the cut. A nil limit disables
// truncation.
func Truncate(content string, after *int) string {
	if after == nil || len(content) <= *after {
		return content
	}
	limit := *after
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit] + TruncationNotice
}
