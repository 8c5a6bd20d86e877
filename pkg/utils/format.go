package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var countedReplyRe = regexp.MustCompile(`^Re\[(\d+)\]: `)

// FormatSubject derives a reply subject. Instead of stacking "Re: Re: ..."
// on long chains, the prefix carries a counter: "Re: x" becomes "Re[2]: x",
// "Re[2]: x" becomes "Re[3]: x", and so on.
func FormatSubject(subject string) string {
	if m := countedReplyRe.FindStringSubmatch(subject); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return fmt.Sprintf("Re[%d]: %s", n+1, subject[len(m[0]):])
		}
	}
	if rest, ok := strings.CutPrefix(subject, "Re: "); ok {
		return "Re[2]: " + rest
	}
	return "Re: " + subject
}

// FormatQuote renders a message body as a quoted block for inclusion in a
// reply, attributed to the sender.
func FormatQuote(sender, body string) string {
	var b strings.Builder
	b.WriteString(sender)
	b.WriteString(" wrote:\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("> ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
