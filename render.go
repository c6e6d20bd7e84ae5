package errata

import (
	"fmt"
	"io"
	"strings"
)

// Write renders the annotations to w, newest first, one line per note:
//
//	[ERROR]: retry scheduled
//	  [WARNING]: disk full
//
// The first line carries no indent, every further line is indented by two
// spaces. An empty Errata writes nothing. Returns the number of bytes
// written and the first write error, if any.
func (e *Errata) Write(w io.Writer) (int, error) {
	var total int
	var head *Annotation
	if e.data != nil {
		head = e.data.notes.head
	}
	lead := ""
	for a := head; a != nil; a = a.next {
		n, err := fmt.Fprintf(w, "%s[%s]: %s\n", lead, a.level, a.text)
		total += n
		if err != nil {
			return total, err
		}
		lead = "  "
	}
	return total, nil
}

// String renders the annotations as Write does.
func (e *Errata) String() string {
	var sb strings.Builder
	e.Write(&sb) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}
