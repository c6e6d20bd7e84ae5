package errata

// Annotation is one immutable leveled note. Its text lives in the arena of
// the payload that created it and is released together with that payload.
type Annotation struct {
	level Severity
	text  []byte
	next  *Annotation
}

// Severity returns the annotation's level.
func (a *Annotation) Severity() Severity {
	return a.level
}

// Text returns the annotation text. The slice aliases arena memory; callers
// must not modify it and must not hold it past the owning payload's release.
func (a *Annotation) Text() []byte {
	return a.text
}

// annotationList is an intrusive list of annotations, newest first.
type annotationList struct {
	head *Annotation
	n    int
}

// prepend makes a the new head. O(1).
func (l *annotationList) prepend(a *Annotation) {
	a.next = l.head
	l.head = a
	l.n++
}

func (l *annotationList) count() int {
	return l.n
}

// clear drops every annotation reference. No other side effects; in
// particular it never triggers sink notification on its own.
func (l *annotationList) clear() {
	l.head = nil
	l.n = 0
}
