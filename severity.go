package errata

import "fmt"

// Severity defines the importance of an annotation. Severities are totally
// ordered; the aggregate severity of an Errata is the maximum over its
// annotations.
type Severity uint8

const (
	// SevDiag is for verbose diagnostic detail.
	SevDiag Severity = iota
	// SevDebug is for development-time output.
	SevDebug
	// SevInfo is for informational annotations.
	SevInfo
	// SevNote marks something worth surfacing to the caller.
	SevNote
	// SevWarning marks a problem that did not stop the operation.
	SevWarning
	SevError
	SevFatal
	SevAlert
	SevEmergency
)

// DefaultSeverity is the aggregate severity of an Errata with no annotations.
const DefaultSeverity = SevDiag

// FailureSeverity is the threshold at or above which IsOK reports false.
const FailureSeverity = SevError

func (s Severity) String() string {
	switch s {
	case SevDiag:
		return "DIAG"
	case SevDebug:
		return "DEBUG"
	case SevInfo:
		return "INFO"
	case SevNote:
		return "NOTE"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	case SevAlert:
		return "ALERT"
	case SevEmergency:
		return "EMERGENCY"
	}
	panic(fmt.Sprintf("errata: invalid severity %d", uint8(s)))
}

// IsFailure reports whether s is at or above FailureSeverity.
func (s Severity) IsFailure() bool {
	return s >= FailureSeverity
}
