package misc

import "github.com/BrugadaSyndrome/bslogger"

// ExitFailure is the status the process exits with when a run cannot be completed.
const ExitFailure = -1

// Severity picks the logger level an error is reported at.
type Severity int

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

// CheckError reports err on logger and tells the caller whether there was anything to report.
// Fatal and unknown severities terminate the process.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}

	message := err.Error()
	switch severity {
	case Error:
		logger.Error(message)
	case Warning:
		logger.Warning(message)
	case Info:
		logger.Info(message)
	case Debug:
		logger.Debug(message)
	default:
		logger.Fatal(message)
	}
	return true
}
