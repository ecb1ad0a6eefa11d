package logging

import (
	"io"
	"log"
	"os"
	"time"
)

const logFlags = log.Ldate | log.Ltime | log.Lmicroseconds

var (
	infoLogger  = log.New(os.Stderr, "[INFO] ", logFlags)
	errorLogger = log.New(os.Stderr, "[ERROR] ", logFlags)
	debugLogger = log.New(os.Stderr, "[DEBUG] ", logFlags)
)

// SetOutput redirects every logger to w. Tests use it to capture output.
func SetOutput(w io.Writer) {
	infoLogger.SetOutput(w)
	errorLogger.SetOutput(w)
	debugLogger.SetOutput(w)
}

// Infof logs general information
func Infof(format string, args ...interface{}) {
	infoLogger.Printf(format, args...)
}

// Errorf logs an error message
func Errorf(format string, args ...interface{}) {
	errorLogger.Printf(format, args...)
}

// LogError logs err together with the operation it came from
func LogError(err error, operation string) {
	errorLogger.Printf("%s: %v", operation, err)
}

// LogRequest logs a completed HTTP request
func LogRequest(requestID, method, path, remoteAddr string, status int, duration time.Duration) {
	infoLogger.Printf("%s %s %s %s %d %v", requestID, method, path, remoteAddr, status, duration)
}
