// Package logging builds the process logger from config.Logging.
// Library packages never log; only cmd/ and the viewer session do.
package logging
