package mapproj

import "fmt"

// errSetup formats a configuration error raised during a projection's
// setup, naming the projection and the offending field.
func errSetup(proj, format string, args ...interface{}) error {
	return fmt.Errorf("in mapproj."+proj+": "+format, args...)
}
