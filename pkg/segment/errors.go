package segment

import "fmt"

// InputError reports an unusable page sequence: the run is aborted before
// any pipeline stage executes. Zero anchors or all-rejected spans are not
// input errors; they yield an empty result with an explanatory summary.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// ConfigError reports an unusable profile (no boundary patterns, or a
// pattern that failed to compile). Raised before anchor location runs.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
