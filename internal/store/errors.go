package store

import "github.com/fallencrown/crown-cli/internal/client"

// errorMessage converts a failed operation into the human-readable string the
// store records. The raw backend detail wins over the generic fallback.
func errorMessage(err error, fallback string) string {
	if apiErr, ok := client.AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Body != "" {
			return apiErr.Body
		}
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
