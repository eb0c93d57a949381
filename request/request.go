package request

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error checks the given response for an error code, and, if one is
// present, returns a friendly error including the response body.
func Error(resp *resty.Response) error {
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return fmt.Errorf("http status code %d:\n%s", code, resp.String())
	}
	return nil
}
