package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/railwayapp/envcli/errors"
)

const (
	maxErrorBody = 64 << 10
	// machinebox/graphql prefixes the first error of a GraphQL response
	graphQLErrorPrefix = "graphql: "
)

// statusTransport fails non-2xx responses with an *errors.APIError carrying
// the status code, so callers can tell auth failures from missing projects.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	res, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return res, nil
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	return nil, &errors.APIError{
		StatusCode: res.StatusCode,
		Message:    errorMessage(body),
	}
}

// errorMessage pulls a message out of either a GraphQL error list or a
// plain {"error": {"message": ...}} body.
func errorMessage(body []byte) string {
	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	switch {
	case len(payload.Errors) > 0:
		return payload.Errors[0].Message
	case payload.Error.Message != "":
		return payload.Error.Message
	}
	return payload.Message
}

// graphQLStatus gives GraphQL errors answered with HTTP 200 the status a
// REST API would have used, so callers classify them the same way. Transport
// and status errors are returned unchanged.
func graphQLStatus(err error) error {
	if errors.StatusCode(err) != 0 || !strings.HasPrefix(err.Error(), graphQLErrorPrefix) {
		return err
	}
	message := strings.TrimPrefix(err.Error(), graphQLErrorPrefix)
	lower := strings.ToLower(message)
	status := 0
	switch {
	case strings.Contains(lower, "not found"):
		status = http.StatusNotFound
	case strings.Contains(lower, "not authorized"), strings.Contains(lower, "unauthorized"):
		status = http.StatusUnauthorized
	case strings.Contains(lower, "forbidden"), strings.Contains(lower, "access"):
		status = http.StatusForbidden
	default:
		return err
	}
	return &errors.APIError{StatusCode: status, Message: message}
}
