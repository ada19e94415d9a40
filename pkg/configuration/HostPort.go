package configuration

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// NewAPIServer parses an API server URL such as https://api.example.com:443.
// The port defaults to the scheme's well-known port when absent.
func NewAPIServer(rawURL string) (*APIServer, error) {
	URL, err := url.Parse(rawURL)

	if err != nil {
		return nil, errors.Wrapf(err, "invalid API server URL %q", rawURL)
	}

	if URL.Scheme == "" || URL.Hostname() == "" {
		return nil, errors.Errorf("invalid API server URL %q: scheme and host are required", rawURL)
	}

	server := &APIServer{
		Protocol: URL.Scheme,
		Host:     URL.Hostname(),
	}

	switch {
	case URL.Port() != "":
		server.Port, err = strconv.Atoi(URL.Port())

		if err != nil {
			return nil, errors.Wrapf(err, "invalid API server port in %q", rawURL)
		}
	case URL.Scheme == "http":
		server.Port = 80
	default:
		server.Port = 443
	}

	return server, nil
}
