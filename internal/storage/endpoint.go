package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// normaliseEndpoint accepts "minio:9000" as well as "http://minio:9000" or
// "https://minio:9000" and returns host:port plus whether TLS is wanted.
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	// no scheme: plain host:port, insecure like a local MinIO
	return raw, false, nil
}

func endpointURL(raw string) (string, error) {
	host, secure, err := normaliseEndpoint(raw)
	if err != nil {
		return "", err
	}
	if secure {
		return "https://" + host, nil
	}
	return "http://" + host, nil
}
