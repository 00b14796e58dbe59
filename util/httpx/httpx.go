package httpx

import (
	"net"
	"net/http"
	"time"
)

// defaultClient is shared by the catalog and document-store bindings. Failed
// calls are never retried, so the timeout is the only backstop against a
// hung request pinning its operation.
var defaultClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxConnsPerHost:     20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

func Client() *http.Client { return defaultClient }
