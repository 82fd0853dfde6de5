package handler

import (
	"io"
	"net/http"
	"net/url"
)

// bodyValues parses a urlencoded request body by hand. ParseForm only reads
// the body for POST/PUT/PATCH, but clients send DELETE bodies here.
func bodyValues(r *http.Request) url.Values {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return url.Values{}
	}
	vals, err := url.ParseQuery(string(b))
	if err != nil {
		return url.Values{}
	}
	return vals
}
