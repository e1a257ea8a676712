package reader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// A Resource is a streamable scene asset. It can live on the local
// filesystem or behind an http(s) URL, and it remembers where it was
// opened from so assets referenced by a scene document (meshes, texture
// images) can be resolved relative to it.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Path returns the location this resource was opened from.
func (r *Resource) Path() string {
	return r.url.String()
}

// IsRemote returns true when the resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// NewResource opens pathToResource for streaming. Windows-style path
// separators are normalized to forward slashes before the path is
// interpreted. When relTo is non-nil and pathToResource carries no
// scheme, the path is resolved relative to relTo's location.
//
// The caller must close the returned resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	target, err := resolveURL(strings.ReplaceAll(pathToResource, `\`, `/`), relTo)
	if err != nil {
		return nil, err
	}

	var stream io.ReadCloser
	switch target.Scheme {
	case "":
		if stream, err = os.Open(filepath.Clean(target.Path)); err != nil {
			return nil, err
		}
	case "http", "https":
		if stream, err = fetchRemote(target); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", target.Scheme)
	}

	return &Resource{
		ReadCloser: stream,
		url:        target,
	}, nil
}

// NewResourceFromStream wraps an in-memory reader so it can stand in
// for a file.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	url, _ := url.Parse(name)
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        url,
	}
}

// resolveURL parses raw and, for scheme-less paths with a parent
// resource, grafts the parent's directory onto the front. Local parents
// are expanded to absolute paths first so the result does not depend on
// the working directory.
func resolveURL(raw string, relTo *Resource) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme != "" || relTo == nil {
		return parsed, nil
	}

	base := *relTo.url
	dir := base.Path
	if base.Scheme == "" {
		if dir, err = filepath.Abs(base.String()); err != nil {
			return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", base.String(), err.Error())
		}
	}
	base.Path = filepath.Dir(dir) + "/" + parsed.Path
	return &base, nil
}

func fetchRemote(target *url.URL) (io.ReadCloser, error) {
	resp, err := http.Get(target.String())
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %s", target.String(), err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: could not fetch '%s': status %d", target.String(), resp.StatusCode)
	}
	return resp.Body, nil
}
