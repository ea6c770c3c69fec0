package jsonschema

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// DocumentLoader fetches the raw schema document addressed by a URI and
// decodes it into the generic any-shaped representation (map[string]any,
// []any, string, float64/int, bool, nil) that the normalizer consumes.
// One is registered per URI scheme: "file", "http", "https", or any
// custom scheme an application needs (e.g. "classpath", "s3").
type DocumentLoader func(uri string) (any, error)

// registerBuiltinLoaders wires up the loaders every Compiler starts
// with: "file" for local paths and "http"/"https" for network fetches,
// both decoding either JSON or YAML by file extension (see decodeDocument).
func (c *Compiler) registerBuiltinLoaders() {
	c.RegisterLoader("file", c.loadFile)

	client := &http.Client{Timeout: 10 * time.Second}
	httpLoader := func(uri string) (any, error) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, ErrNetworkFetch
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			return nil, ErrInvalidStatusCode
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, ErrDataRead
		}
		return c.decodeDocument(uri, data)
	}
	c.RegisterLoader("http", httpLoader)
	c.RegisterLoader("https", httpLoader)
}

func (c *Compiler) loadFile(uri string) (any, error) {
	u := ParseURI(uri)
	path := u.Base
	if len(path) > len("file://") && path[:7] == "file://" {
		path = path[7:]
	}
	path = normalizeLocalPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.decodeDocument(path, data)
}

// decodeDocument picks JSON or YAML decoding by file extension,
// defaulting to JSON for extensionless or unrecognized names since
// every YAML document loaded this way is also expected to parse as a
// JSON-compatible value once decoded.
func (c *Compiler) decodeDocument(name string, data []byte) (any, error) {
	if hasYAMLExtension(name) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, ErrYAMLUnmarshal
		}
		return v, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, ErrJSONUnmarshal
	}
	return v, nil
}

func hasYAMLExtension(name string) bool {
	n := len(name)
	return (n >= 5 && name[n-5:] == ".yaml") || (n >= 4 && name[n-4:] == ".yml")
}
