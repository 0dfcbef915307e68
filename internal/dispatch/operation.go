package dispatch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	MediaTypeJSON           = "application/json"
	MediaTypeMultipart      = "multipart/form-data"
	MediaTypeFormURLEncoded = "application/x-www-form-urlencoded"
	MediaTypeTextPlain      = "text/plain"
	MediaTypeOctetStream    = "application/octet-stream"
)

// Operation describes one API call.
type Operation struct {
	Method string
	// URL is relative to Config.BaseURL and may hold {name} placeholders
	// filled from Path.
	URL   string
	Path  map[string]any
	Query map[string]any

	Headers map[string]string
	// FormData is encoded as multipart/form-data unless MediaType says
	// application/x-www-form-urlencoded.
	FormData  map[string]any
	Body      any
	MediaType string

	// ResponseHeader, when set, makes the dispatch return this response
	// header instead of the body.
	ResponseHeader string
	// Errors maps status codes to the label used as APIError.Summary.
	Errors map[int]string
}

// File is a binary multipart field.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
}

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

type encodedBody struct {
	reader      io.Reader
	contentType string
}

func buildURL(cfg *Config, op *Operation) (string, error) {
	path := strings.ReplaceAll(op.URL, "{api-version}", cfg.Version)

	var missing []string
	path = placeholderPattern.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := op.Path[name]
		if !ok || isNil(v) {
			missing = append(missing, name)
			return m
		}
		return url.PathEscape(formatValue(v))
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingPathParam, strings.Join(missing, ", "))
	}

	full := strings.TrimRight(cfg.BaseURL, "/") + path
	if qs := encodeQuery(op.Query); qs != "" {
		full += "?" + qs
	}
	return full, nil
}

// encodeQuery drops nil values, repeats keys for slices and flattens maps
// as key[sub].
func encodeQuery(query map[string]any) string {
	values := url.Values{}
	for k, v := range query {
		appendValues(values, k, v)
	}
	return values.Encode()
}

func appendValues(values url.Values, key string, v any) {
	if isNil(v) {
		return
	}
	if b, ok := v.([]byte); ok {
		values.Add(key, string(b))
		return
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendValues(values, key, rv.Index(i).Interface())
		}
	case reflect.Map:
		for _, mk := range rv.MapKeys() {
			appendValues(values, fmt.Sprintf("%s[%v]", key, mk.Interface()), rv.MapIndex(mk).Interface())
		}
	default:
		values.Add(key, formatValue(rv.Interface()))
	}
}

func buildBody(op *Operation) (*encodedBody, error) {
	mediaType := ""
	if op.MediaType != "" {
		parsed, _, err := mime.ParseMediaType(op.MediaType)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, op.MediaType)
		}
		mediaType = parsed
	}

	fields := op.FormData
	if fields == nil && (mediaType == MediaTypeMultipart || mediaType == MediaTypeFormURLEncoded) {
		if m, ok := op.Body.(map[string]any); ok {
			fields = m
		} else if op.Body != nil {
			return nil, fmt.Errorf("%w: %s needs a field map, got %T", ErrUnsupportedMediaType, mediaType, op.Body)
		}
	}

	if fields != nil {
		switch mediaType {
		case MediaTypeFormURLEncoded:
			return encodeURLForm(fields), nil
		case "", MediaTypeMultipart:
			return encodeMultipart(fields)
		default:
			return nil, fmt.Errorf("%w: %q for form data", ErrUnsupportedMediaType, op.MediaType)
		}
	}

	if op.Body == nil {
		return nil, nil
	}

	switch {
	case mediaType == "":
		return inferBody(op.Body)
	case mediaType == MediaTypeJSON || strings.HasSuffix(mediaType, "+json"):
		return encodeJSON(op.Body, op.MediaType)
	case mediaType == MediaTypeTextPlain || mediaType == MediaTypeOctetStream:
		body, err := rawBody(op.Body)
		if err != nil {
			return nil, err
		}
		body.contentType = op.MediaType
		return body, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, op.MediaType)
	}
}

func inferBody(body any) (*encodedBody, error) {
	switch b := body.(type) {
	case []byte:
		return &encodedBody{reader: bytes.NewReader(b), contentType: MediaTypeOctetStream}, nil
	case io.Reader:
		return &encodedBody{reader: b, contentType: MediaTypeOctetStream}, nil
	case string:
		return &encodedBody{reader: strings.NewReader(b), contentType: MediaTypeTextPlain}, nil
	default:
		return encodeJSON(body, MediaTypeJSON)
	}
}

func rawBody(body any) (*encodedBody, error) {
	switch b := body.(type) {
	case []byte:
		return &encodedBody{reader: bytes.NewReader(b)}, nil
	case io.Reader:
		return &encodedBody{reader: b}, nil
	case string:
		return &encodedBody{reader: strings.NewReader(b)}, nil
	default:
		return nil, fmt.Errorf("%w: cannot send %T as raw body", ErrUnsupportedMediaType, body)
	}
}

func encodeJSON(body any, contentType string) (*encodedBody, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode json body: %w", err)
	}
	return &encodedBody{reader: bytes.NewReader(buf), contentType: contentType}, nil
}

func encodeURLForm(fields map[string]any) *encodedBody {
	values := url.Values{}
	for k, v := range fields {
		appendValues(values, k, v)
	}
	return &encodedBody{reader: strings.NewReader(values.Encode()), contentType: MediaTypeFormURLEncoded}
}

func encodeMultipart(fields map[string]any) (*encodedBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := writeField(w, k, fields[k]); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}
	return &encodedBody{reader: &buf, contentType: w.FormDataContentType()}, nil
}

func writeField(w *multipart.Writer, key string, v any) error {
	if isNil(v) {
		return nil
	}
	switch f := v.(type) {
	case File:
		return writeFile(w, key, &f)
	case *File:
		return writeFile(w, key, f)
	case []byte:
		return writeFile(w, key, &File{Name: key, Content: bytes.NewReader(f)})
	case string:
		return w.WriteField(key, f)
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := writeField(w, key, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map, reflect.Struct:
		buf, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode multipart field %s: %w", key, err)
		}
		return w.WriteField(key, string(buf))
	default:
		return w.WriteField(key, formatValue(rv.Interface()))
	}
}

func writeFile(w *multipart.Writer, key string, f *File) error {
	name := f.Name
	if name == "" {
		name = key
	}
	contentType := f.ContentType
	if contentType == "" {
		contentType = MediaTypeOctetStream
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{"name": key, "filename": name}))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create multipart file %s: %w", key, err)
	}
	if f.Content == nil {
		return nil
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return fmt.Errorf("copy multipart file %s: %w", key, err)
	}
	return nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
