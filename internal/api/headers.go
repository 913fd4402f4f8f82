package api

import (
	"math"
	"mime"
	"path"
	"strconv"
	"strings"
)

// ParseContentDisposition extracts the filename from a Content-Disposition
// header. Surrounding quotes and any directory part are stripped. A missing
// or malformed header, or one without a usable filename, yields fallback.
func ParseContentDisposition(header, fallback string) string {
	if strings.TrimSpace(header) == "" {
		return fallback
	}

	// RFC 6266 parsing covers quoted names and filename*=UTF-8''...
	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := baseName(params["filename"]); name != "" {
			return name
		}
	}

	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if len(part) < len("filename=") || !strings.EqualFold(part[:len("filename=")], "filename=") {
			continue
		}
		name := baseName(strings.Trim(strings.TrimSpace(part[len("filename="):]), `"'`))
		if name != "" {
			return name
		}
	}
	return fallback
}

// baseName reduces a server-supplied name to its last element so it can be
// joined to a local directory. Names with no usable element yield "".
func baseName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}
	name = path.Base(name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}

// ParseSeconds reads a float seconds header value such as "1.2345".
// Missing or unparsable values are 0.
func ParseSeconds(header string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(header), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
