package api

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgerrors "github.com/samgau/atelier-storefront/pkg/errors"
)

// The backend's failure envelope carries a `detail` field that is
// either a plain string or a list of {loc, msg} validation entries.
type errorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type detailEntry struct {
	Loc json.RawMessage `json:"loc"`
	Msg string          `json:"msg"`
}

func decodeError(status int, payload []byte) error {
	code := pkgerrors.FromHTTPStatus(status)

	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil || len(envelope.Detail) == 0 {
		return pkgerrors.New(code, "")
	}

	message := detailMessage(envelope.Detail)
	typed := pkgerrors.New(code, message)
	if pkgerrors.MetadataFor(code).DetailsAllowed {
		typed = typed.WithDetails(json.RawMessage(envelope.Detail))
	}
	return typed
}

// detailMessage renders the envelope the way the storefront UI does:
// list entries become "loc: msg" segments separated by "; ", with
// location paths joined by " -> ".
func detailMessage(raw json.RawMessage) string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var entries []detailEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return ""
	}

	segments := make([]string, 0, len(entries))
	for _, entry := range entries {
		msg := entry.Msg
		if msg == "" {
			msg = "Validation error"
		}
		if loc := locPath(entry.Loc); loc != "" {
			segments = append(segments, loc+": "+msg)
			continue
		}
		segments = append(segments, msg)
	}
	return strings.Join(segments, "; ")
}

func locPath(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var parts []any
	if err := json.Unmarshal(raw, &parts); err != nil {
		return ""
	}
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			rendered = append(rendered, v)
		case float64:
			rendered = append(rendered, fmt.Sprintf("%d", int(v)))
		default:
			rendered = append(rendered, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(rendered, " -> ")
}
