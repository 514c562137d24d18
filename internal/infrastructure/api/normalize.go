package api

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// Page is a normalized list response.
type Page struct {
	Items []json.RawMessage
	// Paginated is set when the rows came from a content envelope.
	Paginated     bool
	TotalElements int
	TotalPages    int
	Number        int
	Size          int
	// Malformed is set when the body was neither a list nor an envelope.
	Malformed bool
}

// Normalize turns a list response into a flat sequence of items. It accepts a
// bare JSON array or an object whose content field is an array. Anything
// else yields an empty, malformed page.
func Normalize(raw []byte) Page {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Page{Malformed: true}
	}
	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page{Malformed: true}
		}
		return Page{Items: items, TotalElements: len(items)}
	case '{':
		var env struct {
			Content       json.RawMessage `json:"content"`
			TotalElements *int            `json:"totalElements"`
			TotalPages    int             `json:"totalPages"`
			Number        int             `json:"number"`
			Size          int             `json:"size"`
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Page{Malformed: true}
		}
		content := bytes.TrimSpace(env.Content)
		if len(content) == 0 || content[0] != '[' {
			return Page{Malformed: true}
		}
		var items []json.RawMessage
		if err := json.Unmarshal(content, &items); err != nil {
			return Page{Malformed: true}
		}
		p := Page{
			Items:         items,
			Paginated:     true,
			TotalElements: len(items),
			TotalPages:    env.TotalPages,
			Number:        env.Number,
			Size:          env.Size,
		}
		if env.TotalElements != nil {
			p.TotalElements = *env.TotalElements
		}
		return p
	default:
		return Page{Malformed: true}
	}
}

// decodeItems decodes each item on its own; items that do not fit T are
// skipped.
func decodeItems[T any](items []json.RawMessage, logger *zap.Logger) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			logger.Warn("skipping undecodable item", zap.Int("index", i), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out
}

// flexString accepts both JSON strings and numbers.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}
