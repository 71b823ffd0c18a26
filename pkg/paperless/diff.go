package paperless

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// readOnlyKeys are rendered by the server but rejected on writes.
var readOnlyKeys = map[string]struct{}{
	"id":                    {},
	"slug":                  {},
	"document_count":        {},
	"modified":              {},
	"added":                 {},
	"page_count":            {},
	"user_can_change":       {},
	"inherited_permissions": {},
	"date_joined":           {},
	"__search_hit__":        {},
	"notes":                 {},
}

var nullValue = json.RawMessage("null")

// Changes computes the write payload for a patch update: every key whose
// rendering differs between original and modified. Keys the server treats as
// read-only are skipped; a key that vanished is sent as an explicit null. The
// permission table is read under "permissions" but written under
// "set_permissions", so the key is renamed on the way out. An empty result
// means no request needs to be sent.
func Changes(original, modified any) (map[string]json.RawMessage, error) {
	before, err := toRawMap(original)
	if err != nil {
		return nil, fmt.Errorf("rendering original record: %w", err)
	}

	after, err := toRawMap(modified)
	if err != nil {
		return nil, fmt.Errorf("rendering modified record: %w", err)
	}

	patch := make(map[string]json.RawMessage)

	for key, value := range after {
		if _, readonly := readOnlyKeys[key]; readonly {
			continue
		}

		if previous, ok := before[key]; ok && bytes.Equal(previous, value) {
			continue
		}

		patch[writeKey(key)] = value
	}

	for key := range before {
		if _, readonly := readOnlyKeys[key]; readonly {
			continue
		}

		if _, ok := after[key]; !ok {
			patch[writeKey(key)] = nullValue
		}
	}

	return patch, nil
}

// WritePayload renders a record for a full replacement write, with read-only
// keys dropped and the permission table renamed for writing.
func WritePayload(record any) (map[string]json.RawMessage, error) {
	rendered, err := toRawMap(record)
	if err != nil {
		return nil, fmt.Errorf("rendering record: %w", err)
	}

	payload := make(map[string]json.RawMessage, len(rendered))

	for key, value := range rendered {
		if _, readonly := readOnlyKeys[key]; readonly {
			continue
		}

		payload[writeKey(key)] = value
	}

	return payload, nil
}

func writeKey(key string) string {
	if key == "permissions" {
		return "set_permissions"
	}

	return key
}

func toRawMap(record any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	var rendered map[string]json.RawMessage

	err = json.Unmarshal(data, &rendered)
	if err != nil {
		return nil, err
	}

	return rendered, nil
}
