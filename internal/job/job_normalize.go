package job

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Normalize shapes one raw remote document into a JobRecord. Every field read
// is treated as untrusted: absent or malformed values collapse to a safe
// default instead of propagating. A job must never fail to render because of
// a bad stored value.
func Normalize(doc map[string]any) JobRecord {
	rec := JobRecord{
		ID:           stringField(doc, "id"),
		Title:        stringField(doc, "title"),
		Address:      stringField(doc, "address"),
		Description:  stringField(doc, "description"),
		ClientName:   stringField(doc, "clientName"),
		ClientPhone:  stringField(doc, "clientPhone"),
		ClientNotes:  stringField(doc, "clientNotes"),
		OwnerUID:     stringField(doc, "ownerUid"),
		CreatedByUID: stringField(doc, "createdByUid"),
		IsDone:       boolField(doc, "isDone"),
		LaborHours:   numberField(doc, "laborHours"),
		HourlyRate:   numberField(doc, "hourlyRate"),
		MaterialCost: numberField(doc, "materialCost"),
		CreatedAt:    timeField(doc, "createdAt"),
		Photos:       photoLocators(doc["photos"]),
	}

	if v, ok := doc["assignedToUid"].(string); ok {
		rec.AssignedToUID = v
	}
	rec.AssignedToUIDs = uidSet(doc["assignedToUids"])

	return rec
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func boolField(doc map[string]any, key string) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return false
}

// numberField coerces the stored value to a finite float64, falling back to 0
// rather than letting NaN leak into cost math.
func numberField(doc map[string]any, key string) float64 {
	var f float64

	switch v := doc[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		f, _ = v.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timeField normalizes the three createdAt encodings the store is known to
// hold (string timestamp, provider time object, numeric epoch) to one
// canonical RFC3339 string. Unparseable values fall back to "now".
func timeField(doc map[string]any, key string) string {
	switch v := doc[key].(type) {
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}

	case map[string]any:
		// A provider-native timestamp round-trips through JSON as an object
		// with seconds and nanos.
		secs, ok := timestampSeconds(v)
		if ok {
			nanos := int64(numberField(v, "nanoseconds"))
			if nanos == 0 {
				nanos = int64(numberField(v, "nanos"))
			}
			return time.Unix(secs, nanos).UTC().Format(time.RFC3339)
		}

	case float64:
		return epochToRFC3339(v)
	case int64:
		return epochToRFC3339(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return epochToRFC3339(f)
		}
	}

	return time.Now().UTC().Format(time.RFC3339)
}

func timestampSeconds(v map[string]any) (int64, bool) {
	for _, key := range []string{"seconds", "_seconds"} {
		raw, ok := v[key]
		if !ok {
			continue
		}
		switch n := raw.(type) {
		case float64:
			return int64(n), true
		case int64:
			return n, true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return int64(f), true
			}
		case string:
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return int64(f), true
			}
		}
	}
	return 0, false
}

func epochToRFC3339(v float64) string {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return time.Now().UTC().Format(time.RFC3339)
	}
	// Heuristic: values past the year ~33658 as seconds are milliseconds.
	if v > 1e12 {
		return time.UnixMilli(int64(v)).UTC().Format(time.RFC3339)
	}
	return time.Unix(int64(v), 0).UTC().Format(time.RFC3339)
}

// photoLocators keeps only photo locators. Remote documents must never carry
// decoded image bytes, so inline payloads are dropped on read; object entries
// contribute their locator field if they have one.
func photoLocators(raw any) []string {
	entries, ok := raw.([]any)
	if !ok {
		return []string{}
	}

	locators := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			if isInlineImage(v) {
				continue
			}
			if v != "" {
				locators = append(locators, v)
			}
		case map[string]any:
			for _, key := range []string{"url", "uri", "path"} {
				if loc, ok := v[key].(string); ok && loc != "" && !isInlineImage(loc) {
					locators = append(locators, loc)
					break
				}
			}
		}
	}
	return locators
}

func isInlineImage(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// uidSet de-duplicates the set-valued assignment field, keeping first-seen
// order. Membership is what matters, not position.
func uidSet(raw any) []string {
	entries, ok := raw.([]any)
	if !ok {
		return []string{}
	}

	seen := make(map[string]struct{}, len(entries))
	uids := make([]string, 0, len(entries))
	for _, entry := range entries {
		uid, ok := entry.(string)
		if !ok || uid == "" {
			continue
		}
		if _, dup := seen[uid]; dup {
			continue
		}
		seen[uid] = struct{}{}
		uids = append(uids, uid)
	}
	return uids
}
