package journal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/daylog/internal/models"
)

// field identifies an Entry field that the raw input supplied explicitly.
type field uint16

const (
	fieldID field = 1 << iota
	fieldDate
	fieldMood
	fieldPain
	fieldFatigue
	fieldNausea
	fieldNotes
	fieldTags
	fieldCreatedAt
	fieldUpdatedAt
)

// decoded is the result of normalizing one raw value: a valid Entry plus the
// set of fields that came from the input rather than from defaults.
type decoded struct {
	entry    models.Entry
	supplied field
}

func (d decoded) has(f field) bool {
	return d.supplied&f != 0
}

// Sanitize coerces an arbitrary value into a valid Entry. It never fails:
// anything missing or unusable takes its default.
//
// raw is normally the result of decoding JSON into an `any`. A models.Entry
// (or pointer to one) is accepted too and re-normalized. Values that are not
// objects sanitize as the empty object.
func (j *Journal) Sanitize(raw any) models.Entry {
	return j.decode(raw).entry
}

// SanitizeAll sanitizes every element of raws in order.
func (j *Journal) SanitizeAll(raws []any) []models.Entry {
	entries := make([]models.Entry, 0, len(raws))
	for _, raw := range raws {
		entries = append(entries, j.Sanitize(raw))
	}
	return entries
}

func (j *Journal) decode(raw any) decoded {
	obj := asObject(raw)
	now := j.Timestamp()
	var d decoded

	date, _ := toText(obj["date"])
	d.entry.Date = firstRunes(date, 10)
	if _, ok := obj["date"]; ok {
		d.supplied |= fieldDate
	}

	d.entry.Mood = d.number(obj["mood"], fieldMood, models.MoodDefault, models.MoodMin, models.MoodMax)
	d.entry.Pain = d.number(obj["pain"], fieldPain, models.SymptomDefault, models.SymptomMin, models.SymptomMax)
	d.entry.Fatigue = d.number(obj["fatigue"], fieldFatigue, models.SymptomDefault, models.SymptomMin, models.SymptomMax)
	d.entry.Nausea = d.number(obj["nausea"], fieldNausea, models.SymptomDefault, models.SymptomMin, models.SymptomMax)

	if notes, ok := obj["notes"].(string); ok && strings.TrimSpace(notes) != "" {
		d.entry.Notes = strings.TrimSpace(notes)
		d.supplied |= fieldNotes
	}

	if list, ok := obj["tags"].([]any); ok {
		d.entry.Tags = toTags(list)
		d.supplied |= fieldTags
	}

	if id, ok := nonEmptyString(obj["id"]); ok {
		d.entry.ID = id
		d.supplied |= fieldID
	} else {
		d.entry.ID = models.CanonicalID(d.entry.Date)
	}

	if createdAt, ok := nonEmptyString(obj["createdAt"]); ok {
		d.entry.CreatedAt = createdAt
		d.supplied |= fieldCreatedAt
	} else {
		d.entry.CreatedAt = now
	}
	if updatedAt, ok := nonEmptyString(obj["updatedAt"]); ok {
		d.entry.UpdatedAt = updatedAt
		d.supplied |= fieldUpdatedAt
	} else {
		d.entry.UpdatedAt = now
	}

	return d
}

// number coerces v and clamps it to [lo, hi], falling back to def.
func (d *decoded) number(v any, f field, def, lo, hi int) int {
	n, ok := toNumber(v)
	if !ok {
		return def
	}
	d.supplied |= f
	n = math.Round(n)
	if n < float64(lo) {
		return lo
	}
	if n > float64(hi) {
		return hi
	}
	return int(n)
}

func asObject(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case models.Entry:
		return entryObject(v)
	case *models.Entry:
		if v != nil {
			return entryObject(*v)
		}
	case json.RawMessage:
		return bytesObject(v)
	case []byte:
		return bytesObject(v)
	}
	return map[string]any{}
}

func entryObject(e models.Entry) map[string]any {
	data, err := json.Marshal(e)
	if err != nil {
		return map[string]any{}
	}
	return bytesObject(data)
}

func bytesObject(data []byte) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

// toNumber follows loose numeric coercion: numbers as-is, numeric strings
// parsed, booleans as 1/0. Missing, null, NaN and infinities are rejected.
func toNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	case bool:
		if x {
			n = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// toText stringifies scalar values. Objects and arrays have no text form here.
func toText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}

func toTags(list []any) []string {
	var tags []string
	for _, item := range list {
		if !truthy(item) {
			continue
		}
		if s, ok := toText(item); ok {
			tags = append(tags, s)
			continue
		}
		data, err := json.Marshal(item)
		if err != nil {
			continue
		}
		tags = append(tags, string(data))
	}
	return tags
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	}
	return true
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
