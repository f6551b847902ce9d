package cake

import "fmt"

// Document is a cake record in its generic document form. Update merges
// arbitrary caller fields over the stored record, so records are handled as
// open documents rather than a closed struct.
type Document map[string]any

// RequiredFields are the data fields every new cake must carry.
var RequiredFields = []string{"name", "comment", "imageUrl", "yumFactor"}

// allowedFields is the creation whitelist: the required fields plus the
// identifier, which a caller may send but which is always overwritten.
var allowedFields = map[string]struct{}{
	"name":      {},
	"comment":   {},
	"imageUrl":  {},
	"yumFactor": {},
	"id":        {},
}

// HasRequiredFields reports whether every required field is present.
// Presence only; values are not type-checked.
func (d Document) HasRequiredFields() bool {
	for _, f := range RequiredFields {
		if _, ok := d[f]; !ok {
			return false
		}
	}
	return true
}

// UnexpectedFields returns every field outside the creation whitelist.
func (d Document) UnexpectedFields() []string {
	var extra []string
	for f := range d {
		if _, ok := allowedFields[f]; !ok {
			extra = append(extra, f)
		}
	}
	return extra
}

// Clone returns a shallow copy of the document. Values are flat (no nested
// documents), so a shallow copy is a full copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// IDString normalizes a raw store identifier to its string form.
func IDString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// WithStringID converts a stored document to its API shape: the store key
// "_id" becomes the string field "id". The input is not mutated.
func WithStringID(d Document) Document {
	out := d.Clone()
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = IDString(raw)
	}
	return out
}
