package activity

import "strings"

// Key is the structured identifier behind every Activity ID. The source kind
// already discriminates the role for dual-role sources, so the encoded form
// never needs a separate role segment. HR sub-record kinds carry the nested
// entry's id as SubID; all other kinds leave it empty.
//
// Encoded form: kind:recordID for plain kinds, kind:recordID:subID for HR
// sub-record kinds. Record and sub-record ids are UUIDs and never contain the
// separator, so parsing is exact.
type Key struct {
	Kind     SourceKind
	RecordID string
	SubID    string
}

func (k Key) String() string {
	if k.SubID != "" {
		return string(k.Kind) + ":" + k.RecordID + ":" + k.SubID
	}
	return string(k.Kind) + ":" + k.RecordID
}

func (k Key) Role() Role {
	return k.Kind.Role()
}

// ParseKey is the single decode path for composite keys. It rejects unknown
// kinds, missing segments, and arity that does not match the kind.
func ParseKey(id string) (Key, error) {
	parts := strings.Split(id, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Key{}, ErrInvalidActivityID
	}

	kind := SourceKind(parts[0])
	if !kind.Valid() {
		return Key{}, ErrInvalidActivityID
	}

	key := Key{Kind: kind, RecordID: parts[1]}
	if key.RecordID == "" {
		return Key{}, ErrInvalidActivityID
	}

	if kind.hasSubRecord() {
		if len(parts) != 3 || parts[2] == "" {
			return Key{}, ErrInvalidActivityID
		}
		key.SubID = parts[2]
		return key, nil
	}

	if len(parts) != 2 {
		return Key{}, ErrInvalidActivityID
	}
	return key, nil
}
