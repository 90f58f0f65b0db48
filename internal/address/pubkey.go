package address

import (
	"bytes"
	"encoding/json"
)

// PubKey is a public key as it appears in Cosmos REST payloads. It decodes
// either from {"@type": ..., "key": ...} or from a bare base64 string, in
// which case Type stays empty.
type PubKey struct {
	Type string `json:"@type"`
	Key  string `json:"key"`
}

// UnmarshalJSON accepts both the typed object and the bare string forms.
func (p *PubKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var key string
		if err := json.Unmarshal(data, &key); err != nil {
			return err
		}
		*p = PubKey{Key: key}
		return nil
	}
	type plain PubKey
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PubKey(v)
	return nil
}

func (p PubKey) raw() ([]byte, bool) {
	return decodeBase64(p.Key)
}
