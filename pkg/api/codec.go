package api

import (
	"encoding/json"
	"fmt"
)

// codecNameJSON matches the name Connect negotiates for application/json.
const codecNameJSON = "json"

// jsonCodec marshals plain Go message structs for Connect. It replaces the
// default protojson codec, which only accepts generated protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecNameJSON }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
