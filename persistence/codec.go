// codec.go: value encoding for the durable store
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package persistence

import (
	"bytes"
	"encoding/gob"
)

// Codec converts a stored value to and from its durable blob
// representation (spec §6 "Value codec"). The in-memory engine does not
// require a Codec; only persistence does.
type Codec interface {
	Encode(value interface{}) ([]byte, error)
	Decode(blob []byte) (interface{}, error)
}

// GobCodec is the default Codec, using encoding/gob. Callers storing
// concrete types must register them with gob.Register before relying on
// round-tripping through an interface{}.
type GobCodec struct{}

func (GobCodec) Encode(value interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (GobCodec) Decode(blob []byte) (interface{}, error) {
	var value interface{}
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&value); err != nil {
		return nil, err
	}
	return value, nil
}
