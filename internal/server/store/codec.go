package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The snapshot document is one JSON object mapping username to account.
// encoding/json would serialize a map in sorted key order and forget the
// directory order on load, so both directions run through the token API
// with an explicit key sequence.

func marshalDirectory(order []string, accounts map[string]*Account) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(accounts[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalDirectory(data []byte) (map[string]*Account, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("snapshot document: expected object, got %v", tok)
	}

	accounts := make(map[string]*Account)
	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("snapshot document: expected username key, got %v", tok)
		}

		acc := &Account{Read: []Message{}, Unread: []Message{}}
		if err := dec.Decode(acc); err != nil {
			return nil, nil, fmt.Errorf("snapshot document: account %q: %w", name, err)
		}

		accounts[name] = acc
		order = append(order, name)
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	return accounts, order, nil
}
