// SPDX-FileCopyrightText: 2023-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package bcount

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
)

// String formats the value with the default fmt verb.
func (c Counted[T]) String() string {
	return fmt.Sprint(c.value)
}

// MarshalJSON encodes the value only. The count is not part of the encoding.
func (c Counted[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// UnmarshalJSON decodes into the value. A successful decode counts as one
// write access; a failed decode leaves both the value and the count unchanged.
func (c *Counted[T]) UnmarshalJSON(bytes []byte) error {
	var value T
	if err := json.Unmarshal(bytes, &value); err != nil {
		return err
	}
	c.Set(value)
	return nil
}

// MarshalYAML encodes the value only.
func (c Counted[T]) MarshalYAML() (interface{}, error) {
	return c.value, nil
}

// UnmarshalYAML decodes into the value with the same counting rules as
// UnmarshalJSON.
func (c *Counted[T]) UnmarshalYAML(node *yaml.Node) error {
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	c.Set(value)
	return nil
}
