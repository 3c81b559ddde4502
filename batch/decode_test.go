// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChangeWithIDAndTo(t *testing.T) {
	ops, err := Decode([]byte(`{"add":[],"change":[{"id":"0","to":{"x":1,"y":0}}],"remove":[]}`))
	require.NoError(t, err)

	assert.Empty(t, ops.Add)
	assert.Empty(t, ops.Remove)
	require.Len(t, ops.Change, 1)
	c := ops.Change[0]
	assert.Equal(t, "0", c.ID)
	require.NotNil(t, c.To)
	assert.Equal(t, Point{X: 1, Y: 0}, *c.To)
	assert.Nil(t, c.From)
	assert.Nil(t, c.Fill)
}

func TestDecodeAdd(t *testing.T) {
	ops, err := Decode([]byte(`{
		"add": [{
			"id": "first line",
			"fill": {"red": 255, "green": 255, "blue": 2, "alpha": 255},
			"from": {"x": 320, "y": 240},
			"to": {"x": 100, "y": 50},
			"z": 3
		}],
		"remove": [],
		"change": []
	}`))
	require.NoError(t, err)
	require.Len(t, ops.Add, 1)
	assert.Equal(t, AddOp{
		ID:   "first line",
		Fill: Color{Red: 255, Green: 255, Blue: 2, Alpha: 255},
		From: Point{X: 320, Y: 240},
		To:   Point{X: 100, Y: 50},
		Z:    3,
	}, ops.Add[0])
}

func TestDecodeRemoveForms(t *testing.T) {
	ops, err := Decode([]byte(`{"add":[],"remove":["a",{"id":"b"}],"change":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []RemoveOp{{ID: "a"}, {ID: "b"}}, ops.Remove)
}

func TestDecodeMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"add":`,
		"missing add":       `{"remove":[],"change":[]}`,
		"missing remove":    `{"add":[],"change":[]}`,
		"missing change":    `{"add":[],"remove":[]}`,
		"null list":         `{"add":null,"remove":[],"change":[]}`,
		"channel overflow":  `{"add":[{"id":"a","fill":{"red":256,"green":0,"blue":0,"alpha":0},"from":{"x":0,"y":0},"to":{"x":0,"y":0}}],"remove":[],"change":[]}`,
		"negative point":    `{"add":[],"remove":[],"change":[{"id":"a","to":{"x":-1,"y":0}}]}`,
		"add without to":    `{"add":[{"id":"a","fill":{"red":0,"green":0,"blue":0,"alpha":0},"from":{"x":0,"y":0}}],"remove":[],"change":[]}`,
		"change without id": `{"add":[],"remove":[],"change":[{"to":{"x":1,"y":1}}]}`,
		"remove without id": `{"add":[],"remove":[{}],"change":[]}`,
		"remove null":       `{"add":[],"remove":[null],"change":[]}`,
		"trailing data":     `{"add":[],"remove":[],"change":[]} {}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			ops, err := Decode([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.True(t, ops.Empty())
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	to := Point{X: 7, Y: 8}
	in := Ops{
		Add:    []AddOp{line("a", 2)},
		Change: []ChangeOp{{ID: "a", To: &to}},
	}

	data, err := Encode(in)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, in.Add, out.Add)
	assert.Empty(t, out.Remove)
	assert.Equal(t, in.Change, out.Change)
}
