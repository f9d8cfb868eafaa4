package util_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/util"
)

func TestEmptySet(t *testing.T) {
	s := util.Set[string]{}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestSetOfDuplicates(t *testing.T) {
	s := util.SetOf("a", "b", "a", "c", "b")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
}

func TestAddRemove(t *testing.T) {
	s := util.Set[int]{}
	s.Add(1)
	s.Add(2)
	s.Add(1)
	assert.Equal(t, 2, s.Len())

	s.Remove(2)
	s.Remove(99)
	assert.Equal(t, []int{1}, s.Sorted())
}

func TestToggleLeavesReceiver(t *testing.T) {
	orig := util.SetOf("a")

	added := orig.Toggle("b")
	assert.Equal(t, []string{"a", "b"}, added.Sorted())
	assert.Equal(t, []string{"a"}, orig.Sorted())

	removed := added.Toggle("a")
	assert.Equal(t, []string{"b"}, removed.Sorted())
	assert.Equal(t, []string{"a", "b"}, added.Sorted())
}

func TestToggleNilSet(t *testing.T) {
	var s util.Set[string]
	res := s.Toggle("x")
	assert.True(t, res.Contains("x"))
	assert.Nil(t, s)
}

func TestMarshalSorted(t *testing.T) {
	s := util.SetOf("c", "a", "b")
	data, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.JSONEq(t, `["a","b","c"]`, string(data))

	data, err = json.Marshal(util.Set[string]{})
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestUnmarshalDropsDuplicates(t *testing.T) {
	var s util.Set[string]
	err := json.Unmarshal([]byte(`["b","a","b"]`), &s)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Sorted())

	err = json.Unmarshal([]byte(`{"a":1}`), &s)
	assert.Error(t, err)
}
