package batargs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f5rail/easement"
	"github.com/f5rail/easement/transition"
)

func TestParseTransition(t *testing.T) {
	tr, err := Parse([]string{"f5rail.exe", "/TRANSITION:1", "/R0:300", "/R1:-300", "/TCL:19.5", "/L0:0.5", "/FILE:./JWC_TEMP.TXT"})
	require.NoError(t, err)
	require.NoError(t, tr.Err)
	assert.Equal(t, "./JWC_TEMP.TXT", tr.File)
	assert.Equal(t, transition.Param{
		Diminish: transition.Sine,
		K0:       easement.Radius(300).Curvature(),
		K1:       easement.Radius(-300).Curvature(),
		TCL:      19.5,
		L0:       0.5,
	}, tr.Param)
}

func TestParseDefaults(t *testing.T) {
	tr, err := Parse([]string{"/TRANSITION:2", "/TCL:40", "/FILE:C:\\temp\\JWC_TEMP.TXT"})
	require.NoError(t, err)
	require.NoError(t, tr.Err)
	assert.Equal(t, "C:\\temp\\JWC_TEMP.TXT", tr.File)
	assert.Equal(t, transition.Linear, tr.Param.Diminish)
	assert.Equal(t, easement.Straight, tr.Param.K0)
	assert.Equal(t, easement.Straight, tr.Param.K1)
	assert.Equal(t, easement.Stationing(0), tr.Param.L0)
	assert.NoError(t, tr.Param.Validate())
}

func TestZeroRadiusIsStraight(t *testing.T) {
	tr, err := Parse([]string{"/TRANSITION:2", "/R0:0", "/R1:600", "/TCL:40", "/FILE:f"})
	require.NoError(t, err)
	require.NoError(t, tr.Err)
	assert.Equal(t, easement.Straight, tr.Param.K0)
	assert.Equal(t, easement.Radius(600).Curvature(), tr.Param.K1)
}

func TestParseFatalErrors(t *testing.T) {
	cases := []struct {
		args []string
		err  error
		msg  string
	}{
		{[]string{"f5rail.exe"}, ErrNoFeature, "機能を指定してください"},
		{[]string{"/R0:300", "/TCL:10", "/FILE:f"}, ErrNoFeature, "機能を指定してください"},
		{[]string{"/TRANSITION:1", "/TCL:10"}, ErrMissing, "FILEを指定してください"},
	}
	for _, c := range cases {
		tr, err := Parse(c.args)
		assert.Nil(t, tr)
		require.Error(t, err)
		assert.True(t, errors.Is(err, c.err), "args %v", c.args)
		assert.EqualError(t, err, c.msg)
	}
}

func TestParseParameterErrors(t *testing.T) {
	cases := []struct {
		args []string
		key  string
		err  error
		msg  string
	}{
		{[]string{"/TRANSITION:1"}, "TCL", ErrMissing, "TCLを指定してください"},
		{[]string{"/TRANSITION:3", "/TCL:10"}, "TRANSITION", ErrDiminish, "緩和曲線関数に正しい値を入力してください"},
		{[]string{"/TRANSITION:sine", "/TCL:10"}, "TRANSITION", ErrDiminish, "緩和曲線関数に正しい値を入力してください"},
		{[]string{"/TRANSITION:1", "/TCL:ten"}, "TCL", ErrNotNumber, "TCLを数値で入力してください"},
		{[]string{"/TRANSITION:1", "/TCL:NaN"}, "TCL", ErrNotNumber, "TCLを数値で入力してください"},
		{[]string{"/TRANSITION:1", "/TCL:0"}, "TCL", ErrRange, "TCLに正数を入力してください"},
		{[]string{"/TRANSITION:1", "/TCL:-5"}, "TCL", ErrRange, "TCLに正数を入力してください"},
		{[]string{"/TRANSITION:1", "/R0:abc", "/TCL:5"}, "R0", ErrNotNumber, "R0を数値で入力してください"},
		{[]string{"/TRANSITION:1", "/R1:", "/TCL:5"}, "R1", ErrNotNumber, "R1を数値で入力してください"},
		{[]string{"/TRANSITION:1", "/TCL:5", "/L0:+Inf"}, "L0", ErrNotNumber, "L0を数値で入力してください"},
	}
	for _, c := range cases {
		tr, err := Parse(append(c.args, "/FILE:JWC_TEMP.TXT"))
		require.NoError(t, err, "args %v", c.args)
		assert.Equal(t, "JWC_TEMP.TXT", tr.File)
		require.Error(t, tr.Err, "args %v", c.args)
		assert.EqualError(t, tr.Err, c.msg)
		assert.True(t, errors.Is(tr.Err, c.err), "args %v", c.args)
		var ae *ArgError
		require.True(t, errors.As(tr.Err, &ae))
		assert.Equal(t, c.key, ae.Key)
	}
}

func TestMap(t *testing.T) {
	m := Map([]string{"prog", "/A:1", "B:2", "/C", "/D:x:y", "/A:3", "/E:"})
	assert.Equal(t, map[string]string{"A": "3", "B": "2", "D": "x:y", "E": ""}, m)
}
