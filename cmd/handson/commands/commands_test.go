package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "../../../queryfile/testdata"

func TestMaxQueryRunVerifies(t *testing.T) {
	cmd := &MaxQueryCommand{
		expect: filepath.Join(testdataDir, "maxquery", "output1.txt"),
		output: filepath.Join(t.TempDir(), "results.txt"),
	}

	err := cmd.Run(filepath.Join(testdataDir, "maxquery", "input1.txt"))
	require.NoError(t, err)

	data, err := os.ReadFile(cmd.output)
	require.NoError(t, err)
	assert.Equal(t, "22\n22\n15\n", string(data))
}

func TestMaxQueryRunDetectsMismatch(t *testing.T) {
	// Pair input1 with output0: results exist for each query but differ.
	cmd := &MaxQueryCommand{
		expect: filepath.Join(testdataDir, "maxquery", "output0.txt"),
		output: filepath.Join(t.TempDir(), "results.txt"),
	}

	err := cmd.Run(filepath.Join(testdataDir, "maxquery", "input1.txt"))
	assert.ErrorContains(t, err, "differ from expected output")
}

func TestMaxQueryRunMissingInput(t *testing.T) {
	cmd := &MaxQueryCommand{}

	err := cmd.Run(filepath.Join(testdataDir, "maxquery", "no-such-input.txt"))
	assert.Error(t, err)
}

func TestExistsRunVerifies(t *testing.T) {
	cmd := &ExistsCommand{
		expect: filepath.Join(testdataDir, "exists", "output0.txt"),
		output: filepath.Join(t.TempDir(), "results.txt"),
	}

	err := cmd.Run(filepath.Join(testdataDir, "exists", "input0.txt"))
	require.NoError(t, err)

	data, err := os.ReadFile(cmd.output)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n1\n1\n", string(data))
}

func TestNewCommandsRegisterFlags(t *testing.T) {
	maxCmd := NewMaxQueryCommand()
	assert.NotNil(t, maxCmd.Flags().Lookup("expect"))
	assert.NotNil(t, maxCmd.Flags().Lookup("output"))
	assert.NotNil(t, maxCmd.Flags().Lookup("verbose"))

	existsCmd := NewExistsCommand()
	assert.NotNil(t, existsCmd.Flags().Lookup("expect"))
	assert.NotNil(t, existsCmd.Flags().Lookup("output"))
	assert.NotNil(t, existsCmd.Flags().Lookup("verbose"))
}
