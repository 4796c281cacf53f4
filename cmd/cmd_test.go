package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

type TestDataProvider []struct {
	description string
	args        []string
	expectedOut string
}

func TestDryRunCmd(t *testing.T) {
	var (
		dryRunCmd *cobra.Command
		buff      = new(bytes.Buffer)
		actualOut string
	)

	cases := TestDataProvider{
		{
			description: "Should fail when metric flag is not provided",
			args:        []string{"--value", "5"},
			expectedOut: "\"metric\" not set",
		},
		{
			description: "Should fail when value flag is not provided",
			args:        []string{"--metric", "water_level"},
			expectedOut: "\"value\" not set",
		},
		{
			description: "Should fail for unknown metric",
			args:        []string{"--metric", "humidity", "--value", "5"},
			expectedOut: "Available metrics",
		},
		{
			description: "Should fail with invalid value flag",
			args:        []string{"--metric", "water_level", "--value", "high"},
			expectedOut: "invalid argument \"high\"",
		},
		{
			description: "Should plan notifications for matching regions",
			args:        []string{"--metric", "water_level", "--value", "5.5", "--location", "Kerala|Goa"},
			expectedOut: "\"planned_notifications\"",
		},
		{
			description: "Should report a critical reading",
			args:        []string{"--metric", "water_level", "--value", "5.5"},
			expectedOut: "CRITICAL",
		},
		{
			description: "Should not plan notifications below threshold",
			args:        []string{"--metric", "wind_speed", "--value", "100"},
			expectedOut: "0 planned notification(s)",
		},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			dryRunCmd = createDryRunCmd()

			// Clear output buffer before the next test
			buff.Reset()

			dryRunCmd.SetOut(buff)
			dryRunCmd.SetErr(buff)
			dryRunCmd.SetArgs(c.args)

			dryRunCmd.Execute()

			actualOut = buff.String()
			if !strings.Contains(actualOut, c.expectedOut) {
				t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", actualOut, c.expectedOut)
			}
		})
	}
}

func TestThresholdsCmd(t *testing.T) {
	buff := new(bytes.Buffer)

	// Save cfgFile before stubbing it out
	// And revert to prev cfgFile after test is done
	savedCfgFile := cfgFile
	defer func() {
		cfgFile = savedCfgFile
	}()

	cfgFile = filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(cfgFile, []byte("coastal:\n  thresholds:\n    tide_height: 2.5\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	thresholdsCmd := createThresholdsCmd()
	thresholdsCmd.SetOut(buff)
	thresholdsCmd.SetErr(buff)
	thresholdsCmd.SetArgs([]string{})

	if err := thresholdsCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, expectedOut := range []string{"Rainfall 24H", "tide_height", "2.50", "3.50", "5.25"} {
		if !strings.Contains(buff.String(), expectedOut) {
			t.Errorf("Expected: \n\"%s\" \nTo contain: \n\"%s\"", buff.String(), expectedOut)
		}
	}
}
