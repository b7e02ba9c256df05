package cmd

import "testing"

func TestExecuteSurfacesCommandErrors(t *testing.T) {
	rootCmd.SetArgs([]string{"no-such-command"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err == nil {
		t.Fatal("unknown command must return an error")
	}
}
