package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/northflowteam-pixel/northflow-landing-page/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version, commit hash, and build date of northflow",
	Run:   runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Northflow\n")
	fmt.Fprintf(w, "  Version:    %s\n", version.Version)
	fmt.Fprintf(w, "  Commit:     %s\n", version.Commit)
	fmt.Fprintf(w, "  Built:      %s\n", version.BuildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
