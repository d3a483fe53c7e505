package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in tdidt's version
	VersionMajor = 0
	// VersionMinor is the minor number in tdidt's version
	VersionMinor = 1
	// VersionPatch is the patch number in tdidt's version
	VersionPatch = 0
)

func version() string {
	return fmt.Sprintf("v%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

func versionCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tdidt",
		Long:  `Print the version number of tdidt and, with --long, the Go runtime it was built with`,
		Run: func(cmd *cobra.Command, args []string) {
			if long {
				fmt.Printf("tdidt %s (%s %s/%s)\n", version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
				return
			}
			fmt.Printf("tdidt %s\n", version())
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "include build information")
	return cmd
}
