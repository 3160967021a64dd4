package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"forgeyourday/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "fyd",
	Short:         "ForgeYourDay — daily tasks you finish with friends",
	Long:          "ForgeYourDay is a local-first daily task app: set a few tasks each morning, post a photo when you finish one, and keep up with your friends' days.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRegisterCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newTasksCmd(),
		newPostCmd(),
		newFeedCmd(),
		newLikeCmd(),
		newCommentCmd(),
		newFriendsCmd(),
		newProfileCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
