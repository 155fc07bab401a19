package assetlint

import (
	"io"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/spf13/cobra"
)

// GenCompletion writes the completion script of root for shell to w
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownShell, shell).WithDetail("shell", shell)
}
