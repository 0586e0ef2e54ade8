package passbundle

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/passbundle/pkg/template"
)

var keyPassword string

var validateCmd = &cobra.Command{
	Use:   "validate <bundle-dir>...",
	Short: "Validate one or more pass bundle directories",
	Long: `Load each bundle directory through the full template pipeline and
report its style, field count and image count. Exits non-zero if any
bundle fails to load.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, dir := range args {
			tpl, err := template.LoadDir(dir, keyPassword)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", dir, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d fields, %d images\n",
				dir, tpl.Style(), len(tpl.Fields()), tpl.Images().Len())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d bundles failed validation", failed, len(args))
		}
		return nil
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <bundle-dir>",
	Short: "Print the definition JSON of a loaded bundle",
	Long: `Load a bundle and print the definition a pass minted from it would
carry, with all stored values in their validated, normalized form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := template.LoadDir(args[0], keyPassword)
		if err != nil {
			return err
		}

		data, err := tpl.CreatePass(nil).DefinitionJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&keyPassword, "key-password", "", "Password for the bundle signing key")
	fieldsCmd.Flags().StringVar(&keyPassword, "key-password", "", "Password for the bundle signing key")
}
