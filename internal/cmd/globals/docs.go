package globals

import "github.com/spf13/cobra"

// DocFlags holds flags for document listing operations.
type DocFlags struct {
	Search string
	Limit  int
}

// AddDocFlags adds document listing flags to a command.
func AddDocFlags(cmd *cobra.Command) *DocFlags {
	flags := &DocFlags{}

	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Search term to filter documents by name or title")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// ParseDocs extracts document listing flags from a command.
// The command must have had AddDocFlags called on it, otherwise this will panic.
func ParseDocs(cmd *cobra.Command) *DocFlags {
	return &DocFlags{
		Search: mustGetString(cmd, "search"),
		Limit:  mustGetInt(cmd, "limit"),
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
