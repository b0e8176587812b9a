package hcobra

import (
	_ "embed"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagSet is a named group of flags, rendered under its own heading in the usage.
type FlagSet struct {
	Name string
	*pflag.FlagSet
}

func NewFlagSet(name string) FlagSet {
	return FlagSet{Name: name, FlagSet: pflag.NewFlagSet(name, pflag.ContinueOnError)}
}

var cmdToFlagSets = map[*cobra.Command][]FlagSet{}

func trimFlagUsages(s string) string {
	return strings.TrimRight(s, " \n")
}

func AddLocalFlagSet(cmd *cobra.Command, fg FlagSet) {
	cmd.Flags().AddFlagSet(fg.FlagSet)

	cmdToFlagSets[cmd] = append(cmdToFlagSets[cmd], fg)
}

func renderLocalFlags(cmd *cobra.Command) string {
	if cmd == nil {
		return ""
	}

	return RenderFlags(cmd.LocalFlags(), cmdToFlagSets[cmd], "Flags", "Other Flags")
}

func RenderFlags(cmdFlagSet *pflag.FlagSet, flagsets []FlagSet, groupNameOnly, groupNameOther string) string {
	var sb strings.Builder

	visited := map[string]struct{}{}
	for _, fs := range flagsets {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fs.Name)
		sb.WriteString(":\n")
		sb.WriteString(trimFlagUsages(fs.FlagUsages()))
		sb.WriteString("\n")

		fs.VisitAll(func(flag *pflag.Flag) {
			visited[flag.Name] = struct{}{}
		})
	}

	if len(visited) == 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(groupNameOnly)
		sb.WriteString(":\n")
		sb.WriteString(trimFlagUsages(cmdFlagSet.FlagUsages()))
		sb.WriteString("\n")
	} else {
		ffs := pflag.NewFlagSet("", pflag.ContinueOnError)
		cmdFlagSet.VisitAll(func(flag *pflag.Flag) {
			if _, ok := visited[flag.Name]; ok {
				return
			}

			ffs.AddFlag(flag)
		})

		if ffs.HasAvailableFlags() {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(groupNameOther)
			sb.WriteString(":\n")
			sb.WriteString(trimFlagUsages(ffs.FlagUsages()))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

//go:embed usage.gotpl
var usageTemplate string

func Setup(cmd *cobra.Command) {
	cobra.AddTemplateFunc("renderLocalFlags", renderLocalFlags)

	cmd.SetUsageTemplate(usageTemplate)
}
