package cmd

import (
	"fmt"
	"github.com/carlmjohnson/versioninfo"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/robinovitch61/vl/internal"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/vlist"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"os"
	"strings"
	"time"
)

var (
	// Version is public so users can optionally specify or override the version
	// at build time by passing in ldflags, e.g.
	//   go build -ldflags "-X github.com/robinovitch61/vl/cmd.Version=vX.Y.Z"
	Version = ""
)

type arg struct {
	cliShort, cfgFileEnvVar, description, defaultString string
	isBool, isInt, defaultIfBool                        bool
	defaultIfInt                                        int
}

var (
	rootNameToArg = map[string]arg{
		"container": {
			cfgFileEnvVar: "container",
			description:   `Name of the container the list renders into`,
			defaultString: constants.DefaultContainerName,
		},
		"count": {
			cliShort:      "c",
			cfgFileEnvVar: "count",
			description:   `Number of records to generate on startup`,
			isInt:         true,
			defaultIfInt:  constants.DefaultCount,
		},
		"elements-offset": {
			cfgFileEnvVar: "elements-offset",
			description:   `Rows between consecutive items`,
			isInt:         true,
		},
		"estimated-item-height": {
			cliShort:      "e",
			cfgFileEnvVar: "estimated-item-height",
			description:   `Height in rows assumed for items that have not been measured`,
			isInt:         true,
			defaultIfInt:  vlist.DefaultEstimatedItemHeight,
		},
		"external-scroller": {
			cliShort:      "m",
			cfgFileEnvVar: "external-scroller",
			description:   `If present, scroll with momentum instead of jumping. Default false`,
			isBool:        true,
		},
		"help": {
			description: `Print usage`,
		},
		"model-stores-expanded-state": {
			cfgFileEnvVar: "model-stores-expanded-state",
			description:   `If present, expanded items keep their height after they leave the viewport. Default false`,
			isBool:        true,
		},
		"scroll-end": {
			cfgFileEnvVar: "scroll-end",
			description:   `If present, items are notified once scrolling settles. Default false`,
			isBool:        true,
		},
		"seed": {
			cfgFileEnvVar: "seed",
			description:   `Seed for generated records. Defaults to the current time`,
			isInt:         true,
		},
		"threshold": {
			cliShort:      "t",
			cfgFileEnvVar: "threshold",
			description:   `Rows beyond each viewport edge to render ahead. Defaults to one item height`,
			isInt:         true,
		},
	}

	description = fmt.Sprintf(`vl %s

vl is an interactive, virtualized list of generated records for exercising large list rendering

Home page: https://github.com/robinovitch61/vl`,
		getVersion(),
	)

	rootCmd = &cobra.Command{
		Use:   "vl",
		Short: "vl: virtualized list viewer",
		Long:  description,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, rootNameToArg)
		},
		Run:     mainEntrypoint,
		Version: getVersion(),
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cliLong := "help"
	rootCmd.PersistentFlags().BoolP(cliLong, rootNameToArg[cliLong].cliShort, rootNameToArg[cliLong].defaultIfBool, rootNameToArg[cliLong].description)

	for _, cliLong = range []string{
		"container",
		"count",
		"elements-offset",
		"estimated-item-height",
		"external-scroller",
		"model-stores-expanded-state",
		"scroll-end",
		"seed",
		"threshold",
	} {
		c := rootNameToArg[cliLong]
		if c.isBool {
			rootCmd.PersistentFlags().BoolP(cliLong, c.cliShort, c.defaultIfBool, c.description)
		} else if c.isInt {
			rootCmd.PersistentFlags().IntP(cliLong, c.cliShort, c.defaultIfInt, c.description)
		} else {
			rootCmd.PersistentFlags().StringP(cliLong, c.cliShort, c.defaultString, c.description)
		}
		_ = viper.BindPFlag(c.cfgFileEnvVar, rootCmd.PersistentFlags().Lookup(cliLong))
	}
	rootCmd.SetVersionTemplate(`{{printf "vl %s\n" .Version}}`)
	rootCmd.Flags().BoolP("version", "v", false, "Show vl version")
}

func initConfig(cmd *cobra.Command, nameToArg map[string]arg) error {
	// bind viper to env vars, e.g. VL_ESTIMATED_ITEM_HEIGHT
	viper.SetEnvPrefix("VL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd, nameToArg)
	return nil
}

func bindFlags(cmd *cobra.Command, nameToArg map[string]arg) {
	v := viper.GetViper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		cliLong := f.Name
		viperName := nameToArg[cliLong].cfgFileEnvVar
		if viperName == "" {
			return
		}

		// Apply the viper env value to the flag when the flag is not manually specified
		if !f.Changed && v.IsSet(viperName) {
			val := v.Get(viperName)
			err := cmd.Flags().Set(cliLong, fmt.Sprintf("%v", val))
			if err != nil {
				fmt.Printf("error setting flag %s: %v\n", cliLong, err)
				os.Exit(1)
			}
		}
	})
}

func mainEntrypoint(cmd *cobra.Command, _ []string) {
	initialModel, options := setup(cmd)
	program := tea.NewProgram(initialModel, options...)

	if _, err := program.Run(); err != nil {
		fmt.Printf("error on vl startup: %v", err)
		os.Exit(1)
	}
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

func getBool(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name).Value.String() == "true"
}

func getNonNegativeInt(cmd *cobra.Command, name string) int {
	n, err := cmd.Flags().GetInt(name)
	if err != nil {
		fmt.Printf("error parsing %s: %v\n", name, err)
		os.Exit(1)
	}
	if n < 0 {
		fmt.Printf("error: %s must be non-negative\n", name)
		os.Exit(1)
	}
	return n
}

func getEstimatedItemHeight(cmd *cobra.Command) int {
	h := getNonNegativeInt(cmd, "estimated-item-height")
	if h == 0 {
		fmt.Println("error: estimated-item-height must be positive")
		os.Exit(1)
	}
	return h
}

func getContainerName(cmd *cobra.Command) string {
	name := cmd.Flags().Lookup("container").Value.String()
	if strings.TrimSpace(name) == "" {
		fmt.Println("error: container must not be empty")
		os.Exit(1)
	}
	return name
}

func getSeed(cmd *cobra.Command) int64 {
	if !cmd.Flags().Lookup("seed").Changed && !viper.IsSet("seed") {
		return time.Now().UnixNano()
	}
	seed, err := cmd.Flags().GetInt("seed")
	if err != nil {
		fmt.Printf("error parsing seed: %v\n", err)
		os.Exit(1)
	}
	return int64(seed)
}

func getConfig(cmd *cobra.Command) internal.Config {
	return internal.Config{
		Count:                    getNonNegativeInt(cmd, "count"),
		EstimatedItemHeight:      getEstimatedItemHeight(cmd),
		ElementsOffset:           getNonNegativeInt(cmd, "elements-offset"),
		Threshold:                getNonNegativeInt(cmd, "threshold"),
		ContainerName:            getContainerName(cmd),
		ModelStoresExpandedState: getBool(cmd, "model-stores-expanded-state"),
		ExternalScroller:         getBool(cmd, "external-scroller"),
		ScrollEnd:                getBool(cmd, "scroll-end"),
		Seed:                     getSeed(cmd),
		Version:                  getVersion(),
	}
}

func setup(cmd *cobra.Command) (internal.Model, []tea.ProgramOption) {
	initialModel := internal.InitialModel(getConfig(cmd))
	return initialModel, []tea.ProgramOption{tea.WithAltScreen()}
}
