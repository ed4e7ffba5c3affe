package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sogladev/build-mpq/pkg/config"
	"github.com/sogladev/build-mpq/pkg/errors"
	"github.com/sogladev/build-mpq/pkg/mpq"
	"github.com/sogladev/build-mpq/pkg/mpqtool"
	"github.com/sogladev/build-mpq/pkg/staging"
	"github.com/sogladev/build-mpq/pkg/wow"
)

//go:embed docs/*.md
var docsFS embed.FS

func newCreateCmd() *cobra.Command {
	var force bool
	categoryFlags := make(map[string]*bool)

	cmd := &cobra.Command{
		Use:     "create <path>",
		Short:   MsgCreateShort,
		Long:    MsgCreateLong,
		Example: MsgCreateExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var categories []string
			for _, name := range wow.CategoryNames() {
				if *categoryFlags[name] {
					categories = append(categories, name)
				}
			}

			result, err := staging.Create(args[0], staging.CreateOptions{
				Force:      force,
				Categories: categories,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Creating staging area at %s\n", args[0])
			if len(categories) > 0 {
				fmt.Fprintf(out, "Categories: %s\n", strings.Join(categories, ", "))
			}
			fmt.Fprintf(out, "%s Created %d directories\n", pterm.Green("✓"), len(result.Directories))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	for _, name := range wow.CategoryNames() {
		categoryFlags[name] = cmd.Flags().Bool(name, false, categoryFlagHelp[name])
	}

	return cmd
}

func newPackageCmd() *cobra.Command {
	var (
		compression   string
		noDereference bool
	)

	cmd := &cobra.Command{
		Use:     "package <staging> <output>",
		Short:   MsgPackageShort,
		Long:    MsgPackageLong,
		Example: MsgPackageExample,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("compression") {
				compression = cfg.Compression
			}
			if compression != "z" && compression != "b" && compression != "n" {
				return errors.Newf(errors.ErrInvalidInput,
					"invalid compression %q: must be z (zlib), b (bzip2) or n (none)", compression)
			}

			dereference := cfg.Dereference && !noDereference

			stagingPath, outputPath := args[0], args[1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Packaging %s -> %s\n", stagingPath, outputPath)
			fmt.Fprintf(out, "Compression: %s\n", compression)

			result, err := mpq.Package(cmd.Context(), mpqtool.New(cfg.Tool),
				stagingPath, outputPath, mpq.PackageOptions{
					Compression: compression,
					Dereference: dereference,
				})
			if err != nil {
				return err
			}

			if mat := result.Materialization; mat != nil {
				if mat.SymlinksSeen > 0 {
					fmt.Fprintf(out, "Found %d symbolic link(s)\n", mat.SymlinksSeen)
				}
				if len(mat.Skipped) > 0 {
					pterm.Warning.Printfln("%d broken symbolic link(s) detected:", len(mat.Skipped))
					for _, skipped := range mat.Skipped {
						if skipped.Target != "" {
							fmt.Fprintf(out, "  - %s -> %s (%s)\n", skipped.RelPath, skipped.Target, skipped.Reason)
						} else {
							fmt.Fprintf(out, "  - %s (unreadable symlink)\n", skipped.RelPath)
						}
					}
					fmt.Fprintln(out, "These files were skipped in the MPQ.")
				}
				fmt.Fprintf(out, "Packaged %d file(s)\n", mat.FilesPlaced)
			}

			if result.ToolOutput != "" {
				fmt.Fprint(out, result.ToolOutput)
			}

			fmt.Fprintf(out, "%s Successfully created MPQ: %s\n", pterm.Green("✓"), result.ArchivePath)
			fmt.Fprintf(out, "  Size: %.2f MB\n", float64(result.ArchiveSize)/(1024*1024))
			return nil
		},
	}

	cmd.Flags().StringVarP(&compression, "compression", "c", "z", MsgFlagCompression)
	cmd.Flags().BoolVar(&noDereference, "no-dereference", false, MsgFlagNoDereference)

	return cmd
}

func newValidateCmd() *cobra.Command {
	var showFiles bool

	cmd := &cobra.Command{
		Use:     "validate <mpq>",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Validating MPQ: %s\n", args[0])

			outcome, err := mpq.Validate(cmd.Context(), mpqtool.New(cfg.Tool), args[0])
			if outcome == nil {
				return err
			}

			if outcome.Empty {
				pterm.Warning.Println("MPQ appears to be empty")
				return nil
			}

			fmt.Fprintf(out, "Found %d files in MPQ\n", outcome.Total)

			if showFiles {
				for _, entry := range outcome.Entries {
					if entry.Valid {
						fmt.Fprintf(out, "  %s %s\n", pterm.Green("✓"), entry.Path)
					} else {
						fmt.Fprintf(out, "  %s %s\n", pterm.Red("✗"), entry.Path)
					}
				}
			}

			fmt.Fprintln(out, "\nValidation Results:")
			fmt.Fprintf(out, "  Valid files:   %d\n", outcome.Valid)
			fmt.Fprintf(out, "  Invalid files: %d\n", outcome.Invalid)

			if err != nil {
				pterm.Warning.Println("The following files are in invalid locations:")
				for _, path := range outcome.InvalidPaths {
					fmt.Fprintf(out, "  - %s\n", path)
				}
				fmt.Fprintln(out, "\nThese files will NOT be loaded by the WoW 3.3.5a client!")
				fmt.Fprintln(out, "Please move them to the correct directories in your staging area.")
				return err
			}

			fmt.Fprintf(out, "\n%s All files are in valid WoW 3.3.5a directories\n", pterm.Green("✓"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFiles, "files", false, MsgFlagFiles)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(out, MsgTopicsAvailable)
				for _, topic := range listTopics() {
					fmt.Fprintf(out, "  %s\n", topic)
				}
				fmt.Fprintln(out, "\nUse 'build-mpq topics <topic>' to read one.")
				return nil
			}

			content, err := docsFS.ReadFile("docs/" + args[0] + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound,
					"unknown topic %q. Available topics: %s", args[0], strings.Join(listTopics(), ", "))
			}

			fmt.Fprint(out, renderMarkdown(string(content)))
			return nil
		},
	}
}

func listTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read embedded docs")
		return nil
	}

	var topics []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".md") {
			topics = append(topics, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(topics)
	return topics
}
