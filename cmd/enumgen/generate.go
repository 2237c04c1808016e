package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/on-the-ground/enum_ive_go/internal/codegen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "ENUMGEN"

// Setting keys; each one is also a flag name and an ENUMGEN_<KEY> variable.
const (
	keyPackage  = "package"
	keyOutput   = "output"
	keyManifest = "manifest"
	keyType     = "type"
	keyPrefix   = "prefix"
	keyDoc      = "doc"
	keyLabels   = "labels"
)

const defaultManifestOutput = "enums_gen.go"

var errNoInput = errors.New("either --type with variants or --manifest is required")

type settings struct {
	pkg      string
	output   string
	manifest string
	typeName string
	prefix   bool
	doc      string
	labels   []string
}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [variant...]",
		Short: "Write the Go declaration of one or more enums",
		Example: `  enumgen generate --type Color Red Green Blue
  enumgen generate --type Phase --prefix --labels pending,running Pending Running
  enumgen generate --manifest enums.yaml --output enums_gen.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return a.generate(s, args)
		},
	}

	flags := cmd.Flags()
	flags.String(keyType, "", "enum type name (inline mode)")
	flags.StringP(keyManifest, "m", "", "YAML manifest declaring several enums")
	flags.String(keyPackage, "", "package clause of the generated file (default $GOPACKAGE)")
	flags.StringP(keyOutput, "o", "", "output file (default <type>_enum.go or "+defaultManifestOutput+")")
	flags.Bool(keyPrefix, false, "prefix constants with the type name")
	flags.String(keyDoc, "", "doc comment of the type (inline mode)")
	flags.StringSlice(keyLabels, nil, "string labels, one per variant (inline mode)")
	return cmd
}

// loadSettings resolves every setting as flag > ENUMGEN_* env > default.
// The package additionally falls back to $GOPACKAGE, set by go generate.
func loadSettings(cmd *cobra.Command) (settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindEnv(keyPackage, envPrefix+"_PACKAGE", "GOPACKAGE"); err != nil {
		return settings{}, fmt.Errorf("bind package env: %w", err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}

	return settings{
		pkg:      v.GetString(keyPackage),
		output:   v.GetString(keyOutput),
		manifest: v.GetString(keyManifest),
		typeName: v.GetString(keyType),
		prefix:   v.GetBool(keyPrefix),
		doc:      v.GetString(keyDoc),
		labels:   labelsSetting(cmd, v),
	}, nil
}

// labelsSetting splits ENUMGEN_LABELS on commas like the --labels flag;
// viper would split the raw env string on whitespace.
func labelsSetting(cmd *cobra.Command, v *viper.Viper) []string {
	if !cmd.Flags().Changed(keyLabels) {
		if env := os.Getenv(envPrefix + "_LABELS"); env != "" {
			return strings.Split(env, ",")
		}
	}
	return v.GetStringSlice(keyLabels)
}

func (a *app) generate(s settings, variants []string) error {
	f, err := s.file(variants)
	if err != nil {
		return err
	}

	names := make([]string, len(f.Enums))
	for i, d := range f.Enums {
		names[i] = d.Name
	}
	a.logger.Debug("rendering enums",
		zap.String("package", f.Package),
		zap.Strings("enums", names),
	)

	src, err := codegen.Render(f)
	if err != nil {
		return err
	}

	out := s.outputPath()
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	a.logger.Info("generated enums",
		zap.String("output", out),
		zap.Strings("enums", names),
	)
	return nil
}

// file builds the generator input from the manifest or from the inline flags.
func (s settings) file(variants []string) (codegen.File, error) {
	switch {
	case s.manifest != "" && s.typeName != "":
		return codegen.File{}, fmt.Errorf("--manifest and --type are mutually exclusive")

	case s.manifest != "":
		if len(variants) > 0 {
			return codegen.File{}, fmt.Errorf("unexpected variants with --manifest: %v", variants)
		}
		r, err := os.Open(s.manifest)
		if err != nil {
			return codegen.File{}, fmt.Errorf("open manifest: %w", err)
		}
		defer r.Close()

		f, err := codegen.LoadManifest(r)
		if err != nil {
			return codegen.File{}, fmt.Errorf("%s: %w", s.manifest, err)
		}
		if s.pkg != "" {
			f.Package = s.pkg
		}
		return f, nil

	case s.typeName != "":
		return codegen.File{
			Package: s.pkg,
			Enums: []codegen.Definition{{
				Name:     s.typeName,
				Doc:      s.doc,
				Variants: variants,
				Labels:   s.labels,
				Prefix:   s.prefix,
			}},
		}, nil

	default:
		return codegen.File{}, errNoInput
	}
}

func (s settings) outputPath() string {
	switch {
	case s.output != "":
		return s.output
	case s.manifest != "":
		return filepath.Join(filepath.Dir(s.manifest), defaultManifestOutput)
	default:
		return strings.ToLower(s.typeName) + "_enum.go"
	}
}
