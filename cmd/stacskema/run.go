package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	stacskema "github.com/reoring/stacskema"
	"github.com/reoring/stacskema/geojson"
	"github.com/reoring/stacskema/i18n"
	"github.com/reoring/stacskema/stac"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

// validator parses one document and returns its normalized plain form.
type validator func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error)

var validators = map[string]validator{
	"link": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, stac.LinkSchema(), src, opt)
		return v.ToMap(), err
	},
	"asset": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, stac.AssetSchema(), src, opt)
		return v.ToMap(), err
	},
	"bbox": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, stac.BBoxSchema(), src, opt)
		return []float64(v), err
	},
	"geometry": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, geojson.GeometrySchema(), src, opt)
		if err != nil {
			return nil, err
		}
		return v.GeoInterface(), nil
	},
	"feature": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, geojson.FeatureSchema(), src, opt)
		return v.GeoInterface(), err
	},
	"featurecollection": func(ctx context.Context, src stacskema.Source, opt stacskema.ParseOpt) (any, error) {
		v, err := stacskema.ParseFrom(ctx, geojson.FeatureCollectionSchema(), src, opt)
		return v.GeoInterface(), err
	},
}

type issueReport struct {
	Path    string         `json:"path" yaml:"path"`
	Code    string         `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Hint    string         `json:"hint,omitempty" yaml:"hint,omitempty"`
	Params  map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
}

type report struct {
	File   string        `json:"file" yaml:"file"`
	Kind   string        `json:"kind" yaml:"kind"`
	Valid  bool          `json:"valid" yaml:"valid"`
	Issues []issueReport `json:"issues,omitempty" yaml:"issues,omitempty"`
	Value  any           `json:"value,omitempty" yaml:"value,omitempty"`
}

func run(opts Options, stdin io.Reader, stdout io.Writer) int {
	i18n.SetLanguage(opts.Lang)
	validate, ok := validators[opts.Kind]
	if !ok {
		log.Error().Str("kind", opts.Kind).Msg("Unknown document kind")
		return exitError
	}

	opt := stacskema.ParseOpt{
		MaxDepth: opts.MaxDepth,
		MaxBytes: opts.MaxBytes,
		FailFast: opts.FailFast,
		OnWarning: func(is stacskema.Issue) {
			log.Warn().Str("path", is.Path).Str("code", is.Code).Msg(is.Message)
		},
	}
	opt.Strictness.OnDuplicateKey = stacskema.Warn
	if opts.Strict {
		opt.Unknown = stacskema.UnknownStrict
		opt.Strictness.OnDuplicateKey = stacskema.Error
	}

	files := opts.Args.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	code := exitOK
	reports := make([]report, 0, len(files))
	for _, name := range files {
		data, err := readInput(name, stdin)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to read input")
			code = exitError
			continue
		}
		src := sourceFor(name, opts.Format, data)
		value, err := validate(context.Background(), src, opt)
		rep := report{File: name, Kind: opts.Kind, Valid: err == nil}
		if err != nil {
			iss, ok := stacskema.AsIssues(err)
			if !ok {
				log.Error().Err(err).Str("file", name).Msg("Validation failed")
				code = exitError
				continue
			}
			rep.Issues = toReports(iss)
			if code == exitOK {
				code = exitInvalid
			}
		} else {
			rep.Value = value
		}
		log.Debug().Str("file", name).Str("format", src.Format()).Bool("valid", rep.Valid).Int("issues", len(rep.Issues)).Msg("Document checked")
		reports = append(reports, rep)
	}

	if err := writeReports(stdout, opts.Output, reports); err != nil {
		log.Error().Err(err).Msg("Failed to write report")
		return exitError
	}
	return code
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func sourceFor(name, format string, data []byte) stacskema.Source {
	if format == "" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		}
	}
	if format == "yaml" {
		return stacskema.YAMLBytes(data)
	}
	return stacskema.JSONBytes(data)
}

func toReports(iss stacskema.Issues) []issueReport {
	out := make([]issueReport, len(iss))
	for i, it := range iss {
		out[i] = issueReport{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint, Params: it.Params}
	}
	return out
}

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case "json":
		b, err := j.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, r := range reports {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "%s: ok\n", r.File); err != nil {
				return err
			}
			continue
		}
		for _, it := range r.Issues {
			line := fmt.Sprintf("%s: %s %s: %s", r.File, it.Path, it.Code, it.Message)
			if it.Hint != "" {
				line += " (" + it.Hint + ")"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
