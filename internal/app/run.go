package app

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"seguid-core/alphabet"
	"seguid-core/chksum"
	"seguid-core/rotation"
	"seguid/internal/batch"
	"seguid/internal/cli"
	"seguid/internal/config"
	"seguid/internal/logging"
	"seguid/internal/writers"
	"seguid/pkg/api"
)

// job is everything a checksum call needs besides its input.
type job struct {
	kind    chksum.Kind
	table   alphabet.Table
	message bool
	opts    []chksum.Option
}

func (e *env) run(ctx context.Context, fs *pflag.FlagSet, o *cli.Options, args []string) error {
	if o.Version {
		return e.printVersion()
	}

	s, err := e.settings(o)
	if err != nil {
		return usageError(err)
	}
	cli.Apply(fs, o, s)
	if err := cli.Validate(o); err != nil {
		return usageError(err)
	}
	level := logging.Level(o.Quiet, o.Verbose)
	if o.LogLevel != "" {
		if level, err = logging.ParseLevel(o.LogLevel); err != nil {
			return usageError(err)
		}
	}
	e.log.SetLevel(level)

	backend, err := rotation.Use(o.MinRotation)
	if err != nil {
		e.log.WithError(err).Warn("using the built-in minimum rotation")
		o.MinRotation = rotation.BuiltinName
	}
	table, err := o.SymbolTable()
	if err != nil {
		return usageError(err)
	}
	kind, _ := chksum.ParseKind(o.Type)

	j := job{kind: kind, table: table, message: o.Message, opts: []chksum.Option{chksum.WithTable(table), chksum.WithBackend(backend)}}
	if o.Lenient {
		e.log.Warn("lenient mode: symbols are not validated")
		j.opts = append(j.opts, chksum.Lenient())
	}

	inputs := append(append([]string(nil), o.Inputs...), args...)
	e.log.WithFields(logrus.Fields{
		"type":         kind,
		"table":        table.Name(),
		"min_rotation": o.MinRotation,
		"output":       o.Output,
		"inputs":       len(inputs),
	}).Debug("settings")

	out, done := writers.Start(e.stdout, o.Output, writers.Options{Header: o.Header, Message: o.Message}, 0)
	emit := func(r api.ChecksumV1) error {
		out <- r
		return nil
	}
	if len(inputs) > 0 {
		err = e.runFiles(ctx, o.Threads, inputs, j, emit)
	} else {
		err = e.runStdin(ctx, o.Threads, table, j, emit)
	}
	close(out)
	werr := <-done

	if err != nil {
		return err
	}
	return ioError(werr)
}

// settings merges the config file and the SEGUID_* variables; variables win.
func (e *env) settings(o *cli.Options) (config.Settings, error) {
	if err := config.LoadDotEnv(o.EnvFile); err != nil {
		return config.Settings{}, err
	}

	var file config.Settings
	path, explicit := o.ConfigFile, o.ConfigFile != ""
	if !explicit {
		path = config.FileName
	}
	f, err := config.Load(path)
	switch {
	case err == nil:
		file = *f
		e.log.WithField("path", path).Debug("loaded config file")
	case errors.Is(err, config.ErrConfigNotFound) && !explicit:
	default:
		return config.Settings{}, errors.WithMessage(err, path)
	}

	vars, err := config.FromEnv(e.lookupEnv)
	if err != nil {
		return config.Settings{}, err
	}
	return config.Merge(file, vars), nil
}

func (e *env) runFiles(ctx context.Context, threads int, paths []string, j job, emit func(api.ChecksumV1) error) error {
	return e.runBatch(ctx, threads, batch.Files(e.stdin, paths...), j, emit)
}

func (e *env) runBatch(ctx context.Context, threads int, src batch.Source, j job, emit func(api.ChecksumV1) error) error {
	n := 0
	err := batch.Run(ctx, batch.Config{Threads: threads}, src,
		func(b batch.Job) (api.ChecksumV1, error) {
			r, err := j.record(string(b.Record.Seq))
			r.ID = b.Record.ID
			r.Description = b.Record.Description
			r.SourceFile = b.SourceFile
			return r, err
		},
		func(r api.ChecksumV1) error {
			n++
			return emit(r)
		})
	e.log.WithField("records", n).Debug("checksummed")
	return err
}

// runStdin checksums the sequence on stdin, or every record when stdin
// holds FASTA.
func (e *env) runStdin(ctx context.Context, threads int, table alphabet.Table, j job, emit func(api.ChecksumV1) error) error {
	if isTerminal(e.stdin) {
		e.log.Info("reading a sequence from the terminal; finish with Ctrl-D")
	}
	text, err := readAll(ctx, e.stdin)
	if err != nil {
		return err
	}
	if strings.HasPrefix(strings.TrimSpace(text), ">") {
		e.log.Debug("stdin holds FASTA")
		return e.runBatch(ctx, threads, batch.Reader("-", strings.NewReader(text)), j, emit)
	}
	in, extra, err := parseInput(j.kind, text, table)
	if err != nil {
		return err
	}
	if extra > 0 {
		e.log.WithField("lines", extra).Warn("ignoring input after the first sequence line")
	}
	r, err := j.compute(in)
	if err != nil {
		return err
	}
	return emit(r)
}

func (j job) compute(in chksum.Input) (api.ChecksumV1, error) {
	res, err := chksum.Compute(j.kind, in, j.opts...)
	if err != nil {
		return api.ChecksumV1{}, err
	}
	r := api.ChecksumV1{Type: string(j.kind), Length: len(in.Watson), Checksum: res.String()}
	if j.message {
		if r.Message, err = chksum.Message(j.kind, in, j.opts...); err != nil {
			return api.ChecksumV1{}, err
		}
	}
	return r, nil
}

// record checksums one FASTA sequence; double-stranded kinds read it as a
// blunt duplex.
func (j job) record(seq string) (api.ChecksumV1, error) {
	in := chksum.Input{Watson: seq}
	if j.kind.DoubleStranded() {
		var err error
		if in, err = blunt(seq, j.table); err != nil {
			return api.ChecksumV1{}, err
		}
	}
	return j.compute(in)
}
