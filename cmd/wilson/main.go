// Package main provides the wilson CLI.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/wilson/config"
	"github.com/born-ml/wilson/network"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "train":
		err = train(args[1:], stdout, stderr)
	case "predict":
		err = predict(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "wilson %s\n", version)
	case "help", "-h", "--help":
		usage(stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "wilson - a minimal feedforward classifier")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  train      Train on a CSV dataset and save the model")
	fmt.Fprintln(w, "  predict    Classify vectors with a saved model")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wilson <command> -h' for flags.")
}

// commonFlags are shared by train and predict.
type commonFlags struct {
	configPath string
	verbose    bool

	hiddenNodes  int
	iterations   int
	learningRate float64
	activation   string
	seed         uint64
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "YAML config file (defaults apply when empty)")
	fs.BoolVar(&c.verbose, "v", false, "Verbose (debug) logging")
	fs.IntVar(&c.hiddenNodes, "hidden", config.DefaultHiddenNodes, "Hidden layer width")
	fs.IntVar(&c.iterations, "iterations", config.DefaultIterations, "Training iterations")
	fs.Float64Var(&c.learningRate, "lr", config.DefaultLearningRate, "Learning rate")
	fs.StringVar(&c.activation, "activation", config.DefaultActivation, "Activation: sigmoid or tanh")
	fs.Uint64Var(&c.seed, "seed", 0, "Weight initialization seed (0 = random)")
}

// config loads the config file, then overrides it with the flags that were
// set explicitly on the command line.
func (c *commonFlags) config(fs *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return config.Config{}, err
		}
	}

	var patch config.Patch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hidden":
			patch.HiddenNodes = config.Int(c.hiddenNodes)
		case "iterations":
			patch.Iterations = config.Int(c.iterations)
		case "lr":
			patch.LearningRate = config.Float(c.learningRate)
		case "activation":
			patch.Activation = config.String(c.activation)
		case "seed":
			patch.Seed = config.Uint64(c.seed)
		}
	})
	if err := cfg.Apply(patch); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (c *commonFlags) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func train(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	dataPath := fs.String("data", "", "Training CSV: label,x0,x1,... with a header row (required)")
	outPath := fs.String("out", "model.json", "Where to write the trained model")
	report := fs.Bool("report", false, "Log the training error every 1000 iterations")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *dataPath == "" {
		return errors.New("train: -data is required")
	}

	cfg, err := common.config(fs)
	if err != nil {
		return err
	}
	ds, err := LoadCSV(*dataPath)
	if err != nil {
		return err
	}

	logger := common.logger(stderr)
	net, err := network.New[string](cfg, network.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := net.Learn(ds.Inputs, ds.Labels, *report); err != nil {
		return err
	}

	out, err := os.Create(*outPath)
	if err != nil {
		return errors.Wrap(err, "create model file")
	}
	defer out.Close()
	if _, err := net.WriteTo(out); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "trained on %d samples, labels %v, model written to %s\n",
		len(ds.Inputs), net.Labels(), *outPath)
	return out.Close()
}

func predict(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var common commonFlags
	common.register(fs)
	modelPath := fs.String("model", "model.json", "Model written by train")
	dataPath := fs.String("data", "", "CSV in the training format; the label column is the expected label")
	input := fs.String("input", "", "Single comma separated vector, e.g. 1,0")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*dataPath == "") == (*input == "") {
		return errors.New("predict: exactly one of -data or -input is required")
	}

	cfg, err := common.config(fs)
	if err != nil {
		return err
	}
	net, err := network.New[string](cfg, network.WithLogger(common.logger(stderr)))
	if err != nil {
		return err
	}

	f, err := os.Open(*modelPath)
	if err != nil {
		return errors.Wrap(err, "open model")
	}
	defer f.Close()
	if _, err := net.ReadFrom(f); err != nil {
		return errors.Wrapf(err, "model %s", *modelPath)
	}

	if *input != "" {
		vec, err := ParseVector(*input)
		if err != nil {
			return errors.Wrap(err, "input")
		}
		p, err := net.Predict(vec)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%v\t%v\n", p.Label, p.Output, p.Probabilities)
		return nil
	}

	ds, err := LoadCSV(*dataPath)
	if err != nil {
		return err
	}
	correct := 0
	for i, vec := range ds.Inputs {
		p, err := net.Predict(vec)
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		if p.Label == ds.Labels[i] {
			correct++
		}
		fmt.Fprintf(stdout, "%s\texpected %s\t%v\n", p.Label, ds.Labels[i], p.Probabilities)
	}
	fmt.Fprintf(stdout, "accuracy %d/%d\n", correct, len(ds.Inputs))
	return nil
}
